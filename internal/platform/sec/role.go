// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
//
// The set is closed: every authorization check in the API goes through these
// constants and [ParseRole].
type UserRole string

const (
	// Default role for self-registered shop accounts
	RoleCustomer UserRole = "customer"

	// Back-office staff
	RoleEmployee UserRole = "employee"

	// Repair workshop staff
	RoleTechnician UserRole = "technician"

	// External stock suppliers
	RoleSupplier UserRole = "supplier"

	// Unrestricted shop administration
	RoleAdmin UserRole = "admin"

	// Admin-equivalent role kept for accounts provisioned by the platform owner
	RoleSuperAdmin UserRole = "superadmin"
)

var knownRoles = map[UserRole]struct{}{
	RoleCustomer:   {},
	RoleEmployee:   {},
	RoleTechnician: {},
	RoleSupplier:   {},
	RoleAdmin:      {},
	RoleSuperAdmin: {},
}

// ParseRole converts a raw claim value into a [UserRole].
func ParseRole(raw string) (UserRole, bool) {
	role := UserRole(raw)
	_, ok := knownRoles[role]
	return role, ok
}

// Valid reports whether r is one of the declared roles.
func (r UserRole) Valid() bool {
	_, ok := knownRoles[r]
	return ok
}

// IsAdmin reports whether r grants administrative access.
func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// String implements fmt.Stringer.
func (r UserRole) String() string {
	return string(r)
}
