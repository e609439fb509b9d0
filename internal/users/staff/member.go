// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package staff manages employee, technician and supplier accounts.

The three kinds share one record shape and one set of operations but live in
separate tables, so a [Service] is bound to exactly one [Kind].
*/
package staff

import (
	"time"

	"github.com/taibuivan/microcctv/internal/platform/database/schema"
	"github.com/taibuivan/microcctv/internal/platform/sec"
)

// Kind identifies which staff table a service operates on.
type Kind string

const (
	KindEmployee   Kind = "employee"
	KindTechnician Kind = "technician"
	KindSupplier   Kind = "supplier"
)

// Role is the session role granted to members of k.
func (k Kind) Role() sec.UserRole {
	switch k {
	case KindTechnician:
		return sec.RoleTechnician
	case KindSupplier:
		return sec.RoleSupplier
	default:
		return sec.RoleEmployee
	}
}

// Table returns the schema definition backing k.
func (k Kind) Table() schema.StaffTable {
	switch k {
	case KindTechnician:
		return schema.UserTechnician
	case KindSupplier:
		return schema.UserSupplier
	default:
		return schema.UserEmployee
	}
}

// Resource is the display name used in error messages, e.g. "Technician".
func (k Kind) Resource() string {
	switch k {
	case KindTechnician:
		return "Technician"
	case KindSupplier:
		return "Supplier"
	default:
		return "Employee"
	}
}

// Member is one staff account.
type Member struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Phone        string    `json:"phone"`
	Salary       string    `json:"salary,omitempty"`
	Speciality   string    `json:"speciality,omitempty"`
	Item         string    `json:"item,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Claims derives the session claim set for m acting as kind.
func (m *Member) Claims(kind Kind) sec.AuthClaims {
	return sec.AuthClaims{
		UserID:          m.ID,
		Email:           m.Email,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Role:            kind.Role().String(),
		IsBlocked:       !m.IsActive,
		IsEmailVerified: true,
	}
}

// Session is returned by a successful staff login.
type Session struct {
	Token  string       `json:"token"`
	Role   sec.UserRole `json:"role"`
	Member *Member      `json:"user"`
}

// Provisioned is returned on create. TemporaryPassword is shown once, and
// only when the admin did not choose a password.
type Provisioned struct {
	Member            *Member `json:"user"`
	TemporaryPassword string  `json:"temporaryPassword,omitempty"`
}

// Field names used in validation errors.
const (
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldPhone        = "phone"
	FieldItem         = "item"
	FieldQuantity     = "quantity"
	FieldRequiredDate = "requiredDate"
)

// DefaultPhone is stored when no phone number is supplied.
const DefaultPhone = "Not Given"
