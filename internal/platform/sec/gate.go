// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Authorization Gate
//
// Pure predicates over a resolved claim set. A nil claim set is an anonymous
// caller. Unknown role strings never grant anything.

// IsAuthenticated reports whether a claim set is present.
func IsAuthenticated(claims *AuthClaims) bool {
	return claims != nil
}

// IsAdmin reports whether the caller holds an admin-equivalent role.
func IsAdmin(claims *AuthClaims) bool {
	if claims == nil {
		return false
	}
	role, ok := ParseRole(claims.Role)
	return ok && role.IsAdmin()
}

// HasRole reports whether the caller holds one of the allowed roles.
// Admins always pass.
func HasRole(claims *AuthClaims, allowed ...UserRole) bool {
	if claims == nil {
		return false
	}
	role, ok := ParseRole(claims.Role)
	if !ok {
		return false
	}
	if role.IsAdmin() {
		return true
	}
	for _, candidate := range allowed {
		if role == candidate {
			return true
		}
	}
	return false
}

// IsOwnerOrAdmin reports whether the caller's durable key equals ownerID, or
// the caller is an admin. An empty ownerID never matches.
func IsOwnerOrAdmin(claims *AuthClaims, ownerID string) bool {
	if claims == nil {
		return false
	}
	if ownerID != "" && claims.UserID == ownerID {
		return true
	}
	return IsAdmin(claims)
}
