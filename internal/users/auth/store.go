// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"

	"github.com/taibuivan/microcctv/internal/platform/sec"
)

// # User Data Access

// UserRepository defines the data access contract for customer and admin accounts.
//
// Email lookups are case-insensitive. Missing rows surface as apperr NOT_FOUND.
type UserRepository interface {

	/*
		Create persists a brand-new account.

		Returns:
		  - error: apperr.Conflict when the email is taken
	*/
	Create(context context.Context, user *User) error

	// FindByEmail returns the account with the given email.
	FindByEmail(context context.Context, email string) (*User, error)

	// FindByID returns the account with the given durable key.
	FindByID(context context.Context, id string) (*User, error)

	// UpdateProfile persists the mutable profile fields of user.
	UpdateProfile(context context.Context, user *User) error

	// UpdatePassword replaces only the password hash of the account with email.
	UpdatePassword(context context.Context, email, passwordHash string) error

	// SetBlocked flips the block flag and returns the updated account.
	SetBlocked(context context.Context, email string, blocked bool) (*User, error)

	/*
		ListByRoles returns one page of accounts holding any of roles, newest first.

		Returns:
		  - []*User: The page
		  - int: Total matching rows
		  - error: Retrieval failures
	*/
	ListByRoles(context context.Context, roles []sec.UserRole, limit, offset int) ([]*User, int, error)

	// DeleteByEmailAndRoles hard-deletes an account only if it holds one of roles.
	DeleteByEmailAndRoles(context context.Context, email string, roles []sec.UserRole) error
}

// # Volatile Data Access

// OTPRepository stores at most one reset code per email.
type OTPRepository interface {

	/*
		Replace drops every existing code for email and stores code in one
		atomic step. A zero ttl keeps the code until it is replaced or deleted.
	*/
	Replace(context context.Context, email, code string, ttl time.Duration) error

	// Find returns the active code for email, or apperr NOT_FOUND.
	Find(context context.Context, email string) (*OTP, error)

	// DeleteAll removes every code stored for email.
	DeleteAll(context context.Context, email string) error
}
