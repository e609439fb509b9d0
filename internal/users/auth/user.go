// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements customer and admin identity for the shop.

It owns the credential records in users.account, issues session tokens on
password and Google login, runs the one-time-code password reset flow, and
answers durable key lookups for the request-time claim resolver.
*/
package auth

import (
	"time"

	"github.com/taibuivan/microcctv/internal/platform/sec"
)

// # Domain Entities

// User represents a customer or admin account.
type User struct {
	ID              string       `json:"id"`
	Email           string       `json:"email"`
	PasswordHash    string       `json:"-"` // Explicitly omitted from JSON for security.
	FirstName       string       `json:"firstName"`
	LastName        string       `json:"lastName"`
	Role            sec.UserRole `json:"role"`
	Phone           string       `json:"phone"`
	Image           string       `json:"image,omitempty"`
	IsBlocked       bool         `json:"isBlock"`
	IsEmailVerified bool         `json:"isEmailVerified"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// Claims derives the session claim set for u.
func (u *User) Claims() sec.AuthClaims {
	return sec.AuthClaims{
		UserID:          u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Role:            string(u.Role),
		IsBlocked:       u.IsBlocked,
		IsEmailVerified: u.IsEmailVerified,
		Image:           u.Image,
	}
}

// OTP is a stored one-time reset code. At most one exists per email.
type OTP struct {
	Email     string
	Code      string
	CreatedAt time.Time
}

// Session is the result of a successful login.
type Session struct {
	Token string       `json:"token"`
	Role  sec.UserRole `json:"role"`
	User  *User        `json:"user"`
}

// ProvisionedAccount is returned when an admin creates an account for someone
// else. TemporaryPassword is only set when the password was generated, and is
// shown exactly once.
type ProvisionedAccount struct {
	User              *User  `json:"user"`
	TemporaryPassword string `json:"temporaryPassword,omitempty"`
}

// # Field Identifiers

// Field names used in validation errors.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldNewPassword = "newPassword"
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldPhone       = "phone"
	FieldImage       = "image"
	FieldOTP         = "otp"
	FieldToken       = "token"
)
