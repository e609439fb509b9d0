// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

// # Account Defaults

const (
	// DefaultPhone is stored when a customer signs up without a phone number.
	DefaultPhone = "Not Given"

	// googleSecretBytes is the entropy of the unusable secret given to accounts
	// created through Google login.
	googleSecretBytes = 32

	// maxNameLength bounds first and last names.
	maxNameLength = 100
)
