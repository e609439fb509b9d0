// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid generates the time-ordered identifiers used as primary keys for
accounts, reviews, orders and repair tickets.

Values are UUID version 7, so they sort by creation time.
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7 string. It panics only when the system entropy
// source fails.
func New() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Valid reports whether s parses as a UUID. Lookups use it to answer 404
// for ids that could never match a row, without a round trip.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
