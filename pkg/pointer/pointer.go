// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer helps with optional fields in partial update payloads.

A nil pointer means "not sent", so services can tell an omitted field from a
zero value such as a price of 0 or an empty note.
*/
package pointer

// To returns a pointer to a copy of value.
func To[T any](value T) *T {
	return &value
}

// Fallback dereferences p, or returns current when the field was not sent.
func Fallback[T any](p *T, current T) T {
	if p != nil {
		return *p
	}
	return current
}

