// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert parses loosely typed numeric input.

Storefront clients send quantities and page numbers as JSON numbers, quoted
strings ("3") or decimals ("2.0"). The helpers here accept all of those and
report whether the value was usable instead of returning an error.
*/
package convert

import (
	"math"
	"strconv"
	"strings"
)

// Int parses s as a base 10 integer, ignoring surrounding spaces.
func Int(s string) (int, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return value, true
}

// IntOr returns the integer in s, or fallback when s is empty or malformed.
func IntOr(s string, fallback int) int {
	if value, ok := Int(s); ok {
		return value
	}
	return fallback
}

/*
Truncate parses s as a decimal number and drops the fraction toward zero.

"2.9" yields 2 and "-1.5" yields -1. NaN, infinities and values outside the
int range are rejected.
*/
func Truncate(s string) (int, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	value = math.Trunc(value)
	if value > math.MaxInt32 || value < math.MinInt32 {
		return 0, false
	}
	return int(value), true
}
