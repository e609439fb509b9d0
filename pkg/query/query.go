// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query normalizes list-valued request input such as "NVR, recorder".
package query

import (
	"strings"

	"github.com/taibuivan/microcctv/pkg/slice"
)

// Clean trims every entry and drops the blank ones. It returns nil when
// nothing is left.
func Clean(values []string) []string {
	cleaned := slice.Filter(slice.Map(values, strings.TrimSpace), func(value string) bool {
		return value != ""
	})
	if len(cleaned) == 0 {
		return nil
	}
	return cleaned
}

// CommaList splits a comma separated value and cleans the parts.
func CommaList(value string) []string {
	if value == "" {
		return nil
	}
	return Clean(strings.Split(value, ","))
}
