// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination reads page/limit query parameters for list endpoints
// and builds the "meta" block of paginated responses.
package pagination

import (
	"net/http"

	"github.com/taibuivan/microcctv/pkg/convert"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20

	// MaxLimit caps a single page of products, reviews, orders or tickets.
	MaxLimit = 100
)

// Params is a 1-indexed page request.
type Params struct {
	Page  int
	Limit int
}

// Offset is the number of rows to skip before the requested page.
func (params Params) Offset() int {
	if params.Page <= 1 {
		return 0
	}
	return (params.Page - 1) * params.Limit
}

// Meta accompanies every paginated response body.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta derives TotalPages from total and limit.
func NewMeta(page, limit, total int) Meta {
	meta := Meta{Page: page, Limit: limit, Total: total}
	if limit > 0 {
		meta.TotalPages = (total + limit - 1) / limit
	}
	return meta
}

/*
FromRequest reads "page" and "limit" from the query string.

Missing or malformed values fall back to the defaults, as do a page below 1
and a limit outside 1..[MaxLimit].
*/
func FromRequest(request *http.Request) Params {
	query := request.URL.Query()
	params := Params{
		Page:  convert.IntOr(query.Get("page"), DefaultPage),
		Limit: convert.IntOr(query.Get("limit"), DefaultLimit),
	}

	if params.Page < 1 {
		params.Page = DefaultPage
	}
	if params.Limit < 1 || params.Limit > MaxLimit {
		params.Limit = DefaultLimit
	}
	return params
}
