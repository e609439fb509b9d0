// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/microcctv/internal/platform/apperr"
	"github.com/taibuivan/microcctv/internal/platform/ctxutil"
	"github.com/taibuivan/microcctv/internal/platform/sec"
	"github.com/taibuivan/microcctv/internal/platform/validate"
	"github.com/taibuivan/microcctv/pkg/convert"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, request.Body, maxBodyBytes))
	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
NumberText decodes a JSON number or string into its text form.

Clients send quantities and reset codes either as 123456 or "123456"; both
arrive as the same string, and null arrives as "". Whether the text is
actually numeric is left to validation.
*/
type NumberText string

// UnmarshalJSON implements [json.Unmarshaler].
func (text *NumberText) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*text = ""
		return nil
	}

	var quoted string
	if err := json.Unmarshal(data, &quoted); err == nil {
		*text = NumberText(quoted)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*text = NumberText(number)
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
PositiveIntParam parses a named URL parameter as an integer >= 1.

Returns:
  - int: The parsed value
  - error: apperr.InvalidPayload when missing, malformed or below 1
*/
func PositiveIntParam(request *http.Request, name string) (int, error) {
	value, ok := convert.Int(chi.URLParam(request, name))
	if !ok || value < 1 {
		return 0, apperr.InvalidPayload("Invalid "+name, apperr.FieldError{Field: name, Message: "Must be a positive integer"})
	}
	return value, nil
}

/*
Claims extracts the resolved caller claims from the request context.

Returns nil if the request is anonymous.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

/*
RequiredClaims ensures the request is authenticated and returns the claims.

Returns:
  - *sec.AuthClaims: The resolved caller claims
  - error: apperr.Unauthorized if the request is anonymous
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Unauthorized")
	}
	return claims, nil
}

/*
RequiredUserID returns the durable key of the current caller.

Returns:
  - string: User UUID
  - error: apperr.Unauthorized if anonymous or the key is missing
*/
func RequiredUserID(request *http.Request) (string, error) {
	claims, err := RequiredClaims(request)
	if err != nil {
		return "", err
	}
	if claims.UserID == "" {
		return "", apperr.Unauthorized("Unauthorized")
	}
	return claims.UserID, nil
}
