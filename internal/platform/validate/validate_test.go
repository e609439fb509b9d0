// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/microcctv/internal/platform/apperr"
	"github.com/taibuivan/microcctv/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Hikvision DS-2CD", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeInvalidPayload, ae.Code)
				assert.Equal(t, 400, ae.HTTPStatus)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "test@example.com", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "test@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

func TestValidator_Numeric(t *testing.T) {
	assert.False(t, (&validate.Validator{}).Numeric("quantity", "3").HasErrors())
	assert.False(t, (&validate.Validator{}).Numeric("quantity", "-1").HasErrors())
	assert.False(t, (&validate.Validator{}).Numeric("quantity", "2.5").HasErrors())
	assert.True(t, (&validate.Validator{}).Numeric("quantity", "three").HasErrors())
	assert.True(t, (&validate.Validator{}).Numeric("quantity", "").HasErrors())
}

func TestValidator_Date(t *testing.T) {
	assert.False(t, (&validate.Validator{}).Date("date", "2026-03-01").HasErrors())
	assert.True(t, (&validate.Validator{}).Date("date", "01/03/2026").HasErrors())
	assert.True(t, (&validate.Validator{}).Date("date", "2026-13-01").HasErrors())
}

func TestValidator_URL(t *testing.T) {
	assert.False(t, (&validate.Validator{}).URL("image", "https://cdn.example.com/cam.png").HasErrors())
	assert.True(t, (&validate.Validator{}).URL("image", "cam.png").HasErrors())
	assert.True(t, (&validate.Validator{}).URL("image", "ftp://example.com/cam.png").HasErrors())
}

func TestValidator_NonNegative(t *testing.T) {
	assert.False(t, (&validate.Validator{}).NonNegative("price", 0).HasErrors())
	assert.True(t, (&validate.Validator{}).NonNegative("price", -0.01).HasErrors())
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("firstName", "Nimal").
		MinLen("password", "hunter22", 8).
		MaxLen("firstName", "Nimal", 50).
		Email("email", "nimal@example.com").
		Phone("phone", "+94 77 123 4567").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("firstName", "").
		MinLen("password", "a", 8).
		Email("email", "not-an-email").
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
