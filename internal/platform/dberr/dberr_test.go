// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/microcctv/internal/platform/apperr"
	"github.com/taibuivan/microcctv/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "Product", "product_find"))

	notFound := dberr.Wrap(fmt.Errorf("scan: %w", pgx.ErrNoRows), "Product", "product_find")
	assert.True(t, apperr.HasCode(notFound, apperr.CodeNotFound))
	assert.Equal(t, "Product not found", notFound.Error())

	duplicate := dberr.Wrap(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, "User", "user_create")
	assert.True(t, apperr.HasCode(duplicate, apperr.CodeConflict))

	other := errors.New("boom")
	wrapped := dberr.Wrap(other, "User", "user_create")
	assert.ErrorIs(t, wrapped, other)
	assert.False(t, apperr.IsAppError(wrapped))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, dberr.IsForeignKeyViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.False(t, dberr.IsForeignKeyViolation(errors.New("x")))
}
