// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToPgx5DSN(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/shop", convertToPgx5DSN("postgres://u:p@db:5432/shop"))
	assert.Equal(t, "pgx5://u:p@db:5432/shop", convertToPgx5DSN("postgresql://u:p@db:5432/shop"))
	assert.Equal(t, "pgx5://u:p@db:5432/shop", convertToPgx5DSN("pgx5://u:p@db:5432/shop"))
	assert.Equal(t, "host=db user=u", convertToPgx5DSN("host=db user=u"))
}
