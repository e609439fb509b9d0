// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_AppliesSizing(t *testing.T) {
	poolConfig, err := Configure("postgres://shop:secret@db:5432/microcctv?sslmode=disable", DefaultSizing)
	require.NoError(t, err)

	assert.Equal(t, "db", poolConfig.ConnConfig.Host)
	assert.Equal(t, "microcctv", poolConfig.ConnConfig.Database)
	assert.EqualValues(t, 20, poolConfig.MaxConns)
	assert.EqualValues(t, 2, poolConfig.MinConns)
	assert.Equal(t, time.Hour, poolConfig.MaxConnLifetime)
	assert.Equal(t, 5*time.Second, poolConfig.ConnConfig.ConnectTimeout)
	assert.NotNil(t, poolConfig.AfterConnect)
}

func TestConfigure_NoStatementBudget(t *testing.T) {
	sizing := DefaultSizing
	sizing.StatementBudget = 0

	poolConfig, err := Configure("postgres://shop@db/microcctv", sizing)
	require.NoError(t, err)
	assert.Nil(t, poolConfig.AfterConnect)
}

func TestConfigure_BadDSN(t *testing.T) {
	_, err := Configure("postgres://shop@db:notaport/microcctv", DefaultSizing)
	assert.ErrorContains(t, err, "postgres_parse_dsn_failed")
}
