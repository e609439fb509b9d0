// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_KeepsURLCredentials(t *testing.T) {
	options, err := Options("redis://:secret@cache:6380/3")
	require.NoError(t, err)

	assert.Equal(t, "cache:6380", options.Addr)
	assert.Equal(t, "secret", options.Password)
	assert.Equal(t, 3, options.DB)
	assert.Equal(t, 8, options.PoolSize)
	assert.Equal(t, 4, options.MaxIdleConns)
}

func TestOptions_RejectsForeignScheme(t *testing.T) {
	_, err := Options("http://cache:6379")
	assert.ErrorContains(t, err, "redis_parse_url_failed")
}
