// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/microcctv/pkg/query"
)

func TestCommaList(t *testing.T) {
	assert.Equal(t, []string{"NVR", "recorder"}, query.CommaList(" NVR, recorder ,, "))
	assert.Nil(t, query.CommaList(""))
	assert.Nil(t, query.CommaList(" , "))
}

func TestClean(t *testing.T) {
	assert.Equal(t, []string{"/a.jpg"}, query.Clean([]string{"", " /a.jpg "}))
	assert.Nil(t, query.Clean(nil))
}
