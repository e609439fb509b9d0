// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQueries_CountIgnoresPaging(t *testing.T) {
	tests := []struct {
		name          string
		userID        string
		wantCount     string
		wantCountArgs []any
		wantPageArgs  []any
	}{
		{
			name:          "all_orders",
			wantCount:     "SELECT COUNT(*) FROM commerce.salesorder",
			wantCountArgs: nil,
			wantPageArgs:  []any{10, 90},
		},
		{
			name:          "owner_scoped",
			userID:        "u1",
			wantCount:     "SELECT COUNT(*) FROM commerce.salesorder WHERE userid = $1",
			wantCountArgs: []any{"u1"},
			wantPageArgs:  []any{"u1", 10, 90},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pageSQL, countSQL, pageArgs, countArgs := listQueries(tt.userID, 10, 90)

			assert.Equal(t, tt.wantCount, countSQL)
			assert.NotContains(t, countSQL, "LIMIT")
			assert.NotContains(t, pageSQL, "OVER()")
			assert.Equal(t, tt.wantCountArgs, countArgs)
			assert.Equal(t, tt.wantPageArgs, pageArgs)
		})
	}

	pageSQL, _, _, _ := listQueries("u1", 10, 90)
	assert.Contains(t, pageSQL, "WHERE userid = $1 ORDER BY createdat DESC LIMIT $2 OFFSET $3")
}
