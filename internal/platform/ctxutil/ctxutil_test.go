// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/microcctv/internal/platform/ctxutil"
	"github.com/taibuivan/microcctv/internal/platform/sec"
)

func TestRequestScopedValues(t *testing.T) {
	var buffer bytes.Buffer
	checkoutLogger := slog.New(slog.NewTextHandler(&buffer, nil)).With(slog.String("path", "/orders"))

	base := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(base))
	assert.Same(t, slog.Default(), ctxutil.GetLogger(base))

	scoped := ctxutil.WithLogger(ctxutil.WithRequestID(base, "0190c3d2-order"), checkoutLogger)
	assert.Equal(t, "0190c3d2-order", ctxutil.GetRequestID(scoped))

	ctxutil.GetLogger(scoped).Info("order_created")
	assert.Contains(t, buffer.String(), "path=/orders")
}

// Each caller kind the shop issues tokens for, and what the admin shortcut says about it.
func TestAuthUser_CallerKinds(t *testing.T) {
	tests := []struct {
		name    string
		claims  *sec.AuthClaims
		isAdmin bool
	}{
		{"anonymous", nil, false},
		{"customer", &sec.AuthClaims{UserID: "u-1", Email: "nimal@example.com", Role: "customer"}, false},
		{"technician", &sec.AuthClaims{UserID: "t-1", Email: "tech@example.com", Role: "technician"}, false},
		{"blocked_admin_still_admin", &sec.AuthClaims{UserID: "a-1", Email: "ops@example.com", Role: "admin", IsBlocked: true}, true},
		{"superadmin", &sec.AuthClaims{UserID: "a-2", Email: "root@example.com", Role: "superadmin"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.claims != nil {
				ctx = ctxutil.WithAuthUser(ctx, tt.claims)
			}

			got := ctxutil.GetAuthUser(ctx)
			if tt.claims == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Same(t, tt.claims, got)
			}
			assert.Equal(t, tt.isAdmin, ctxutil.IsAdmin(ctx))
		})
	}
}
