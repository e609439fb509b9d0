// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/microcctv/internal/catalog/product"
	"github.com/taibuivan/microcctv/internal/catalog/review"
	"github.com/taibuivan/microcctv/internal/platform/apperr"
	"github.com/taibuivan/microcctv/internal/platform/sec"
)

type memoryReviews struct {
	reviews []*review.Review
}

func (store *memoryReviews) ListByProduct(_ context.Context, productID string) ([]*review.Review, error) {
	found := []*review.Review{}
	for _, r := range store.reviews {
		if r.ProductID == productID {
			found = append(found, r)
		}
	}
	return found, nil
}

func (store *memoryReviews) ListAll(_ context.Context, _, _ int) ([]*review.Review, int, error) {
	return store.reviews, len(store.reviews), nil
}

func (store *memoryReviews) FindByID(_ context.Context, id string) (*review.Review, error) {
	for _, r := range store.reviews {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, apperr.NotFound("Review")
}

func (store *memoryReviews) Upsert(_ context.Context, incoming *review.Review) (*review.Review, error) {
	for _, r := range store.reviews {
		if r.ProductID == incoming.ProductID && r.UserID == incoming.UserID {
			r.Rating, r.Comment, r.UserName = incoming.Rating, incoming.Comment, incoming.UserName
			return r, nil
		}
	}
	store.reviews = append(store.reviews, incoming)
	return incoming, nil
}

func (store *memoryReviews) Delete(_ context.Context, id string) error {
	for i, r := range store.reviews {
		if r.ID == id {
			store.reviews = append(store.reviews[:i], store.reviews[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Review")
}

type knownProducts map[string]bool

func (known knownProducts) FindByID(_ context.Context, productID string) (*product.Product, error) {
	if !known[productID] {
		return nil, apperr.NotFound("Product")
	}
	return &product.Product{ProductID: productID}, nil
}

func newService() (*review.Service, *memoryReviews) {
	store := &memoryReviews{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return review.NewService(store, knownProducts{"CAM-1": true}, logger), store
}

var (
	alice = &sec.AuthClaims{UserID: "0190a5b2-0000-7000-8000-000000000001", FirstName: "Alice", LastName: "Silva", Role: "customer"}
	bob   = &sec.AuthClaims{UserID: "0190a5b2-0000-7000-8000-000000000002", Email: "bob@example.com", Role: "customer"}
	admin = &sec.AuthClaims{UserID: "0190a5b2-0000-7000-8000-000000000003", Role: "admin"}
)

func TestPost_UpsertsPerIdentity(t *testing.T) {
	service, store := newService()
	ctx := context.Background()

	first, err := service.Post(ctx, alice, review.PostInput{ProductID: "CAM-1", Rating: 4, Comment: "Good"})
	require.NoError(t, err)
	assert.Equal(t, "Alice Silva", first.UserName)

	second, err := service.Post(ctx, alice, review.PostInput{ProductID: "CAM-1", Rating: 2, Comment: "Died after a week"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, store.reviews, 1)
	assert.Equal(t, 2, store.reviews[0].Rating)

	_, err = service.Post(ctx, bob, review.PostInput{ProductID: "CAM-1", Rating: 5, Comment: "Great"})
	require.NoError(t, err)
	assert.Len(t, store.reviews, 2)
	assert.Equal(t, "bob", store.reviews[1].UserName)
}

func TestPost_Validation(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	tests := []struct {
		name  string
		input review.PostInput
		code  string
	}{
		{"rating_too_low", review.PostInput{ProductID: "CAM-1", Rating: 0, Comment: "x"}, apperr.CodeInvalidPayload},
		{"rating_too_high", review.PostInput{ProductID: "CAM-1", Rating: 6, Comment: "x"}, apperr.CodeInvalidPayload},
		{"empty_comment", review.PostInput{ProductID: "CAM-1", Rating: 3, Comment: "  "}, apperr.CodeInvalidPayload},
		{"long_comment", review.PostInput{ProductID: "CAM-1", Rating: 3, Comment: strings.Repeat("a", 1001)}, apperr.CodeInvalidPayload},
		{"unknown_product", review.PostInput{ProductID: "NOPE", Rating: 3, Comment: "x"}, apperr.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Post(ctx, alice, tt.input)
			assert.True(t, apperr.HasCode(err, tt.code))
		})
	}
}

func TestDelete_OwnerOrAdmin(t *testing.T) {
	service, store := newService()
	ctx := context.Background()

	posted, err := service.Post(ctx, alice, review.PostInput{ProductID: "CAM-1", Rating: 4, Comment: "Good"})
	require.NoError(t, err)

	err = service.Delete(ctx, bob, posted.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))

	require.NoError(t, service.Delete(ctx, admin, posted.ID))
	assert.Empty(t, store.reviews)

	err = service.Delete(ctx, admin, "not-a-uuid")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestHTTP_ListRequiresProductID(t *testing.T) {
	service, _ := newService()
	router := review.NewHandler(service).Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/?productId=CAM-1", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
}
