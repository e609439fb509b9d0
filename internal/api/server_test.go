// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/microcctv/internal/api"
	"github.com/taibuivan/microcctv/internal/catalog/bundle"
	"github.com/taibuivan/microcctv/internal/catalog/product"
	"github.com/taibuivan/microcctv/internal/catalog/review"
	"github.com/taibuivan/microcctv/internal/commerce/cart"
	"github.com/taibuivan/microcctv/internal/commerce/order"
	"github.com/taibuivan/microcctv/internal/platform/apperr"
	"github.com/taibuivan/microcctv/internal/platform/config"
	"github.com/taibuivan/microcctv/internal/platform/sec"
	"github.com/taibuivan/microcctv/internal/users/auth"
	"github.com/taibuivan/microcctv/internal/users/staff"
	"github.com/taibuivan/microcctv/internal/workshop/repair"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// # In-memory stores
//
// Only the operations the flow below reaches are implemented. The embedded
// interfaces panic if anything else is called.

type memoryUsers struct {
	auth.UserRepository
	mu    sync.Mutex
	users map[string]*auth.User
}

func (store *memoryUsers) Create(_ context.Context, user *auth.User) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if _, ok := store.users[user.Email]; ok {
		return apperr.Conflict("User already exists")
	}
	copied := *user
	store.users[user.Email] = &copied
	return nil
}

func (store *memoryUsers) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	user, ok := store.users[strings.ToLower(email)]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	copied := *user
	return &copied, nil
}

func (store *memoryUsers) FindByID(_ context.Context, id string) (*auth.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	for _, user := range store.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

type memoryProducts struct {
	product.Repository
	mu       sync.Mutex
	products map[string]*product.Product
}

func (store *memoryProducts) Create(_ context.Context, entry *product.Product) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if _, ok := store.products[entry.ProductID]; ok {
		return apperr.Conflict("Product already exists")
	}
	copied := *entry
	store.products[entry.ProductID] = &copied
	return nil
}

func (store *memoryProducts) List(_ context.Context, filter product.Filter, limit, offset int) ([]*product.Product, int, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	matched := []*product.Product{}
	for _, entry := range store.products {
		if !filter.AvailableOnly || entry.IsAvailable {
			matched = append(matched, entry)
		}
	}
	if offset >= len(matched) {
		return []*product.Product{}, len(matched), nil
	}
	return matched[offset:min(offset+limit, len(matched))], len(matched), nil
}

func (store *memoryProducts) FindMany(_ context.Context, productIDs []string) (map[string]*product.Product, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	found := make(map[string]*product.Product)
	for _, id := range productIDs {
		if entry, ok := store.products[id]; ok {
			found[id] = entry
		}
	}
	return found, nil
}

type memoryCarts struct {
	mu    sync.Mutex
	carts map[string][]cart.Item
}

func (store *memoryCarts) Get(_ context.Context, userID string) (*cart.Cart, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	items := store.carts[userID]
	if items == nil {
		items = []cart.Item{}
	}
	return &cart.Cart{UserID: userID, Items: items, UpdatedAt: time.Now()}, nil
}

func (store *memoryCarts) Mutate(_ context.Context, userID string, apply func([]cart.Item) []cart.Item) ([]cart.Item, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.carts[userID] = apply(store.carts[userID])
	return store.carts[userID], nil
}

func (store *memoryCarts) Clear(_ context.Context, userID string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.carts, userID)
	return nil
}

type memoryOrders struct {
	mu     sync.Mutex
	orders []*order.Order
}

func (store *memoryOrders) Create(_ context.Context, placed *order.Order) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	last := ""
	if len(store.orders) > 0 {
		last = store.orders[len(store.orders)-1].OrderNumber
	}
	number, err := order.NextOrderNumber(last)
	if err != nil {
		return err
	}
	placed.OrderNumber = number
	copied := *placed
	store.orders = append(store.orders, &copied)
	return nil
}

func (store *memoryOrders) List(_ context.Context, userID string, limit, offset int) ([]*order.Order, int, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	matched := []*order.Order{}
	for _, placed := range store.orders {
		if userID == "" || placed.UserID == userID {
			matched = append(matched, placed)
		}
	}
	if offset >= len(matched) {
		return []*order.Order{}, len(matched), nil
	}
	return matched[offset:min(offset+limit, len(matched))], len(matched), nil
}

func (store *memoryOrders) FindByNumber(_ context.Context, orderNumber string) (*order.Order, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	for _, placed := range store.orders {
		if placed.OrderNumber == orderNumber {
			copied := *placed
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Order")
}

func (store *memoryOrders) Update(_ context.Context, orderNumber string, status *order.Status, notes *string) (*order.Order, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	for _, placed := range store.orders {
		if placed.OrderNumber != orderNumber {
			continue
		}
		if status != nil {
			placed.Status = *status
		}
		if notes != nil {
			placed.Notes = *notes
		}
		copied := *placed
		return &copied, nil
	}
	return nil, apperr.NotFound("Order")
}

type unusedOTPs struct{ auth.OTPRepository }
type unusedMembers struct{ staff.Repository }
type unusedPackages struct{ bundle.Repository }
type unusedReviews struct{ review.Repository }
type unusedRepairs struct{ repair.Repository }

type staticChecker struct {
	name string
	err  error
}

func (checker staticChecker) Name() string                  { return checker.name }
func (checker staticChecker) Check(_ context.Context) error { return checker.err }

// # Harness

type harness struct {
	t       *testing.T
	handler http.Handler
	tokens  *sec.TokenService
}

func newHarness(t *testing.T, checkers ...api.Checker) *harness {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens, err := sec.NewTokenService(testSecret, "microcctv-test", time.Hour)
	require.NoError(t, err)

	users := &memoryUsers{users: make(map[string]*auth.User)}
	products := &memoryProducts{products: make(map[string]*product.Product)}

	authService := auth.NewService(users, unusedOTPs{}, tokens, nil, nil, 0, logger)
	newStaff := func(kind staff.Kind) *staff.Handler {
		return staff.NewHandler(staff.NewService(kind, unusedMembers{}, tokens, nil, logger))
	}

	liveness, readiness := api.NewHealthHandlers(logger, checkers...)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := api.NewServer(ctx, &config.Config{ServerPort: "0", Environment: "test"}, logger, tokens, authService, api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		Users:       auth.NewHandler(authService),
		Employees:   newStaff(staff.KindEmployee),
		Technicians: newStaff(staff.KindTechnician),
		Suppliers:   newStaff(staff.KindSupplier),
		Products:    product.NewHandler(product.NewService(products, logger)),
		Packages:    bundle.NewHandler(bundle.NewService(unusedPackages{}, logger)),
		Reviews:     review.NewHandler(review.NewService(unusedReviews{}, products, logger)),
		Cart:        cart.NewHandler(cart.NewService(&memoryCarts{carts: make(map[string][]cart.Item)}, logger)),
		Orders:      order.NewHandler(order.NewService(&memoryOrders{}, products, logger)),
		Repairs:     repair.NewHandler(repair.NewService(unusedRepairs{}, logger)),
	})

	return &harness{t: t, handler: server.Handler(), tokens: tokens}
}

func (h *harness) do(token, method, path string, body any) *httptest.ResponseRecorder {
	h.t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(h.t, err)
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	h.handler.ServeHTTP(recorder, request)
	return recorder
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope), recorder.Body.String())
	return envelope.Data
}

// # Tests

func TestEndToEnd_SignupToCompletedOrder(t *testing.T) {
	h := newHarness(t)

	adminToken, err := h.tokens.Issue(sec.AuthClaims{UserID: "0192f0a4-0000-7000-8000-000000000001", Email: "root@shop.lk", Role: "admin"})
	require.NoError(t, err)

	for _, entry := range []map[string]any{
		{"productId": "CAM-1", "name": "Dome", "price": 120.5, "description": "4MP dome", "category": "camera"},
		{"productId": "NVR-8", "name": "NVR", "price": 300, "description": "8 channel", "category": "recorder"},
	} {
		require.Equal(t, http.StatusCreated, h.do(adminToken, http.MethodPost, "/products", entry).Code)
	}

	// Signup then login.
	signup := map[string]string{"email": "Ann@Example.com", "firstName": "Ann", "lastName": "Lee", "password": "secret123"}
	require.Equal(t, http.StatusOK, h.do("", http.MethodPost, "/users", signup).Code)

	recorder := h.do("", http.MethodPost, "/users/login", map[string]string{"email": "ann@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, recorder.Code)
	session := decode[auth.Session](t, recorder)
	require.NotEmpty(t, session.Token)
	assert.Equal(t, sec.RoleCustomer, session.Role)
	token := session.Token

	// Two different products into the cart.
	for _, add := range []map[string]any{
		{"item": map[string]any{"productId": "CAM-1", "name": "Dome", "price": 120.5, "image": "/dome.jpg"}, "quantity": 1},
		{"item": map[string]any{"productId": "NVR-8", "name": "NVR", "price": 300, "image": "/nvr.jpg"}, "quantity": 3},
	} {
		require.Equal(t, http.StatusOK, h.do(token, http.MethodPost, "/cart", add).Code)
	}

	recorder = h.do(token, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	current := decode[cart.Cart](t, recorder)
	require.Len(t, current.Items, 2)
	assert.Equal(t, 1, current.Items[0].Quantity)
	assert.Equal(t, 3, current.Items[1].Quantity)

	// Checkout from the cart lines.
	checkout := map[string]any{
		"items": []map[string]any{
			{"productId": current.Items[0].ProductID, "qty": current.Items[0].Quantity},
			{"productId": current.Items[1].ProductID, "qty": current.Items[1].Quantity},
		},
		"address": "12 Main St, Colombo",
		"phone":   "0771234567",
	}
	recorder = h.do(token, http.MethodPost, "/orders", checkout)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	placed := decode[order.Order](t, recorder)
	assert.Equal(t, order.FirstNumber, placed.OrderNumber)
	assert.InDelta(t, 120.5*1+300*3, placed.Total, 0.001)
	assert.Equal(t, order.StatusPending, placed.Status)

	recorder = h.do(token, http.MethodPost, "/orders", checkout)
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "CBC00203", decode[order.Order](t, recorder).OrderNumber)

	// Only an admin may change the status.
	path := "/orders/" + placed.OrderNumber
	update := map[string]string{"status": "completed"}
	assert.Equal(t, http.StatusForbidden, h.do(token, http.MethodPut, path, update).Code)
	require.Equal(t, http.StatusOK, h.do(adminToken, http.MethodPut, path, update).Code)

	recorder = h.do(token, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, order.StatusCompleted, decode[order.Order](t, recorder).Status)
}

func TestAuthenticate_ResolvesEmailOnlyTokens(t *testing.T) {
	h := newHarness(t)

	signup := map[string]string{"email": "bob@example.com", "firstName": "Bob", "lastName": "Ray", "password": "secret123"}
	require.Equal(t, http.StatusOK, h.do("", http.MethodPost, "/users", signup).Code)

	emailOnly, err := h.tokens.Issue(sec.AuthClaims{Email: "bob@example.com", Role: "customer"})
	require.NoError(t, err)

	recorder := h.do(emailOnly, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, decode[cart.Cart](t, recorder).UserID)

	stranger, err := h.tokens.Issue(sec.AuthClaims{Email: "ghost@example.com"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, h.do(stranger, http.MethodGet, "/cart", nil).Code)
}

func TestAuthenticate_RejectsBadTokens(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, http.StatusUnauthorized, h.do("not-a-jwt", http.MethodGet, "/products", nil).Code)
	assert.Equal(t, http.StatusOK, h.do("", http.MethodGet, "/products", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, h.do("", http.MethodGet, "/orders/1/10", nil).Code)
}

func TestHealth(t *testing.T) {
	healthy := newHarness(t, staticChecker{name: "postgres"}, staticChecker{name: "redis"})
	assert.Equal(t, http.StatusOK, healthy.do("", http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusOK, healthy.do("", http.MethodGet, "/ready", nil).Code)

	degraded := newHarness(t, staticChecker{name: "postgres"}, staticChecker{name: "redis", err: errors.New("connection refused")})
	recorder := degraded.do("", http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	body := decode[map[string]any](t, recorder)
	assert.Equal(t, "degraded", body["status"])
}
