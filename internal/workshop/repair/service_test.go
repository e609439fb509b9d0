// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package repair_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/microcctv/internal/platform/apperr"
	"github.com/taibuivan/microcctv/internal/platform/ctxutil"
	"github.com/taibuivan/microcctv/internal/platform/sec"
	"github.com/taibuivan/microcctv/internal/workshop/repair"
	"github.com/taibuivan/microcctv/pkg/pointer"
)

type memoryRepairs struct {
	mu      sync.Mutex
	repairs map[string]repair.Repair
}

func (store *memoryRepairs) List(_ context.Context, limit, offset int) ([]*repair.Repair, int, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	all := []*repair.Repair{}
	for _, ticket := range store.repairs {
		all = append(all, &ticket)
	}
	if offset >= len(all) {
		return []*repair.Repair{}, len(all), nil
	}
	return all[offset:min(offset+limit, len(all))], len(all), nil
}

func (store *memoryRepairs) FindByID(_ context.Context, id string) (*repair.Repair, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	ticket, ok := store.repairs[id]
	if !ok {
		return nil, apperr.NotFound("Repair")
	}
	return &ticket, nil
}

func (store *memoryRepairs) Create(_ context.Context, ticket *repair.Repair) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.repairs[ticket.ID] = *ticket
	return nil
}

func (store *memoryRepairs) Update(_ context.Context, ticket *repair.Repair) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if _, ok := store.repairs[ticket.ID]; !ok {
		return apperr.NotFound("Repair")
	}
	store.repairs[ticket.ID] = *ticket
	return nil
}

func (store *memoryRepairs) Delete(_ context.Context, id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if _, ok := store.repairs[id]; !ok {
		return apperr.NotFound("Repair")
	}
	delete(store.repairs, id)
	return nil
}

func newService() *repair.Service {
	store := &memoryRepairs{repairs: make(map[string]repair.Repair)}
	return repair.NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validInput() repair.CreateInput {
	return repair.CreateInput{
		DeviceName:    "Dome camera",
		SerialNo:      "SN-0042",
		Progress:      "received",
		EstimatedDate: "2026-11-02",
	}
}

func TestCreate(t *testing.T) {
	service := newService()

	ticket, err := service.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, ticket.ID)

	got, err := service.Get(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, "SN-0042", got.SerialNo)
}

func TestCreate_Validation(t *testing.T) {
	service := newService()

	tests := []struct {
		name   string
		mutate func(*repair.CreateInput)
		field  string
	}{
		{"missing_device", func(in *repair.CreateInput) { in.DeviceName = " " }, repair.FieldDeviceName},
		{"missing_serial", func(in *repair.CreateInput) { in.SerialNo = "" }, repair.FieldSerialNo},
		{"missing_progress", func(in *repair.CreateInput) { in.Progress = "" }, repair.FieldProgress},
		{"missing_date", func(in *repair.CreateInput) { in.EstimatedDate = "" }, repair.FieldEstimatedDate},
		{"malformed_date", func(in *repair.CreateInput) { in.EstimatedDate = "02/11/2026" }, repair.FieldEstimatedDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			_, err := service.Create(context.Background(), input)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			require.Len(t, appErr.Details, 1)
			assert.Equal(t, tt.field, appErr.Details[0].Field)
		})
	}
}

func TestUpdate_Partial(t *testing.T) {
	service := newService()
	ticket, err := service.Create(context.Background(), validInput())
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), ticket.ID, repair.UpdateInput{
		Progress: pointer.To("repairing"),
		Notes:    pointer.To("replaced lens"),
	})
	require.NoError(t, err)
	assert.Equal(t, "repairing", updated.Progress)
	assert.Equal(t, "replaced lens", updated.Notes)
	assert.Equal(t, "Dome camera", updated.DeviceName)

	_, err = service.Update(context.Background(), ticket.ID, repair.UpdateInput{EstimatedDate: pointer.To("soon")})
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidPayload))
}

func TestGetAndDelete_UnknownID(t *testing.T) {
	service := newService()

	_, err := service.Get(context.Background(), "not-a-uuid")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	err = service.Delete(context.Background(), "0192f0a4-7c1e-7c3a-9a11-2b7d4c1e0f00")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestHTTP_RoleGates(t *testing.T) {
	service := newService()
	router := repair.NewHandler(service).Routes()
	ticket, err := service.Create(context.Background(), validInput())
	require.NoError(t, err)

	do := func(role, method, path, body string) int {
		request := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		request = request.WithContext(ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: "x", Role: role}))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		return recorder.Code
	}

	update := `{"progress":"ready"}`
	assert.Equal(t, http.StatusOK, do("technician", http.MethodPut, "/"+ticket.ID, update))
	assert.Equal(t, http.StatusOK, do("admin", http.MethodPut, "/"+ticket.ID, update))
	assert.Equal(t, http.StatusForbidden, do("customer", http.MethodPut, "/"+ticket.ID, update))

	assert.Equal(t, http.StatusForbidden, do("technician", http.MethodDelete, "/"+ticket.ID, ""))
	assert.Equal(t, http.StatusForbidden, do("technician", http.MethodGet, "/", ""))
	assert.Equal(t, http.StatusOK, do("admin", http.MethodGet, "/", ""))
	assert.Equal(t, http.StatusOK, do("admin", http.MethodDelete, "/"+ticket.ID, ""))
}
