// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/taibuivan/microcctv/internal/platform/respond"
)

// Checker is one dependency probed by the /ready endpoint.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

type healthHandler struct {
	checkers []Checker
	logger   *slog.Logger
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(logger *slog.Logger, checkers ...Checker) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{checkers: checkers, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health. It only proves the process is serving.
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{"status": "ok"})
}

// readiness handles GET /ready. Every checker runs; one failure turns the
// response into 503 "degraded".
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	type checkResult struct {
		Name  string `json:"name"`
		IsOK  bool   `json:"ok"`
		Error string `json:"error,omitempty"`
	}

	results := make([]checkResult, 0, len(handler.checkers))
	isSystemReady := true

	for _, checker := range handler.checkers {
		result := checkResult{Name: checker.Name(), IsOK: true}
		if err := checker.Check(request.Context()); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			isSystemReady = false
			handler.logger.ErrorContext(request.Context(), "readiness_check_failed",
				slog.String("dependency", checker.Name()),
				slog.Any("error", err),
			)
		}
		results = append(results, result)
	}

	payload := respond.SuccessEnvelope{Data: map[string]any{
		"status": "ready",
		"checks": results,
	}}

	if !isSystemReady {
		payload.Data = map[string]any{
			"status": "degraded",
			"checks": results,
		}
		respond.JSON(writer, http.StatusServiceUnavailable, payload)
		return
	}

	respond.JSON(writer, http.StatusOK, payload)
}
