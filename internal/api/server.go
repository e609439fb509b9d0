// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/microcctv/internal/catalog/bundle"
	"github.com/taibuivan/microcctv/internal/catalog/product"
	"github.com/taibuivan/microcctv/internal/catalog/review"
	"github.com/taibuivan/microcctv/internal/commerce/cart"
	"github.com/taibuivan/microcctv/internal/commerce/order"
	"github.com/taibuivan/microcctv/internal/platform/config"
	"github.com/taibuivan/microcctv/internal/platform/constants"
	"github.com/taibuivan/microcctv/internal/platform/middleware"
	"github.com/taibuivan/microcctv/internal/users/auth"
	"github.com/taibuivan/microcctv/internal/users/staff"
	"github.com/taibuivan/microcctv/internal/workshop/repair"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. It returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Users handles customer and admin identity (signup, login, OTP reset).
	Users *auth.Handler

	Employees   *staff.Handler
	Technicians *staff.Handler
	Suppliers   *staff.Handler

	Products *product.Handler
	Packages *bundle.Handler
	Reviews  *review.Handler

	Cart   *cart.Handler
	Orders *order.Handler

	Repairs *repair.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(
	context context.Context,
	cfg *config.Config,
	log *slog.Logger,
	verifier middleware.TokenVerifier,
	resolver middleware.IdentityResolver,
	h Handlers,
) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier, resolver))
	r.Use(middleware.CORS(cfg, cfg.CORSOriginSuffix))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Mount("/users", h.Users.Routes())
	r.Mount("/employees", h.Employees.Routes())
	r.Mount("/technicians", h.Technicians.Routes())
	r.Mount("/suppliers", h.Suppliers.Routes())
	r.Mount("/products", h.Products.Routes())
	r.Mount("/packages", h.Packages.Routes())
	r.Mount("/reviews", h.Reviews.Routes())
	r.Mount("/cart", h.Cart.Routes())
	r.Mount("/orders", h.Orders.Routes())
	r.Mount("/repairs", h.Repairs.Routes())

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the fully wired router, e.g. for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
