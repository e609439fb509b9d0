// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the microcctv shop HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Build the token service, mailer and Google client.
//  7. Wire repositories, services and HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/microcctv/internal/api"
	"github.com/taibuivan/microcctv/internal/catalog/bundle"
	"github.com/taibuivan/microcctv/internal/catalog/product"
	"github.com/taibuivan/microcctv/internal/catalog/review"
	"github.com/taibuivan/microcctv/internal/commerce/cart"
	"github.com/taibuivan/microcctv/internal/commerce/order"
	"github.com/taibuivan/microcctv/internal/platform/config"
	"github.com/taibuivan/microcctv/internal/platform/constants"
	"github.com/taibuivan/microcctv/internal/platform/mail"
	"github.com/taibuivan/microcctv/internal/platform/migration"
	"github.com/taibuivan/microcctv/internal/platform/oauth"
	pgstore "github.com/taibuivan/microcctv/internal/platform/postgres"
	redisstore "github.com/taibuivan/microcctv/internal/platform/redis"
	"github.com/taibuivan/microcctv/internal/platform/sec"
	"github.com/taibuivan/microcctv/internal/users/auth"
	"github.com/taibuivan/microcctv/internal/users/staff"
	"github.com/taibuivan/microcctv/internal/workshop/repair"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(slog.String("app", "microcctv"))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "microcctv"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Duration("token_ttl", cfg.TokenTTL),
		slog.Duration("otp_ttl", cfg.OTPTTL),
	)

	// Startup deadline so misconfiguration fails fast instead of hanging.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Platform collaborators ─────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer, cfg.TokenTTL)
	must(log, err, "initialize token service")

	mailer := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass, log)
	google := oauth.NewGoogleClient(&http.Client{Timeout: constants.OutboundHTTPTimeout}, cfg.GoogleUserInfoURL)

	liveness, readiness := api.NewHealthHandlers(log,
		pgstore.Checker{Pool: pool},
		redisstore.Checker{Client: rdb},
	)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	authService := auth.NewService(
		auth.NewUserRepository(pool),
		auth.NewOTPRepository(rdb),
		tokens,
		mailer,
		google,
		cfg.OTPTTL,
		log,
	)

	newStaffHandler := func(kind staff.Kind) *staff.Handler {
		service := staff.NewService(kind, staff.NewRepository(pool, kind), tokens, mailer, log)
		return staff.NewHandler(service)
	}

	productRepository := product.NewRepository(pool)

	handlers := api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		Users:       auth.NewHandler(authService),
		Employees:   newStaffHandler(staff.KindEmployee),
		Technicians: newStaffHandler(staff.KindTechnician),
		Suppliers:   newStaffHandler(staff.KindSupplier),
		Products:    product.NewHandler(product.NewService(productRepository, log)),
		Packages:    bundle.NewHandler(bundle.NewService(bundle.NewRepository(pool), log)),
		Reviews:     review.NewHandler(review.NewService(review.NewRepository(pool), productRepository, log)),
		Cart:        cart.NewHandler(cart.NewService(cart.NewRepository(pool), log)),
		Orders:      order.NewHandler(order.NewService(order.NewRepository(pool), productRepository, log)),
		Repairs:     repair.NewHandler(repair.NewService(repair.NewRepository(pool), log)),
	}

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	// serverCtx stops background workers such as the rate limiter sweeper.
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, tokens, authService, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
