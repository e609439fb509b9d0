// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package postgres opens the shop's shared pgx pool. Repositories receive the
// pool and run their own queries and transactions on it.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/microcctv/internal/platform/constants"
)

// Sizing is the pool shape applied on top of whatever the DSN sets.
type Sizing struct {
	MaxConns        int32
	MinConns        int32
	ConnLifetime    time.Duration
	ConnIdleTime    time.Duration
	HealthEvery     time.Duration
	DialTimeout     time.Duration
	StatementBudget time.Duration
}

// DefaultSizing fits one API replica serving the storefront and the admin panel.
var DefaultSizing = Sizing{
	MaxConns:        20,
	MinConns:        2,
	ConnLifetime:    time.Hour,
	ConnIdleTime:    10 * time.Minute,
	HealthEvery:     time.Minute,
	DialTimeout:     5 * time.Second,
	StatementBudget: constants.GlobalRequestTimeout,
}

const pingTimeout = 2 * time.Second

// Configure parses dsn and applies sizing. Each new connection gets a
// statement_timeout equal to the request budget so an abandoned query
// cannot outlive its request.
func Configure(dsn string, sizing Sizing) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres_parse_dsn_failed: %w", err)
	}

	poolConfig.MaxConns = sizing.MaxConns
	poolConfig.MinConns = sizing.MinConns
	poolConfig.MaxConnLifetime = sizing.ConnLifetime
	poolConfig.MaxConnIdleTime = sizing.ConnIdleTime
	poolConfig.HealthCheckPeriod = sizing.HealthEvery
	poolConfig.ConnConfig.ConnectTimeout = sizing.DialTimeout

	if budget := sizing.StatementBudget.Milliseconds(); budget > 0 {
		statement := fmt.Sprintf("SET statement_timeout = %d", budget)
		poolConfig.AfterConnect = func(context context.Context, connection *pgx.Conn) error {
			_, err := connection.Exec(context, statement)
			return err
		}
	}

	return poolConfig, nil
}

// NewPool opens a pool with DefaultSizing and refuses to return until the
// database answers a ping.
func NewPool(ctx context.Context, dsn string, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := Configure(dsn, DefaultSizing)
	if err != nil {
		return nil, err
	}

	dialCtx, cancel := context.WithTimeout(ctx, DefaultSizing.DialTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(dialCtx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("postgres_open_pool_failed: %w", err)
	}

	if err := Ping(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("postgres_pool_ready",
		slog.String("host", poolConfig.ConnConfig.Host),
		slog.String("database", poolConfig.ConnConfig.Database),
		slog.Int("max_conns", int(poolConfig.MaxConns)),
	)

	return pool, nil
}

// Ping bounds a single round trip to the database.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("postgres_ping_failed: %w", err)
	}
	return nil
}

// Checker reports the pool in the readiness endpoint.
type Checker struct {
	Pool *pgxpool.Pool
}

func (checker Checker) Name() string { return "postgres" }

func (checker Checker) Check(ctx context.Context) error { return Ping(ctx, checker.Pool) }
