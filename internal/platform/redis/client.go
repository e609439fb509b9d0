// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package redis opens the client that holds password reset codes.
package redis

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTP traffic is a handful of SET/GET/DEL per reset, so the pool stays small.
const (
	poolSize     = 8
	minIdle      = 2
	ioTimeout    = 2 * time.Second
	dialTimeout  = 3 * time.Second
	pingDeadline = 2 * time.Second
)

// Options parses redisURL and applies the shop's pool shape. Credentials and
// the database index come from the URL.
func Options(redisURL string) (*redis.Options, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis_parse_url_failed: %w", err)
	}

	options.PoolSize = poolSize
	options.MinIdleConns = minIdle
	options.MaxIdleConns = poolSize / 2
	options.DialTimeout = dialTimeout
	options.ReadTimeout = ioTimeout
	options.WriteTimeout = ioTimeout

	return options, nil
}

// NewClient returns a client that has already answered a ping.
func NewClient(context stdctx.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	options, err := Options(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(options)
	if err := Ping(context, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_client_ready",
		slog.String("addr", options.Addr),
		slog.Int("db", options.DB),
	)
	return client, nil
}

// Ping bounds a single round trip to Redis.
func Ping(context stdctx.Context, client *redis.Client) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingDeadline)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis_ping_failed: %w", err)
	}
	return nil
}

// Checker reports the client in the readiness endpoint.
type Checker struct {
	Client *redis.Client
}

func (checker Checker) Name() string { return "redis" }

func (checker Checker) Check(context stdctx.Context) error { return Ping(context, checker.Client) }
