// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/microcctv/internal/platform/apperr"
	"github.com/taibuivan/microcctv/internal/platform/constants"
)

const (
	otpFieldCode      = "code"
	otpFieldCreatedAt = "createdAt"
)

// RedisOTPRepository implements [OTPRepository] with one hash per email.
type RedisOTPRepository struct {
	client *redis.Client
}

// NewOTPRepository creates a new Redis-backed OTPRepository.
func NewOTPRepository(client *redis.Client) *RedisOTPRepository {
	return &RedisOTPRepository{client: client}
}

func otpKey(email string) string {
	return constants.RedisPrefixOTP + strings.ToLower(email)
}

/*
Replace stores code as the only active code for email.

Description: DEL, HSET and the optional EXPIRE run inside one MULTI/EXEC, so a
concurrent reader sees either the previous code or the new one, never both.

Parameters:
  - context: context.Context
  - email: string
  - code: string
  - ttl: time.Duration (zero means no expiry)

Returns:
  - error: Execution errors
*/
func (repository *RedisOTPRepository) Replace(context context.Context, email, code string, ttl time.Duration) error {
	key := otpKey(email)

	_, err := repository.client.TxPipelined(context, func(pipe redis.Pipeliner) error {
		pipe.Del(context, key)
		pipe.HSet(context, key,
			otpFieldCode, code,
			otpFieldCreatedAt, strconv.FormatInt(time.Now().UnixMilli(), 10),
		)
		if ttl > 0 {
			pipe.Expire(context, key, ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis_otp_replace_failed: %w", err)
	}

	return nil
}

/*
Find retrieves the active code for email.

Returns:
  - *OTP: The stored code
  - error: apperr.NotFound if absent or expired
*/
func (repository *RedisOTPRepository) Find(context context.Context, email string) (*OTP, error) {
	values, err := repository.client.HGetAll(context, otpKey(email)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis_otp_find_failed: %w", err)
	}

	code, ok := values[otpFieldCode]
	if !ok {
		return nil, apperr.NotFoundMessage("Invalid OTP")
	}

	record := &OTP{Email: strings.ToLower(email), Code: code}
	if millis, err := strconv.ParseInt(values[otpFieldCreatedAt], 10, 64); err == nil {
		record.CreatedAt = time.UnixMilli(millis)
	}

	return record, nil
}

// DeleteAll removes the code stored for email.
func (repository *RedisOTPRepository) DeleteAll(context context.Context, email string) error {
	if err := repository.client.Del(context, otpKey(email)).Err(); err != nil {
		return fmt.Errorf("redis_otp_delete_failed: %w", err)
	}
	return nil
}
