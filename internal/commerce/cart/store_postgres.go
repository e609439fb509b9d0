// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/microcctv/internal/platform/database/schema"
)

// PostgresRepository implements [Repository] on commerce.cart, storing the
// lines as a jsonb array.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL cart repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Get loads the cart of userID.
func (repository *PostgresRepository) Get(context context.Context, userID string) (*Cart, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.CommerceCart.Items, schema.CommerceCart.UpdatedAt, schema.CommerceCart.Table, schema.CommerceCart.UserID)

	cart := &Cart{UserID: userID, Items: []Item{}}
	err := repository.pool.QueryRow(context, query, userID).Scan(&cart.Items, &cart.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return cart, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres_cart_repo_get_failed: %w", err)
	}

	return cart, nil
}

/*
Mutate runs a read-modify-write of the cart of userID in one transaction.

Description: The row is created with ON CONFLICT DO NOTHING and then locked
with SELECT ... FOR UPDATE, so a second Mutate for the same user waits for the
first to commit and sees its result.
*/
func (repository *PostgresRepository) Mutate(context context.Context, userID string, apply func([]Item) []Item) ([]Item, error) {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return nil, fmt.Errorf("postgres_cart_repo_begin_failed: %w", err)
	}
	defer transaction.Rollback(context)

	table := schema.CommerceCart

	ensure := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) ON CONFLICT (%s) DO NOTHING`,
		table.Table, table.UserID, table.UserID)
	if _, err := transaction.Exec(context, ensure, userID); err != nil {
		return nil, fmt.Errorf("postgres_cart_repo_ensure_failed: %w", err)
	}

	lock := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE`, table.Items, table.Table, table.UserID)
	var items []Item
	if err := transaction.QueryRow(context, lock, userID).Scan(&items); err != nil {
		return nil, fmt.Errorf("postgres_cart_repo_lock_failed: %w", err)
	}

	items = apply(items)

	update := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		table.Table, table.Items, table.UpdatedAt, table.UserID)
	if _, err := transaction.Exec(context, update, userID, items); err != nil {
		return nil, fmt.Errorf("postgres_cart_repo_update_failed: %w", err)
	}

	if err := transaction.Commit(context); err != nil {
		return nil, fmt.Errorf("postgres_cart_repo_commit_failed: %w", err)
	}

	return items, nil
}

// Clear deletes the cart row of userID.
func (repository *PostgresRepository) Clear(context context.Context, userID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CommerceCart.Table, schema.CommerceCart.UserID)

	if _, err := repository.pool.Exec(context, query, userID); err != nil {
		return fmt.Errorf("postgres_cart_repo_clear_failed: %w", err)
	}

	return nil
}
