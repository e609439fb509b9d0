// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/microcctv/internal/platform/database/schema"
	"github.com/taibuivan/microcctv/internal/platform/dberr"
)

const orderResource = "Order"

// numberLockKey identifies the advisory lock that serializes order numbering.
const numberLockKey int64 = 0x6f72646572

// PostgresRepository implements [Repository] on commerce.salesorder.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL order repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var orderColumns = strings.Join(schema.CommerceOrder.Columns(), ", ")

func scanOrder(row pgx.Row) (*Order, error) {
	order := &Order{}
	dest := []any{
		&order.ID,
		&order.OrderNumber,
		&order.UserID,
		&order.Email,
		&order.Name,
		&order.Address,
		&order.Phone,
		&order.Items,
		&order.Total,
		&order.Status,
		&order.Notes,
		&order.CreatedAt,
		&order.UpdatedAt,
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return order, nil
}

/*
Create numbers and inserts order in one transaction.

Description: A transaction scoped advisory lock serializes every checkout. The
creation time is taken with clock_timestamp() after the lock is held, so the
newest row by createdat always carries the highest number.
*/
func (repository *PostgresRepository) Create(context context.Context, order *Order) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres_order_repo_begin_failed: %w", err)
	}
	defer transaction.Rollback(context)

	if _, err := transaction.Exec(context, `SELECT pg_advisory_xact_lock($1)`, numberLockKey); err != nil {
		return fmt.Errorf("postgres_order_repo_lock_failed: %w", err)
	}

	table := schema.CommerceOrder

	lastQuery := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC LIMIT 1`,
		table.OrderNumber, table.Table, table.CreatedAt)

	var last string
	err = transaction.QueryRow(context, lastQuery).Scan(&last)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("postgres_order_repo_last_failed: %w", err)
	}

	number, err := NextOrderNumber(last)
	if err != nil {
		return err
	}

	insert := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, clock_timestamp(), clock_timestamp())
		RETURNING %s, %s`,
		table.Table,
		table.ID, table.OrderNumber, table.UserID, table.Email, table.Name, table.Address, table.Phone,
		table.Items, table.Total, table.Status, table.Notes, table.CreatedAt, table.UpdatedAt,
		table.CreatedAt, table.UpdatedAt)

	err = transaction.QueryRow(context, insert,
		order.ID,
		number,
		order.UserID,
		order.Email,
		order.Name,
		order.Address,
		order.Phone,
		order.Items,
		order.Total,
		order.Status,
		order.Notes,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, orderResource, "postgres_order_repo_insert_failed")
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres_order_repo_commit_failed: %w", err)
	}

	order.OrderNumber = number
	return nil
}

/*
listQueries builds the page query and the count query for List.

The count runs on its own so that a page past the end still reports the real
total. Both share the owner filter; only the page query carries LIMIT/OFFSET.
*/
func listQueries(userID string, limit, offset int) (pageSQL, countSQL string, pageArgs, countArgs []any) {
	table := schema.CommerceOrder

	var filter strings.Builder
	if userID != "" {
		filter.WriteString(fmt.Sprintf(` WHERE %s = $1`, table.UserID))
		countArgs = append(countArgs, userID)
	}

	countSQL = fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, table.Table, filter.String())

	argID := len(countArgs) + 1
	pageSQL = fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s DESC LIMIT $%d OFFSET $%d`,
		orderColumns, table.Table, filter.String(), table.CreatedAt, argID, argID+1)
	pageArgs = append(append(pageArgs, countArgs...), limit, offset)

	return pageSQL, countSQL, pageArgs, countArgs
}

func (repository *PostgresRepository) List(context context.Context, userID string, limit, offset int) ([]*Order, int, error) {
	pageSQL, countSQL, pageArgs, countArgs := listQueries(userID, limit, offset)

	var total int
	if err := repository.pool.QueryRow(context, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_order_repo_count_failed: %w", err)
	}

	rows, err := repository.pool.Query(context, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_order_repo_list_failed: %w", err)
	}
	defer rows.Close()

	orders := []*Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres_order_repo_scan_failed: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_order_repo_rows_failed: %w", err)
	}

	return orders, total, nil
}

func (repository *PostgresRepository) FindByNumber(context context.Context, orderNumber string) (*Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		orderColumns, schema.CommerceOrder.Table, schema.CommerceOrder.OrderNumber)

	order, err := scanOrder(repository.pool.QueryRow(context, query, orderNumber))
	if err != nil {
		return nil, dberr.Wrap(err, orderResource, "postgres_order_repo_find_failed")
	}

	return order, nil
}

func (repository *PostgresRepository) Update(context context.Context, orderNumber string, status *Status, notes *string) (*Order, error) {
	table := schema.CommerceOrder
	query := fmt.Sprintf(`
		UPDATE %s SET %s = COALESCE($2, %s), %s = COALESCE($3, %s), %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		table.Table,
		table.Status, table.Status,
		table.Notes, table.Notes,
		table.UpdatedAt,
		table.OrderNumber,
		orderColumns)

	order, err := scanOrder(repository.pool.QueryRow(context, query, orderNumber, status, notes))
	if err != nil {
		return nil, dberr.Wrap(err, orderResource, "postgres_order_repo_update_failed")
	}

	return order, nil
}
