// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/microcctv/internal/platform/apperr"
	"github.com/taibuivan/microcctv/internal/platform/database/schema"
	"github.com/taibuivan/microcctv/internal/platform/dberr"
)

const reviewResource = "Review"

// PostgresRepository implements [Repository] on catalog.review.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL review repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var reviewColumns = strings.Join(schema.CatalogReview.Columns(), ", ")

func scanReview(row pgx.Row) (*Review, error) {
	review := &Review{}
	dest := []any{
		&review.ID,
		&review.ProductID,
		&review.UserID,
		&review.UserName,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
		&review.UpdatedAt,
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return review, nil
}

func collectReviews(rows pgx.Rows) ([]*Review, error) {
	defer rows.Close()

	reviews := []*Review{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_review_repo_scan_failed: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_review_repo_rows_failed: %w", err)
	}
	return reviews, nil
}

func (repository *PostgresRepository) ListByProduct(context context.Context, productID string) ([]*Review, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC`,
		reviewColumns, schema.CatalogReview.Table, schema.CatalogReview.ProductID, schema.CatalogReview.CreatedAt)

	rows, err := repository.pool.Query(context, query, productID)
	if err != nil {
		return nil, fmt.Errorf("postgres_review_repo_list_failed: %w", err)
	}

	return collectReviews(rows)
}

func (repository *PostgresRepository) ListAll(context context.Context, limit, offset int) ([]*Review, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.CatalogReview.Table)
	if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_review_repo_count_failed: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC LIMIT $1 OFFSET $2`,
		reviewColumns, schema.CatalogReview.Table, schema.CatalogReview.CreatedAt)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_review_repo_list_all_failed: %w", err)
	}

	reviews, err := collectReviews(rows)
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Review, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		reviewColumns, schema.CatalogReview.Table, schema.CatalogReview.ID)

	review, err := scanReview(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, reviewResource, "postgres_review_repo_find_failed")
	}

	return review, nil
}

/*
Upsert inserts review or replaces the caller's existing review of the product.

Description: The unique (productid, userid) constraint arbitrates concurrent
posts. The original id and createdat survive a replacement.
*/
func (repository *PostgresRepository) Upsert(context context.Context, review *Review) (*Review, error) {
	table := schema.CatalogReview
	query := fmt.Sprintf(`
		INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (%s, %s) DO UPDATE
		SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s
		RETURNING %s`,
		table.Table, reviewColumns,
		table.ProductID, table.UserID,
		table.UserName, table.UserName,
		table.Rating, table.Rating,
		table.Comment, table.Comment,
		table.UpdatedAt, table.UpdatedAt,
		reviewColumns)

	now := time.Now()
	stored, err := scanReview(repository.pool.QueryRow(context, query,
		review.ID,
		review.ProductID,
		review.UserID,
		review.UserName,
		review.Rating,
		review.Comment,
		now,
		now,
	))
	if err != nil {
		return nil, dberr.Wrap(err, reviewResource, "postgres_review_repo_upsert_failed")
	}

	return stored, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogReview.Table, schema.CatalogReview.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres_review_repo_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(reviewResource)
	}

	return nil
}
