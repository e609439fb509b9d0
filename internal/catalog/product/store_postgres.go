// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

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

const productResource = "Product"

// PostgresRepository implements [Repository] on catalog.product.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL product repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var productColumns = strings.Join(schema.CatalogProduct.Columns(), ", ")

// likePattern escapes LIKE wildcards so the term is matched literally.
func likePattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(term) + "%"
}

func scanProduct(row pgx.Row) (*Product, error) {
	product := &Product{}
	dest := []any{
		&product.ProductID,
		&product.Name,
		&product.AltNames,
		&product.LabelPrice,
		&product.Price,
		&product.Images,
		&product.Description,
		&product.Stock,
		&product.Category,
		&product.IsAvailable,
		&product.CreatedAt,
		&product.UpdatedAt,
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return product, nil
}

/*
List retrieves one page of products matching filter and the total number of
matches.

Description: Search matches the name or any element of altnames with ILIKE.
The total comes from a separate COUNT so pages past the end still report it.
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Product, int, error) {
	var where strings.Builder
	var args []any
	argID := 1

	where.WriteString(" WHERE TRUE")
	if filter.AvailableOnly {
		where.WriteString(fmt.Sprintf(" AND p.%s", schema.CatalogProduct.IsAvailable))
	}

	if term := strings.TrimSpace(filter.Search); term != "" {
		where.WriteString(fmt.Sprintf(
			` AND (p.%s ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(p.%s) AS alt WHERE alt ILIKE $%d))`,
			schema.CatalogProduct.Name, argID, schema.CatalogProduct.AltNames, argID))
		args = append(args, likePattern(term))
		argID++
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s p%s`, schema.CatalogProduct.Table, where.String())

	var total int
	if err := repository.pool.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_product_repo_count_failed: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s p%s ORDER BY p.%s DESC, p.%s LIMIT $%d OFFSET $%d`,
		productColumns, schema.CatalogProduct.Table, where.String(),
		schema.CatalogProduct.CreatedAt, schema.CatalogProduct.ProductID, argID, argID+1)

	rows, err := repository.pool.Query(context, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_product_repo_list_failed: %w", err)
	}
	defer rows.Close()

	products := make([]*Product, 0, limit)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres_product_repo_scan_failed: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_product_repo_rows_failed: %w", err)
	}

	return products, total, nil
}

// FindByID retrieves a single product.
func (repository *PostgresRepository) FindByID(context context.Context, productID string) (*Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		productColumns, schema.CatalogProduct.Table, schema.CatalogProduct.ProductID)

	product, err := scanProduct(repository.pool.QueryRow(context, query, productID))
	if err != nil {
		return nil, dberr.Wrap(err, productResource, "postgres_product_repo_find_failed")
	}

	return product, nil
}

// FindMany retrieves every product whose id is in productIDs.
func (repository *PostgresRepository) FindMany(context context.Context, productIDs []string) (map[string]*Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ANY($1)`,
		productColumns, schema.CatalogProduct.Table, schema.CatalogProduct.ProductID)

	rows, err := repository.pool.Query(context, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("postgres_product_repo_find_many_failed: %w", err)
	}
	defer rows.Close()

	products := make(map[string]*Product, len(productIDs))
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_product_repo_scan_failed: %w", err)
		}
		products[product.ProductID] = product
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_product_repo_rows_failed: %w", err)
	}

	return products, nil
}

// Create inserts product.
func (repository *PostgresRepository) Create(context context.Context, product *Product) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		schema.CatalogProduct.Table, productColumns)

	now := time.Now()
	product.CreatedAt, product.UpdatedAt = now, now

	_, err := repository.pool.Exec(context, query,
		product.ProductID,
		product.Name,
		product.AltNames,
		product.LabelPrice,
		product.Price,
		product.Images,
		product.Description,
		product.Stock,
		product.Category,
		product.IsAvailable,
		product.CreatedAt,
		product.UpdatedAt,
	)

	return dberr.Wrap(err, productResource, "postgres_product_repo_create_failed")
}

// Update writes every mutable column of product.
func (repository *PostgresRepository) Update(context context.Context, product *Product) error {
	table := schema.CatalogProduct
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10, %s = $11
		WHERE %s = $1`,
		table.Table,
		table.Name, table.AltNames, table.LabelPrice, table.Price, table.Images,
		table.Description, table.Stock, table.Category, table.IsAvailable, table.UpdatedAt,
		table.ProductID)

	product.UpdatedAt = time.Now()
	tag, err := repository.pool.Exec(context, query,
		product.ProductID,
		product.Name,
		product.AltNames,
		product.LabelPrice,
		product.Price,
		product.Images,
		product.Description,
		product.Stock,
		product.Category,
		product.IsAvailable,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres_product_repo_update_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(productResource)
	}

	return nil
}

// Delete removes the product with productID.
func (repository *PostgresRepository) Delete(context context.Context, productID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogProduct.Table, schema.CatalogProduct.ProductID)

	tag, err := repository.pool.Exec(context, query, productID)
	if err != nil {
		return fmt.Errorf("postgres_product_repo_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(productResource)
	}

	return nil
}
