// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bundle

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

const packageResource = "Package"

// PostgresRepository implements [Repository] on catalog.package.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL package repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var packageColumns = strings.Join(schema.CatalogPackage.Columns(), ", ")

func scanPackage(row pgx.Row) (*Package, error) {
	pkg := &Package{}
	err := row.Scan(&pkg.PackageID, &pkg.PackageName, &pkg.Price, &pkg.Details, &pkg.CreatedAt, &pkg.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return pkg, nil
}

// List returns every package ordered by name.
func (repository *PostgresRepository) List(context context.Context) ([]*Package, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`,
		packageColumns, schema.CatalogPackage.Table, schema.CatalogPackage.PackageName)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_package_repo_list_failed: %w", err)
	}
	defer rows.Close()

	packages := []*Package{}
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_package_repo_scan_failed: %w", err)
		}
		packages = append(packages, pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_package_repo_rows_failed: %w", err)
	}

	return packages, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, packageID string) (*Package, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		packageColumns, schema.CatalogPackage.Table, schema.CatalogPackage.PackageID)

	pkg, err := scanPackage(repository.pool.QueryRow(context, query, packageID))
	if err != nil {
		return nil, dberr.Wrap(err, packageResource, "postgres_package_repo_find_failed")
	}

	return pkg, nil
}

func (repository *PostgresRepository) Create(context context.Context, pkg *Package) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6)`,
		schema.CatalogPackage.Table, packageColumns)

	now := time.Now()
	pkg.CreatedAt, pkg.UpdatedAt = now, now

	_, err := repository.pool.Exec(context, query,
		pkg.PackageID, pkg.PackageName, pkg.Price, pkg.Details, pkg.CreatedAt, pkg.UpdatedAt)

	return dberr.Wrap(err, packageResource, "postgres_package_repo_create_failed")
}

func (repository *PostgresRepository) Update(context context.Context, pkg *Package) error {
	table := schema.CatalogPackage
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5 WHERE %s = $1`,
		table.Table, table.PackageName, table.Price, table.Details, table.UpdatedAt, table.PackageID)

	pkg.UpdatedAt = time.Now()
	tag, err := repository.pool.Exec(context, query, pkg.PackageID, pkg.PackageName, pkg.Price, pkg.Details, pkg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("postgres_package_repo_update_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(packageResource)
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, packageID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogPackage.Table, schema.CatalogPackage.PackageID)

	tag, err := repository.pool.Exec(context, query, packageID)
	if err != nil {
		return fmt.Errorf("postgres_package_repo_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(packageResource)
	}

	return nil
}
