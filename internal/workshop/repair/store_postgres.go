// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package repair

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/microcctv/internal/platform/apperr"
	"github.com/taibuivan/microcctv/internal/platform/database/schema"
	"github.com/taibuivan/microcctv/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on workshop.repair.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repair repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// repairColumns renders the estimated date back as YYYY-MM-DD text.
var repairColumns = fmt.Sprintf(`%s, %s, %s, %s, %s, to_char(%s, 'YYYY-MM-DD'), %s, %s`,
	schema.WorkshopRepair.ID,
	schema.WorkshopRepair.DeviceName,
	schema.WorkshopRepair.SerialNo,
	schema.WorkshopRepair.Progress,
	schema.WorkshopRepair.Notes,
	schema.WorkshopRepair.EstimatedDate,
	schema.WorkshopRepair.CreatedAt,
	schema.WorkshopRepair.UpdatedAt)

func scanRepair(row pgx.Row) (*Repair, error) {
	repair := &Repair{}
	dest := []any{
		&repair.ID,
		&repair.DeviceName,
		&repair.SerialNo,
		&repair.Progress,
		&repair.Notes,
		&repair.EstimatedDate,
		&repair.CreatedAt,
		&repair.UpdatedAt,
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return repair, nil
}

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Repair, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.WorkshopRepair.Table)
	if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_repair_repo_count_failed: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC LIMIT $1 OFFSET $2`,
		repairColumns, schema.WorkshopRepair.Table, schema.WorkshopRepair.CreatedAt)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_repair_repo_list_failed: %w", err)
	}
	defer rows.Close()

	repairs := []*Repair{}
	for rows.Next() {
		repair, err := scanRepair(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres_repair_repo_scan_failed: %w", err)
		}
		repairs = append(repairs, repair)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_repair_repo_rows_failed: %w", err)
	}

	return repairs, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Repair, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		repairColumns, schema.WorkshopRepair.Table, schema.WorkshopRepair.ID)

	repair, err := scanRepair(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, repairResource, "postgres_repair_repo_find_failed")
	}

	return repair, nil
}

func (repository *PostgresRepository) Create(context context.Context, repair *Repair) error {
	table := schema.WorkshopRepair
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6::text::date, $7, $8)`,
		table.Table,
		table.ID, table.DeviceName, table.SerialNo, table.Progress, table.Notes, table.EstimatedDate,
		table.CreatedAt, table.UpdatedAt)

	now := time.Now()
	repair.CreatedAt, repair.UpdatedAt = now, now

	_, err := repository.pool.Exec(context, query,
		repair.ID,
		repair.DeviceName,
		repair.SerialNo,
		repair.Progress,
		repair.Notes,
		repair.EstimatedDate,
		repair.CreatedAt,
		repair.UpdatedAt,
	)

	return dberr.Wrap(err, repairResource, "postgres_repair_repo_create_failed")
}

func (repository *PostgresRepository) Update(context context.Context, repair *Repair) error {
	table := schema.WorkshopRepair
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6::text::date, %s = $7
		WHERE %s = $1`,
		table.Table,
		table.DeviceName, table.SerialNo, table.Progress, table.Notes, table.EstimatedDate, table.UpdatedAt,
		table.ID)

	repair.UpdatedAt = time.Now()
	tag, err := repository.pool.Exec(context, query,
		repair.ID,
		repair.DeviceName,
		repair.SerialNo,
		repair.Progress,
		repair.Notes,
		repair.EstimatedDate,
		repair.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres_repair_repo_update_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(repairResource)
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.WorkshopRepair.Table, schema.WorkshopRepair.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres_repair_repo_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(repairResource)
	}

	return nil
}
