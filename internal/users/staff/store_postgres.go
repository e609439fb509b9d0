// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package staff

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

// PostgresRepository implements [Repository] on one of the staff tables.
type PostgresRepository struct {
	pool     *pgxpool.Pool
	table    schema.StaffTable
	resource string
	columns  string
}

// NewRepository creates a repository bound to the table of kind.
func NewRepository(pool *pgxpool.Pool, kind Kind) *PostgresRepository {
	table := kind.Table()
	return &PostgresRepository{
		pool:     pool,
		table:    table,
		resource: kind.Resource(),
		columns:  strings.Join(table.Columns(), ", "),
	}
}

func scanMember(row pgx.Row) (*Member, error) {
	member := &Member{}
	err := row.Scan(
		&member.ID,
		&member.Email,
		&member.PasswordHash,
		&member.FirstName,
		&member.LastName,
		&member.Phone,
		&member.Salary,
		&member.Speciality,
		&member.Item,
		&member.IsActive,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return member, nil
}

// Create inserts member. A duplicate email is reported as apperr.Conflict.
func (repository *PostgresRepository) Create(context context.Context, member *Member) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		repository.table.Table, repository.columns)

	now := time.Now()
	member.CreatedAt, member.UpdatedAt = now, now

	_, err := repository.pool.Exec(context, query,
		member.ID,
		member.Email,
		member.PasswordHash,
		member.FirstName,
		member.LastName,
		member.Phone,
		member.Salary,
		member.Speciality,
		member.Item,
		member.IsActive,
		member.CreatedAt,
		member.UpdatedAt,
	)

	return dberr.Wrap(err, repository.resource, "postgres_staff_repo_create_failed")
}

// FindByEmail retrieves a member by email, ignoring case.
func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE LOWER(%s) = LOWER($1)`,
		repository.columns, repository.table.Table, repository.table.Email)

	member, err := scanMember(repository.pool.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, repository.resource, "postgres_staff_repo_find_failed")
	}

	return member, nil
}

/*
List returns one page of members ordered by creation time.

Returns:
  - []*Member: The page
  - int: Total rows in the table
  - error: Retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Member, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, repository.table.Table)
	if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_staff_repo_count_failed: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC LIMIT $1 OFFSET $2`,
		repository.columns, repository.table.Table, repository.table.CreatedAt)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_staff_repo_list_failed: %w", err)
	}
	defer rows.Close()

	members := make([]*Member, 0, limit)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres_staff_repo_scan_failed: %w", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_staff_repo_rows_failed: %w", err)
	}

	return members, total, nil
}

// Update writes every mutable column of member.
func (repository *PostgresRepository) Update(context context.Context, member *Member) error {
	t := repository.table
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10
		WHERE LOWER(%s) = LOWER($1)`,
		t.Table,
		t.Password, t.FirstName, t.LastName, t.Phone, t.Salary, t.Speciality, t.Item, t.IsActive, t.UpdatedAt,
		t.Email)

	member.UpdatedAt = time.Now()
	tag, err := repository.pool.Exec(context, query,
		member.Email,
		member.PasswordHash,
		member.FirstName,
		member.LastName,
		member.Phone,
		member.Salary,
		member.Speciality,
		member.Item,
		member.IsActive,
		member.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres_staff_repo_update_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(repository.resource)
	}

	return nil
}

// DeleteByEmail hard-deletes the member with email.
func (repository *PostgresRepository) DeleteByEmail(context context.Context, email string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE LOWER(%s) = LOWER($1)`, repository.table.Table, repository.table.Email)

	tag, err := repository.pool.Exec(context, query, email)
	if err != nil {
		return fmt.Errorf("postgres_staff_repo_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(repository.resource)
	}

	return nil
}
