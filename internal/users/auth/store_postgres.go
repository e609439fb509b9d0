// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

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
	"github.com/taibuivan/microcctv/internal/platform/sec"
	"github.com/taibuivan/microcctv/pkg/slice"
)

// # User Repository

const userResource = "User"

// PostgresUserRepository implements [UserRepository] on users.account.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

var userColumns = strings.Join(schema.UserAccount.Columns(), ", ")

func scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	var role string

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&role,
		&user.Phone,
		&user.Image,
		&user.IsBlocked,
		&user.IsEmailVerified,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Role = sec.UserRole(role)
	return user, nil
}

/*
Create persists a new account into users.account.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: apperr.Conflict on duplicate email, or connectivity errors
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		schema.UserAccount.Table, userColumns)

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		string(user.Role),
		user.Phone,
		user.Image,
		user.IsBlocked,
		user.IsEmailVerified,
		user.CreatedAt,
		user.UpdatedAt,
	)

	return dberr.Wrap(err, userResource, "postgres_user_repo_create_failed")
}

/*
FindByEmail retrieves an account by email, ignoring case.

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE LOWER(%s) = LOWER($1)`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.Email)

	user, err := scanUser(repository.pool.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, userResource, "postgres_user_repo_find_by_email_failed")
	}

	return user, nil
}

// FindByID retrieves an account by its durable key.
func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.ID)

	user, err := scanUser(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, userResource, "postgres_user_repo_find_by_id_failed")
	}

	return user, nil
}

// UpdateProfile persists first/last name, phone and image.
func (repository *PostgresUserRepository) UpdateProfile(context context.Context, user *User) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6 WHERE %s = $1`,
		schema.UserAccount.Table,
		schema.UserAccount.FirstName, schema.UserAccount.LastName, schema.UserAccount.Phone,
		schema.UserAccount.Image, schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID)

	user.UpdatedAt = time.Now()
	tag, err := repository.pool.Exec(context, query,
		user.ID, user.FirstName, user.LastName, user.Phone, user.Image, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("postgres_user_repo_update_profile_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(userResource)
	}

	return nil
}

// UpdatePassword replaces the password hash of the account with email.
func (repository *PostgresUserRepository) UpdatePassword(context context.Context, email, passwordHash string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE LOWER(%s) = LOWER($1)`,
		schema.UserAccount.Table, schema.UserAccount.Password, schema.UserAccount.UpdatedAt, schema.UserAccount.Email)

	tag, err := repository.pool.Exec(context, query, email, passwordHash)
	if err != nil {
		return fmt.Errorf("postgres_user_repo_update_password_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(userResource)
	}

	return nil
}

// SetBlocked flips the block flag and returns the updated row.
func (repository *PostgresUserRepository) SetBlocked(context context.Context, email string, blocked bool) (*User, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE LOWER(%s) = LOWER($1) RETURNING %s`,
		schema.UserAccount.Table, schema.UserAccount.IsBlocked, schema.UserAccount.UpdatedAt,
		schema.UserAccount.Email, userColumns)

	user, err := scanUser(repository.pool.QueryRow(context, query, email, blocked))
	if err != nil {
		return nil, dberr.Wrap(err, userResource, "postgres_user_repo_set_blocked_failed")
	}

	return user, nil
}

/*
ListByRoles returns one page of accounts holding any of roles.

Parameters:
  - context: context.Context
  - roles: []sec.UserRole
  - limit, offset: int

Returns:
  - []*User: The page, newest first
  - int: Total matching rows
  - error: Retrieval failures
*/
func (repository *PostgresUserRepository) ListByRoles(context context.Context, roles []sec.UserRole, limit, offset int) ([]*User, int, error) {
	roleNames := slice.Map(roles, sec.UserRole.String)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = ANY($1)`,
		schema.UserAccount.Table, schema.UserAccount.Role)

	var total int
	if err := repository.pool.QueryRow(context, countQuery, roleNames).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_user_repo_count_failed: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ANY($1) ORDER BY %s DESC LIMIT $2 OFFSET $3`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.Role, schema.UserAccount.CreatedAt)

	rows, err := repository.pool.Query(context, query, roleNames, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_user_repo_list_failed: %w", err)
	}
	defer rows.Close()

	users := make([]*User, 0, limit)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres_user_repo_scan_failed: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_user_repo_rows_failed: %w", err)
	}

	return users, total, nil
}

// DeleteByEmailAndRoles hard-deletes the account if it holds one of roles.
func (repository *PostgresUserRepository) DeleteByEmailAndRoles(context context.Context, email string, roles []sec.UserRole) error {
	roleNames := slice.Map(roles, sec.UserRole.String)

	query := fmt.Sprintf(`DELETE FROM %s WHERE LOWER(%s) = LOWER($1) AND %s = ANY($2)`,
		schema.UserAccount.Table, schema.UserAccount.Email, schema.UserAccount.Role)

	tag, err := repository.pool.Exec(context, query, email, roleNames)
	if err != nil {
		return fmt.Errorf("postgres_user_repo_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(userResource)
	}

	return nil
}
