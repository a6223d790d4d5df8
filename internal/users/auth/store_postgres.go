// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/strongly/internal/platform/apperr"
	"github.com/taibuivan/strongly/internal/platform/database"
	"github.com/taibuivan/strongly/internal/platform/database/schema"
	"github.com/taibuivan/strongly/internal/platform/dberr"
)

// # User Repository

// PostgresUserRepository implements [UserRepository] against strongly_users.
type PostgresUserRepository struct {
	db database.DB
}

// NewUserRepository creates a PostgreSQL [UserRepository]. db is a pool or an open transaction.
func NewUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

var userSelect = fmt.Sprintf(`SELECT %s FROM %s`, schema.List(schema.User.Columns()), schema.User.Table)

func scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.FullName, &user.CreatedAt)
	return user, err
}

/*
FindByID retrieves a user by numeric identity.

Returns:
  - error: NOT_FOUND ("User doesn't exist") when no row matches
*/
func (repository *PostgresUserRepository) FindByID(context context.Context, id int64) (*User, error) {
	query := userSelect + fmt.Sprintf(` WHERE %s = $1`, schema.User.ID)

	user, err := scanUser(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}
	return user, nil
}

/*
FindByUsername retrieves a user by exact, case-sensitive username.
*/
func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	query := userSelect + fmt.Sprintf(` WHERE %s = $1`, schema.User.Username)

	user, err := scanUser(repository.db.QueryRow(context, query, username))
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}
	return user, nil
}

// ExistsByUsername checks the unique index without loading the row.
func (repository *PostgresUserRepository) ExistsByUsername(context context.Context, username string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, schema.User.Table, schema.User.Username)

	var exists bool
	if err := repository.db.QueryRow(context, query, username).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "User")
	}
	return exists, nil
}

/*
Create inserts a new account. The identity column and creation timestamp are
generated by the database and written back into user.

Returns:
  - error: CONFLICT "Username already taken" when the unique index fires
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s`,
		schema.User.Table, schema.User.Username, schema.User.PasswordHash, schema.User.FullName,
		schema.User.ID, schema.User.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, user.Username, user.PasswordHash, user.FullName).
		Scan(&user.ID, &user.CreatedAt)
	if dberr.IsUniqueViolation(err) {
		return apperr.Conflict(MessageUsernameTaken).WithCause(err)
	}
	return dberr.Wrap(err, "User")
}

// ListAll returns every account ordered by identity.
func (repository *PostgresUserRepository) ListAll(context context.Context) ([]*User, error) {
	query := userSelect + fmt.Sprintf(` ORDER BY %s`, schema.User.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}
	defer rows.Close()

	users := []*User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "User")
		}
		users = append(users, user)
	}
	return users, dberr.Wrap(rows.Err(), "User")
}
