// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package set

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/strongly/internal/platform/apperr"
	"github.com/taibuivan/strongly/internal/platform/database"
	"github.com/taibuivan/strongly/internal/platform/database/schema"
	"github.com/taibuivan/strongly/internal/platform/dberr"
)

type PostgresRepository struct {
	db database.DB
}

func NewPostgresRepository(db database.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var setSelect = fmt.Sprintf(`SELECT %s FROM %s`, schema.List(schema.Set.Columns()), schema.Set.Table)

func scanSet(row pgx.Row) (*Set, error) {
	s := &Set{}
	err := row.Scan(&s.ID, &s.SetNumber, &s.Reps, &s.Weight, &s.ExerciseID, &s.WorkoutID, &s.UserID, &s.CreatedAt)
	return s, err
}

func (repository *PostgresRepository) list(context context.Context, query string, args ...any) ([]*Set, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, Resource)
	}
	defer rows.Close()

	sets := []*Set{}
	for rows.Next() {
		s, err := scanSet(rows)
		if err != nil {
			return nil, dberr.Wrap(err, Resource)
		}
		sets = append(sets, s)
	}
	return sets, dberr.Wrap(rows.Err(), Resource)
}

func (repository *PostgresRepository) List(context context.Context, ownerID int64, filter Filter) ([]*Set, error) {
	query := setSelect + fmt.Sprintf(` WHERE %s = $1`, schema.Set.UserID)
	args := []any{ownerID}

	if filter.ExerciseID != "" {
		args = append(args, filter.ExerciseID)
		query += fmt.Sprintf(` AND %s = $%d`, schema.Set.ExerciseID, len(args))
	}
	if filter.WorkoutID != "" {
		args = append(args, filter.WorkoutID)
		query += fmt.Sprintf(` AND %s = $%d`, schema.Set.WorkoutID, len(args))
	}

	query += fmt.Sprintf(` ORDER BY %s`, schema.Set.DBID)
	return repository.list(context, query, args...)
}

func (repository *PostgresRepository) ListAll(context context.Context) ([]*Set, error) {
	return repository.list(context, setSelect+fmt.Sprintf(` ORDER BY %s`, schema.Set.DBID))
}

func (repository *PostgresRepository) FindByID(context context.Context, ownerID int64, id string) (*Set, error) {
	query := setSelect + fmt.Sprintf(` WHERE %s = $1 AND %s = $2`, schema.Set.ID, schema.Set.UserID)

	s, err := scanSet(repository.db.QueryRow(context, query, id, ownerID))
	if err != nil {
		return nil, dberr.Wrap(err, Resource)
	}
	return s, nil
}

func (repository *PostgresRepository) Create(context context.Context, sets []*Set) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s`,
		schema.Set.Table,
		schema.Set.ID, schema.Set.SetNumber, schema.Set.Reps, schema.Set.Weight,
		schema.Set.ExerciseID, schema.Set.WorkoutID, schema.Set.UserID,
		schema.Set.CreatedAt,
	)

	return database.InTx(context, repository.db, func(tx pgx.Tx) error {
		for _, s := range sets {
			err := tx.QueryRow(context, query,
				s.ID, s.SetNumber, s.Reps, s.Weight, s.ExerciseID, s.WorkoutID, s.UserID,
			).Scan(&s.CreatedAt)
			if err != nil {
				return dberr.Wrap(err, Resource)
			}
		}
		return nil
	})
}

func (repository *PostgresRepository) Update(context context.Context, ownerID int64, change Change) error {
	return applyChange(context, repository.db, ownerID, change)
}

func (repository *PostgresRepository) UpdateMany(context context.Context, ownerID int64, changes []Change) error {
	return database.InTx(context, repository.db, func(tx pgx.Tx) error {
		for _, change := range changes {
			if err := applyChange(context, tx, ownerID, change); err != nil {
				return err
			}
		}
		return nil
	})
}

func applyChange(context context.Context, q database.Querier, ownerID int64, change Change) error {
	assignments := &database.Assignments{}
	if change.Patch.Reps != nil {
		assignments.Set(schema.Set.Reps, *change.Patch.Reps)
	}
	if change.Patch.Weight != nil {
		assignments.Set(schema.Set.Weight, *change.Patch.Weight)
	}
	if change.Patch.SetNumber != nil {
		assignments.Set(schema.Set.SetNumber, *change.Patch.SetNumber)
	}
	if assignments.Empty() {
		return apperr.ValidationError(MessageEmptyPatch)
	}

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $%d AND %s = $%d`,
		schema.Set.Table, assignments.Clause(),
		schema.Set.ID, assignments.Len()+1,
		schema.Set.UserID, assignments.Len()+2,
	)

	cmd, err := q.Exec(context, query, assignments.Args(change.ID, ownerID)...)
	if err != nil {
		return dberr.Wrap(err, Resource)
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound(Resource)
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, ownerID int64, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, schema.Set.Table, schema.Set.ID, schema.Set.UserID)

	cmd, err := repository.db.Exec(context, query, id, ownerID)
	if err != nil {
		return dberr.Wrap(err, Resource)
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound(Resource)
	}
	return nil
}
