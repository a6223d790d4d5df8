// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package exercise

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

var exerciseSelect = fmt.Sprintf(`SELECT %s FROM %s`, schema.List(schema.Exercise.Columns()), schema.Exercise.Table)

func scanExercise(row pgx.Row) (*Exercise, error) {
	e := &Exercise{}
	err := row.Scan(&e.ID, &e.Title, &e.WorkoutID, &e.UserID, &e.CreatedAt)
	return e, err
}

func (repository *PostgresRepository) list(context context.Context, query string, args ...any) ([]*Exercise, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, Resource)
	}
	defer rows.Close()

	exercises := []*Exercise{}
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, dberr.Wrap(err, Resource)
		}
		exercises = append(exercises, e)
	}
	return exercises, dberr.Wrap(rows.Err(), Resource)
}

func (repository *PostgresRepository) List(context context.Context, ownerID int64, filter Filter) ([]*Exercise, error) {
	query := exerciseSelect + fmt.Sprintf(` WHERE %s = $1`, schema.Exercise.UserID)
	args := []any{ownerID}

	if filter.WorkoutID != "" {
		args = append(args, filter.WorkoutID)
		query += fmt.Sprintf(` AND %s = $%d`, schema.Exercise.WorkoutID, len(args))
	}

	query += fmt.Sprintf(` ORDER BY %s`, schema.Exercise.DBID)
	return repository.list(context, query, args...)
}

func (repository *PostgresRepository) ListAll(context context.Context) ([]*Exercise, error) {
	return repository.list(context, exerciseSelect+fmt.Sprintf(` ORDER BY %s`, schema.Exercise.DBID))
}

func (repository *PostgresRepository) FindByID(context context.Context, ownerID int64, id string) (*Exercise, error) {
	query := exerciseSelect + fmt.Sprintf(` WHERE %s = $1 AND %s = $2`, schema.Exercise.ID, schema.Exercise.UserID)

	e, err := scanExercise(repository.db.QueryRow(context, query, id, ownerID))
	if err != nil {
		return nil, dberr.Wrap(err, Resource)
	}
	return e, nil
}

func (repository *PostgresRepository) Create(context context.Context, exercises []*Exercise) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s`,
		schema.Exercise.Table, schema.Exercise.ID, schema.Exercise.Title, schema.Exercise.WorkoutID, schema.Exercise.UserID,
		schema.Exercise.CreatedAt,
	)

	return database.InTx(context, repository.db, func(tx pgx.Tx) error {
		for _, e := range exercises {
			if err := tx.QueryRow(context, query, e.ID, e.Title, e.WorkoutID, e.UserID).Scan(&e.CreatedAt); err != nil {
				return dberr.Wrap(err, Resource)
			}
		}
		return nil
	})
}

func (repository *PostgresRepository) Update(context context.Context, ownerID int64, change Change) error {
	return database.InTx(context, repository.db, func(tx pgx.Tx) error {
		return applyChange(context, tx, ownerID, change)
	})
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

// applyChange updates one exercise and, if its workout changed, re-parents its sets.
func applyChange(context context.Context, q database.Querier, ownerID int64, change Change) error {
	assignments := &database.Assignments{}
	if change.Patch.Title != nil {
		assignments.Set(schema.Exercise.Title, *change.Patch.Title)
	}
	if change.Patch.WorkoutID != nil {
		assignments.Set(schema.Exercise.WorkoutID, *change.Patch.WorkoutID)
	}
	if assignments.Empty() {
		return apperr.ValidationError(MessageEmptyPatch)
	}

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $%d AND %s = $%d`,
		schema.Exercise.Table, assignments.Clause(),
		schema.Exercise.ID, assignments.Len()+1,
		schema.Exercise.UserID, assignments.Len()+2,
	)

	cmd, err := q.Exec(context, query, assignments.Args(change.ID, ownerID)...)
	if err != nil {
		return dberr.Wrap(err, Resource)
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound(Resource)
	}

	if change.Patch.WorkoutID == nil {
		return nil
	}

	moveSets := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2 AND %s = $3`,
		schema.Set.Table, schema.Set.WorkoutID, schema.Set.ExerciseID, schema.Set.UserID,
	)
	if _, err := q.Exec(context, moveSets, *change.Patch.WorkoutID, change.ID, ownerID); err != nil {
		return dberr.Wrap(err, Resource)
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, ownerID int64, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.Exercise.Table, schema.Exercise.ID, schema.Exercise.UserID,
	)

	cmd, err := repository.db.Exec(context, query, id, ownerID)
	if err != nil {
		return dberr.Wrap(err, Resource)
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound(Resource)
	}
	return nil
}
