// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package workout

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

var workoutSelect = fmt.Sprintf(`SELECT %s FROM %s`, schema.List(schema.Workout.Columns()), schema.Workout.Table)

func scanWorkout(row pgx.Row) (*Workout, error) {
	w := &Workout{}
	err := row.Scan(&w.ID, &w.Title, &w.CreatedAt, &w.UserID)
	return w, err
}

func (repository *PostgresRepository) list(context context.Context, query string, args ...any) ([]*Workout, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, Resource)
	}
	defer rows.Close()

	workouts := []*Workout{}
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, dberr.Wrap(err, Resource)
		}
		workouts = append(workouts, w)
	}
	return workouts, dberr.Wrap(rows.Err(), Resource)
}

func (repository *PostgresRepository) List(context context.Context, ownerID int64) ([]*Workout, error) {
	query := workoutSelect + fmt.Sprintf(` WHERE %s = $1 ORDER BY %s`, schema.Workout.UserID, schema.Workout.DBID)
	return repository.list(context, query, ownerID)
}

func (repository *PostgresRepository) ListAll(context context.Context) ([]*Workout, error) {
	return repository.list(context, workoutSelect+fmt.Sprintf(` ORDER BY %s`, schema.Workout.DBID))
}

func (repository *PostgresRepository) FindByID(context context.Context, ownerID int64, id string) (*Workout, error) {
	query := workoutSelect + fmt.Sprintf(` WHERE %s = $1 AND %s = $2`, schema.Workout.ID, schema.Workout.UserID)

	w, err := scanWorkout(repository.db.QueryRow(context, query, id, ownerID))
	if err != nil {
		return nil, dberr.Wrap(err, Resource)
	}
	return w, nil
}

func (repository *PostgresRepository) Create(context context.Context, workouts []*Workout) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s`,
		schema.Workout.Table, schema.Workout.ID, schema.Workout.Title, schema.Workout.UserID,
		schema.Workout.CreatedAt,
	)

	return database.InTx(context, repository.db, func(tx pgx.Tx) error {
		for _, w := range workouts {
			if err := tx.QueryRow(context, query, w.ID, w.Title, w.UserID).Scan(&w.CreatedAt); err != nil {
				return dberr.Wrap(err, Resource)
			}
		}
		return nil
	})
}

func (repository *PostgresRepository) Update(context context.Context, ownerID int64, id string, patch Patch) error {
	assignments := &database.Assignments{}
	if patch.Title != nil {
		assignments.Set(schema.Workout.Title, *patch.Title)
	}
	if assignments.Empty() {
		return apperr.ValidationError(MessageEmptyPatch)
	}

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $%d AND %s = $%d`,
		schema.Workout.Table, assignments.Clause(),
		schema.Workout.ID, assignments.Len()+1,
		schema.Workout.UserID, assignments.Len()+2,
	)

	cmd, err := repository.db.Exec(context, query, assignments.Args(id, ownerID)...)
	if err != nil {
		return dberr.Wrap(err, Resource)
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound(Resource)
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, ownerID int64, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.Workout.Table, schema.Workout.ID, schema.Workout.UserID,
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
