// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package exercise_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/strongly/internal/core/exercise"
	"github.com/taibuivan/strongly/internal/platform/apperr"
	"github.com/taibuivan/strongly/internal/platform/testutil"
	"github.com/taibuivan/strongly/pkg/pointer"
)

const (
	squatID = "0190a6e2-0000-7000-8000-000000000001"
	lungeID = "0190a6e2-0000-7000-8000-000000000002"
	pushID  = "0190a6e2-0000-7000-8000-0000000000f0"
)

func TestPostgresRepository_List(t *testing.T) {
	db := &testutil.SQLRecorder{}
	repository := exercise.NewPostgresRepository(db)

	_, err := repository.List(context.Background(), 7, exercise.Filter{WorkoutID: pushID})
	require.Error(t, err)

	require.Len(t, db.Statements, 1)
	assert.Equal(t,
		"SELECT id, title, workout_id, user_id, createddate FROM strongly_exercises WHERE user_id = $1 AND workout_id = $2 ORDER BY db_id",
		db.Statements[0].SQL)
	assert.Equal(t, []any{int64(7), pushID}, db.Statements[0].Args)
}

func TestPostgresRepository_FindByIDIsOwnerScoped(t *testing.T) {
	db := &testutil.SQLRecorder{}
	repository := exercise.NewPostgresRepository(db)

	_, err := repository.FindByID(context.Background(), 2, squatID)
	assert.True(t, apperr.IsNotFound(err))

	assert.Equal(t,
		"SELECT id, title, workout_id, user_id, createddate FROM strongly_exercises WHERE id = $1 AND user_id = $2",
		db.Statements[0].SQL)
	assert.Equal(t, []any{squatID, int64(2)}, db.Statements[0].Args)
}

func TestPostgresRepository_UpdateMovesSets(t *testing.T) {
	db := &testutil.SQLRecorder{}
	repository := exercise.NewPostgresRepository(db)

	err := repository.Update(context.Background(), 1, exercise.Change{
		ID:    squatID,
		Patch: exercise.Patch{Title: pointer.To("Back Squat"), WorkoutID: pointer.To(pushID)},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"UPDATE strongly_exercises SET title = $1, workout_id = $2 WHERE id = $3 AND user_id = $4",
		"UPDATE strongly_sets SET workout_id = $1 WHERE exercise_id = $2 AND user_id = $3",
	}, db.SQL())
	assert.Equal(t, []any{"Back Squat", pushID, squatID, int64(1)}, db.Statements[0].Args)
	assert.Equal(t, []any{pushID, squatID, int64(1)}, db.Statements[1].Args)
	assert.Equal(t, 1, db.Commits)
}

func TestPostgresRepository_UpdateTitleOnly(t *testing.T) {
	db := &testutil.SQLRecorder{}
	repository := exercise.NewPostgresRepository(db)

	err := repository.Update(context.Background(), 1, exercise.Change{
		ID:    squatID,
		Patch: exercise.Patch{Title: pointer.To("Front Squat")},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"UPDATE strongly_exercises SET title = $1 WHERE id = $2 AND user_id = $3",
	}, db.SQL())
}

func TestPostgresRepository_UpdateManyRollsBack(t *testing.T) {
	db := &testutil.SQLRecorder{Affected: []int64{1, 0}}
	repository := exercise.NewPostgresRepository(db)

	err := repository.UpdateMany(context.Background(), 1, []exercise.Change{
		{ID: squatID, Patch: exercise.Patch{Title: pointer.To("Back Squat")}},
		{ID: lungeID, Patch: exercise.Patch{Title: pointer.To("Walking Lunge")}},
	})
	assert.True(t, apperr.IsNotFound(err))

	assert.Len(t, db.Statements, 2)
	assert.Equal(t, 0, db.Commits)
	assert.Equal(t, 1, db.Rollbacks)
}
