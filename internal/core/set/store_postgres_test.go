// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package set_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/strongly/internal/core/set"
	"github.com/taibuivan/strongly/internal/platform/apperr"
	"github.com/taibuivan/strongly/internal/platform/testutil"
	"github.com/taibuivan/strongly/pkg/pointer"
)

const (
	firstSetID  = "0190a6e2-0000-7000-8000-000000000011"
	secondSetID = "0190a6e2-0000-7000-8000-000000000012"
	squatID     = "0190a6e2-0000-7000-8000-000000000001"
	legDayID    = "0190a6e2-0000-7000-8000-0000000000a0"
)

func TestPostgresRepository_ListFilters(t *testing.T) {
	db := &testutil.SQLRecorder{}
	repository := set.NewPostgresRepository(db)

	_, err := repository.List(context.Background(), 3, set.Filter{ExerciseID: squatID, WorkoutID: legDayID})
	require.Error(t, err)

	assert.Equal(t,
		"SELECT id, set_number, reps, weight, exercise_id, workout_id, user_id, createddate FROM strongly_sets "+
			"WHERE user_id = $1 AND exercise_id = $2 AND workout_id = $3 ORDER BY db_id",
		db.Statements[0].SQL)
	assert.Equal(t, []any{int64(3), squatID, legDayID}, db.Statements[0].Args)
}

func TestPostgresRepository_UpdateWritesZero(t *testing.T) {
	db := &testutil.SQLRecorder{}
	repository := set.NewPostgresRepository(db)

	err := repository.Update(context.Background(), 1, set.Change{
		ID:    firstSetID,
		Patch: set.Patch{Reps: pointer.To(0), SetNumber: pointer.To(2)},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"UPDATE strongly_sets SET reps = $1, set_number = $2 WHERE id = $3 AND user_id = $4",
	}, db.SQL())
	assert.Equal(t, []any{0, 2, firstSetID, int64(1)}, db.Statements[0].Args)
}

func TestPostgresRepository_UpdateForeignRow(t *testing.T) {
	db := &testutil.SQLRecorder{Affected: []int64{0}}
	repository := set.NewPostgresRepository(db)

	err := repository.Update(context.Background(), 2, set.Change{
		ID:    firstSetID,
		Patch: set.Patch{Weight: pointer.To(60.0)},
	})
	assert.True(t, apperr.IsNotFound(err))
}

func TestPostgresRepository_UpdateManyCommitsOnce(t *testing.T) {
	db := &testutil.SQLRecorder{}
	repository := set.NewPostgresRepository(db)

	err := repository.UpdateMany(context.Background(), 1, []set.Change{
		{ID: firstSetID, Patch: set.Patch{Reps: pointer.To(8)}},
		{ID: secondSetID, Patch: set.Patch{Weight: pointer.To(102.5)}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"UPDATE strongly_sets SET reps = $1 WHERE id = $2 AND user_id = $3",
		"UPDATE strongly_sets SET weight = $1 WHERE id = $2 AND user_id = $3",
	}, db.SQL())
	assert.Equal(t, 1, db.Commits)
	assert.Zero(t, db.Rollbacks)
}
