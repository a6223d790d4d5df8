// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/strongly/internal/admin/seed"
	"github.com/taibuivan/strongly/internal/core/exercise"
	"github.com/taibuivan/strongly/internal/core/set"
	"github.com/taibuivan/strongly/internal/core/workout"
	"github.com/taibuivan/strongly/internal/platform/apperr"
	"github.com/taibuivan/strongly/internal/platform/sec"
	"github.com/taibuivan/strongly/internal/platform/testutil"
	"github.com/taibuivan/strongly/internal/users/auth"
)

func services(store *testutil.Store) seed.Services {
	logger := testutil.Logger()
	workouts := workout.NewService(store.Workouts(), logger)
	exercises := exercise.NewService(store.Exercises(), workouts, logger)

	return seed.Services{
		Auth:      auth.NewService(store.Users(), sec.NewPasswordHasher(bcrypt.MinCost), nil, nil, logger),
		Workouts:  workouts,
		Exercises: exercises,
		Sets:      set.NewService(store.Sets(), exercises, logger),
	}
}

func TestRun(t *testing.T) {
	store := testutil.NewStore()
	ctx := context.Background()
	account := seed.Account{Username: "demo", Password: "Demo!pass1", FullName: "Demo Lifter"}

	summary, err := seed.Run(ctx, services(store), account)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.UserID)
	assert.Equal(t, 2, summary.Workouts)
	assert.Equal(t, 4, summary.Exercises)
	assert.Equal(t, 9, summary.Sets)

	sets, err := store.Sets().List(ctx, summary.UserID, set.Filter{})
	require.NoError(t, err)
	require.Len(t, sets, 9)
	require.NotNil(t, sets[2].SetNumber)
	assert.Equal(t, 3, *sets[2].SetNumber)

	_, err = seed.Run(ctx, services(store), account)
	assert.Equal(t, apperr.CodeConflict, apperr.As(err).Code)
}
