// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package exercise_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/strongly/internal/core/exercise"
	"github.com/taibuivan/strongly/internal/core/set"
	"github.com/taibuivan/strongly/internal/core/workout"
	"github.com/taibuivan/strongly/internal/platform/middleware"
	"github.com/taibuivan/strongly/internal/platform/sec"
	"github.com/taibuivan/strongly/internal/platform/testutil"
)

type fixture struct {
	router http.Handler
	alice  string
	bob    string
}

func newFixture() fixture {
	store := testutil.NewStore()
	authenticator := testutil.NewAuthenticator()
	logger := testutil.Logger()

	workouts := workout.NewService(store.Workouts(), logger)
	exercises := exercise.NewService(store.Exercises(), workouts, logger)
	sets := set.NewService(store.Sets(), exercises, logger)

	router := chi.NewRouter()
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticate(authenticator))
		protected.Mount("/api/workouts", workout.NewHandler(workouts).Routes())
		protected.Mount("/api/exercises", exercise.NewHandler(exercises).Routes())
		protected.Mount("/api/sets", set.NewHandler(sets).Routes())
	})

	return fixture{
		router: router,
		alice:  authenticator.Add("alice", &sec.Principal{UserID: 1, Username: "alice"}),
		bob:    authenticator.Add("bob", &sec.Principal{UserID: 2, Username: "bob"}),
	}
}

func (f fixture) workout(t *testing.T, authorization, title string) workout.Workout {
	t.Helper()
	return testutil.Created[workout.Workout](t, f.router, "/api/workouts", authorization, map[string]any{"title": title})
}

func (f fixture) exercise(t *testing.T, authorization, workoutID, title string) exercise.Exercise {
	t.Helper()
	return testutil.Created[exercise.Exercise](t, f.router, "/api/exercises", authorization, map[string]any{
		"title":      title,
		"workout_id": workoutID,
	})
}

func TestExercises_CreateRequiresOwnedWorkout(t *testing.T) {
	f := newFixture()
	legs := f.workout(t, f.alice, "Leg Day")

	apitest.New().
		Handler(f.router).
		Post("/api/exercises").
		Header("Authorization", f.bob).
		JSON(map[string]any{"title": "Squat", "workout_id": legs.ID}).
		Expect(t).
		Status(http.StatusNotFound).
		Assert(jsonpath.Equal("$.error", "Workout doesn't exist")).
		End()

	apitest.New().
		Handler(f.router).
		Post("/api/exercises").
		Header("Authorization", f.alice).
		JSON(`{"title": "Squat"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal("$.error", "Missing 'workout_id' in request body")).
		End()

	recorder := testutil.Do(t, f.router, http.MethodPost, "/api/exercises", f.alice, map[string]any{
		"title":      "Squat",
		"workout_id": legs.ID,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	created := testutil.Decode[exercise.Exercise](t, recorder)
	assert.Equal(t, legs.ID, created.WorkoutID)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "/api/exercises/"+created.ID, recorder.Header().Get("Location"))
}

func TestExercises_ListFilter(t *testing.T) {
	f := newFixture()
	legs := f.workout(t, f.alice, "Leg Day")
	push := f.workout(t, f.alice, "Push Day")
	f.exercise(t, f.alice, legs.ID, "Squat")
	f.exercise(t, f.alice, push.ID, "Bench")

	apitest.New().
		Handler(f.router).
		Get("/api/exercises").
		Header("Authorization", f.alice).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len("$", 2)).
		End()

	apitest.New().
		Handler(f.router).
		Get("/api/exercises").
		Query("workout_id", push.ID).
		Header("Authorization", f.alice).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len("$", 1)).
		Assert(jsonpath.Equal("$[0].title", "Bench")).
		End()

	apitest.New().
		Handler(f.router).
		Get("/api/exercises").
		Query("workout_id", "not-a-uuid").
		Header("Authorization", f.alice).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len("$", 0)).
		End()

	apitest.New().
		Handler(f.router).
		Get("/api/exercises").
		Query("exercise_id", push.ID).
		Header("Authorization", f.alice).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal("$.error", "'exercise_id' is not a valid query")).
		End()

	apitest.New().
		Handler(f.router).
		Get("/api/exercises").
		Header("Authorization", f.bob).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len("$", 0)).
		End()
}

func TestExercises_PatchKeepsUntouchedFields(t *testing.T) {
	f := newFixture()
	legs := f.workout(t, f.alice, "Leg Day")
	squat := f.exercise(t, f.alice, legs.ID, "Squat")

	apitest.New().
		Handler(f.router).
		Patch("/api/exercises/"+squat.ID).
		Header("Authorization", f.alice).
		JSON(`{}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal("$.error", exercise.MessageEmptyPatch)).
		End()

	apitest.New().
		Handler(f.router).
		Patch("/api/exercises/"+squat.ID).
		Header("Authorization", f.alice).
		JSON(`{"title": "Front Squat"}`).
		Expect(t).
		Status(http.StatusNoContent).
		End()

	apitest.New().
		Handler(f.router).
		Get("/api/exercises/"+squat.ID).
		Header("Authorization", f.alice).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.title", "Front Squat")).
		Assert(jsonpath.Equal("$.workout_id", legs.ID)).
		End()
}

func TestExercises_MoveCarriesSets(t *testing.T) {
	f := newFixture()
	legs := f.workout(t, f.alice, "Leg Day")
	push := f.workout(t, f.alice, "Push Day")
	squat := f.exercise(t, f.alice, legs.ID, "Squat")

	created := testutil.Created[set.Set](t, f.router, "/api/sets", f.alice, map[string]any{
		"reps":        5,
		"weight":      100,
		"exercise_id": squat.ID,
		"workout_id":  legs.ID,
	})

	apitest.New().
		Handler(f.router).
		Patch("/api/exercises/"+squat.ID).
		Header("Authorization", f.alice).
		JSON(map[string]any{"workout_id": push.ID}).
		Expect(t).
		Status(http.StatusNoContent).
		End()

	apitest.New().
		Handler(f.router).
		Get("/api/sets/"+created.ID).
		Header("Authorization", f.alice).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.workout_id", push.ID)).
		End()

	bobs := f.workout(t, f.bob, "Bob Day")
	apitest.New().
		Handler(f.router).
		Patch("/api/exercises/"+squat.ID).
		Header("Authorization", f.alice).
		JSON(map[string]any{"workout_id": bobs.ID}).
		Expect(t).
		Status(http.StatusNotFound).
		Assert(jsonpath.Equal("$.error", "Workout doesn't exist")).
		End()
}

func TestExercises_BulkPatchIsAtomic(t *testing.T) {
	f := newFixture()
	legs := f.workout(t, f.alice, "Leg Day")
	squat := f.exercise(t, f.alice, legs.ID, "Squat")
	lunge := f.exercise(t, f.alice, legs.ID, "Lunge")

	apitest.New().
		Handler(f.router).
		Patch("/api/exercises").
		Header("Authorization", f.alice).
		JSON([]map[string]any{
			{"id": squat.ID, "title": "Back Squat"},
			{"id": lunge.ID},
		}).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal("$.error", exercise.MessageEmptyPatch)).
		End()

	apitest.New().
		Handler(f.router).
		Get("/api/exercises/"+squat.ID).
		Header("Authorization", f.alice).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.title", "Squat")).
		End()

	apitest.New().
		Handler(f.router).
		Patch("/api/exercises").
		Header("Authorization", f.alice).
		JSON([]map[string]any{
			{"id": squat.ID, "title": "Back Squat"},
			{"id": lunge.ID, "title": "Walking Lunge"},
		}).
		Expect(t).
		Status(http.StatusNoContent).
		End()

	apitest.New().
		Handler(f.router).
		Get("/api/exercises").
		Header("Authorization", f.alice).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$[0].title", "Back Squat")).
		Assert(jsonpath.Equal("$[1].title", "Walking Lunge")).
		End()

	apitest.New().
		Handler(f.router).
		Patch("/api/exercises").
		Header("Authorization", f.alice).
		JSON(`[]`).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}

func TestExercises_DeleteCascadesToSets(t *testing.T) {
	f := newFixture()
	legs := f.workout(t, f.alice, "Leg Day")
	squat := f.exercise(t, f.alice, legs.ID, "Squat")
	created := testutil.Created[set.Set](t, f.router, "/api/sets", f.alice, map[string]any{
		"reps":        5,
		"weight":      100,
		"exercise_id": squat.ID,
		"workout_id":  legs.ID,
	})

	apitest.New().
		Handler(f.router).
		Delete("/api/exercises/"+squat.ID).
		Header("Authorization", f.alice).
		Expect(t).
		Status(http.StatusNoContent).
		End()

	apitest.New().
		Handler(f.router).
		Get("/api/exercises/"+squat.ID).
		Header("Authorization", f.alice).
		Expect(t).
		Status(http.StatusNotFound).
		Assert(jsonpath.Equal("$.error", "Exercise doesn't exist")).
		End()

	apitest.New().
		Handler(f.router).
		Get("/api/sets/"+created.ID).
		Header("Authorization", f.alice).
		Expect(t).
		Status(http.StatusNotFound).
		End()
}
