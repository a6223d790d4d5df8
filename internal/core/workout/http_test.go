// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package workout_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/assert"

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

	service := workout.NewService(store.Workouts(), testutil.Logger())

	router := chi.NewRouter()
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticate(authenticator))
		protected.Mount("/api/workouts", workout.NewHandler(service).Routes())
	})

	return fixture{
		router: router,
		alice:  authenticator.Add("alice", &sec.Principal{UserID: 1, Username: "alice"}),
		bob:    authenticator.Add("bob", &sec.Principal{UserID: 2, Username: "bob"}),
	}
}

func TestWorkouts_RequireAuthentication(t *testing.T) {
	f := newFixture()

	apitest.New().
		Handler(f.router).
		Get("/api/workouts").
		Expect(t).
		Status(http.StatusUnauthorized).
		Assert(jsonpath.Equal("$.error", "Missing bearer token")).
		End()

	apitest.New().
		Handler(f.router).
		Get("/api/workouts").
		Header("Authorization", "Bearer forged").
		Expect(t).
		Status(http.StatusUnauthorized).
		Assert(jsonpath.Equal("$.error", "Unauthorized request")).
		End()
}

func TestWorkouts_CreateThenRead(t *testing.T) {
	f := newFixture()

	recorder := testutil.Do(t, f.router, http.MethodPost, "/api/workouts", f.alice, map[string]any{"title": "Leg Day"})
	assert.Equal(t, http.StatusCreated, recorder.Code)

	created := testutil.Decode[workout.Workout](t, recorder)
	assert.Equal(t, "Leg Day", created.Title)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "/api/workouts/"+created.ID, recorder.Header().Get("Location"))

	apitest.New().
		Handler(f.router).
		Get("/api/workouts/"+created.ID).
		Header("Authorization", f.alice).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.id", created.ID)).
		Assert(jsonpath.Equal("$.title", "Leg Day")).
		End()

	apitest.New().
		Handler(f.router).
		Get("/api/workouts").
		Header("Authorization", f.alice).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len("$", 1)).
		Assert(jsonpath.Equal("$[0].title", "Leg Day")).
		End()
}

func TestWorkouts_TitleKeptAsSent(t *testing.T) {
	f := newFixture()

	for _, title := range []string{" Leg Day ", "Cafe\u0301 Circuit"} {
		created := testutil.Created[workout.Workout](t, f.router, "/api/workouts", f.alice, map[string]any{"title": title})

		apitest.New().
			Handler(f.router).
			Get("/api/workouts/"+created.ID).
			Header("Authorization", f.alice).
			Expect(t).
			Status(http.StatusOK).
			Assert(jsonpath.Equal("$.title", title)).
			End()
	}

	apitest.New().
		Handler(f.router).
		Post("/api/workouts").
		Header("Authorization", f.alice).
		JSON(`{"title": "   "}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal("$.details[0].field", "title")).
		End()
}

func TestWorkouts_ClientIDIgnored(t *testing.T) {
	f := newFixture()
	alices := testutil.Created[workout.Workout](t, f.router, "/api/workouts", f.alice, map[string]any{"title": "Leg Day"})

	bobs := testutil.Created[workout.Workout](t, f.router, "/api/workouts", f.bob, map[string]any{"id": alices.ID, "title": "Pull Day"})
	assert.NotEqual(t, alices.ID, bobs.ID)

	apitest.New().
		Handler(f.router).
		Get("/api/workouts/"+alices.ID).
		Header("Authorization", f.alice).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.title", "Leg Day")).
		End()
}

func TestWorkouts_OwnershipIsolation(t *testing.T) {
	f := newFixture()
	created := testutil.Created[workout.Workout](t, f.router, "/api/workouts", f.alice, map[string]any{"title": "Leg Day"})

	apitest.New().
		Handler(f.router).
		Get("/api/workouts").
		Header("Authorization", f.bob).
		Expect(t).
		Status(http.StatusOK).
		Body(`[]`).
		End()

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		apitest.New().
			Handler(f.router).
			Method(method).
			URL("/api/workouts/"+created.ID).
			Header("Authorization", f.bob).
			Expect(t).
			Status(http.StatusNotFound).
			Assert(jsonpath.Equal("$.error", "Workout doesn't exist")).
			End()
	}
}

func TestWorkouts_CreateValidation(t *testing.T) {
	f := newFixture()

	apitest.New().
		Handler(f.router).
		Post("/api/workouts").
		Header("Authorization", f.alice).
		JSON(`{"name": "ignored"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal("$.error", "Missing 'title' in request body")).
		End()

	apitest.New().
		Handler(f.router).
		Post("/api/workouts").
		Header("Authorization", f.alice).
		JSON(`[]`).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}

func TestWorkouts_BulkCreate(t *testing.T) {
	f := newFixture()

	apitest.New().
		Handler(f.router).
		Post("/api/workouts").
		Header("Authorization", f.alice).
		JSON(`[{"title": "Push"}, {"title": "Pull"}]`).
		Expect(t).
		Status(http.StatusCreated).
		Assert(jsonpath.Len("$", 2)).
		Assert(jsonpath.Equal("$[1].title", "Pull")).
		End()

	apitest.New().
		Handler(f.router).
		Post("/api/workouts").
		Header("Authorization", f.alice).
		JSON(`[{"title": "Legs"}, {}]`).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal("$.details[0].field", "[1].title")).
		End()

	apitest.New().
		Handler(f.router).
		Get("/api/workouts").
		Header("Authorization", f.alice).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len("$", 2)).
		End()
}

func TestWorkouts_Update(t *testing.T) {
	f := newFixture()
	created := testutil.Created[workout.Workout](t, f.router, "/api/workouts", f.alice, map[string]any{"title": "Leg Day"})

	apitest.New().
		Handler(f.router).
		Patch("/api/workouts/"+created.ID).
		Header("Authorization", f.alice).
		JSON(`{"unrelated": true}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal("$.error", workout.MessageEmptyPatch)).
		End()

	apitest.New().
		Handler(f.router).
		Patch("/api/workouts/"+created.ID).
		Header("Authorization", f.alice).
		JSON(`{"title": "Squat Day"}`).
		Expect(t).
		Status(http.StatusNoContent).
		End()

	apitest.New().
		Handler(f.router).
		Get("/api/workouts/"+created.ID).
		Header("Authorization", f.alice).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.title", "Squat Day")).
		End()

	apitest.New().
		Handler(f.router).
		Patch("/api/workouts/"+created.ID).
		Header("Authorization", f.bob).
		JSON(`{"title": "Hijack"}`).
		Expect(t).
		Status(http.StatusNotFound).
		End()
}

func TestWorkouts_Delete(t *testing.T) {
	f := newFixture()
	created := testutil.Created[workout.Workout](t, f.router, "/api/workouts", f.alice, map[string]any{"title": "Leg Day"})

	apitest.New().
		Handler(f.router).
		Delete("/api/workouts/"+created.ID).
		Header("Authorization", f.alice).
		Expect(t).
		Status(http.StatusNoContent).
		End()

	apitest.New().
		Handler(f.router).
		Get("/api/workouts/"+created.ID).
		Header("Authorization", f.alice).
		Expect(t).
		Status(http.StatusNotFound).
		Assert(jsonpath.Equal("$.error", "Workout doesn't exist")).
		End()
}

func TestWorkouts_UnsupportedQuery(t *testing.T) {
	f := newFixture()

	apitest.New().
		Handler(f.router).
		Get("/api/workouts").
		Query("bogus", "1").
		Header("Authorization", f.alice).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal("$.code", "UNSUPPORTED_QUERY")).
		Assert(jsonpath.Equal("$.error", "'bogus' is not a valid query")).
		End()
}

func TestWorkouts_OutputIsEscaped(t *testing.T) {
	f := newFixture()

	apitest.New().
		Handler(f.router).
		Post("/api/workouts").
		Header("Authorization", f.alice).
		JSON(`{"title": "Leg Day<script>alert(1)</script> & <b>Core</b>"}`).
		Expect(t).
		Status(http.StatusCreated).
		Assert(jsonpath.Equal("$.title", "Leg Day &amp; Core")).
		End()
}
