// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/taibuivan/strongly/internal/core/exercise"
	"github.com/taibuivan/strongly/internal/core/set"
	"github.com/taibuivan/strongly/internal/core/workout"
	"github.com/taibuivan/strongly/internal/platform/apperr"
	"github.com/taibuivan/strongly/internal/users/auth"
	"github.com/taibuivan/strongly/pkg/slice"
)

// Store holds every table in memory. Rows are kept in insertion order.
type Store struct {
	mu        sync.Mutex
	now       func() time.Time
	users     []*auth.User
	workouts  []*workout.Workout
	exercises []*exercise.Exercise
	sets      []*set.Set
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Users returns the [auth.UserRepository] view of the store.
func (s *Store) Users() *UserRepository { return &UserRepository{s} }

// Workouts returns the [workout.Repository] view of the store.
func (s *Store) Workouts() *WorkoutRepository { return &WorkoutRepository{s} }

// Exercises returns the [exercise.Repository] view of the store.
func (s *Store) Exercises() *ExerciseRepository { return &ExerciseRepository{s} }

// Sets returns the [set.Repository] view of the store.
func (s *Store) Sets() *SetRepository { return &SetRepository{s} }

var (
	_ auth.UserRepository = (*UserRepository)(nil)
	_ workout.Repository  = (*WorkoutRepository)(nil)
	_ exercise.Repository = (*ExerciseRepository)(nil)
	_ set.Repository      = (*SetRepository)(nil)
)

// # Users

type UserRepository struct{ s *Store }

func (r *UserRepository) FindByID(_ context.Context, id int64) (*auth.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)
	return err == nil, nil
}

func (r *UserRepository) Create(_ context.Context, user *auth.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == user.Username {
			return apperr.Conflict(auth.MessageUsernameTaken)
		}
	}

	user.ID = int64(len(r.s.users) + 1)
	user.CreatedAt = r.s.now()
	clone := *user
	r.s.users = append(r.s.users, &clone)
	return nil
}

func (r *UserRepository) ListAll(_ context.Context) ([]*auth.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*auth.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

// # Workouts

type WorkoutRepository struct{ s *Store }

func (r *WorkoutRepository) find(ownerID int64, id string) *workout.Workout {
	for _, w := range r.s.workouts {
		if w.ID == id && w.UserID == ownerID {
			return w
		}
	}
	return nil
}

func (r *WorkoutRepository) List(_ context.Context, ownerID int64) ([]*workout.Workout, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*workout.Workout{}
	for _, w := range r.s.workouts {
		if w.UserID == ownerID {
			clone := *w
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *WorkoutRepository) ListAll(_ context.Context) ([]*workout.Workout, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*workout.Workout{}
	for _, w := range r.s.workouts {
		clone := *w
		out = append(out, &clone)
	}
	return out, nil
}

func (r *WorkoutRepository) FindByID(_ context.Context, ownerID int64, id string) (*workout.Workout, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	w := r.find(ownerID, id)
	if w == nil {
		return nil, apperr.NotFound(workout.Resource)
	}
	clone := *w
	return &clone, nil
}

func (r *WorkoutRepository) Create(_ context.Context, workouts []*workout.Workout) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	seen := map[string]bool{}
	for _, w := range r.s.workouts {
		seen[w.ID] = true
	}
	for _, w := range workouts {
		if seen[w.ID] {
			return apperr.Conflict(workout.Resource + " already exists")
		}
		seen[w.ID] = true
	}

	for _, w := range workouts {
		w.CreatedAt = r.s.now()
		clone := *w
		r.s.workouts = append(r.s.workouts, &clone)
	}
	return nil
}

func (r *WorkoutRepository) Update(_ context.Context, ownerID int64, id string, patch workout.Patch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	w := r.find(ownerID, id)
	if w == nil {
		return apperr.NotFound(workout.Resource)
	}
	if patch.Title != nil {
		w.Title = *patch.Title
	}
	return nil
}

func (r *WorkoutRepository) Delete(_ context.Context, ownerID int64, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.find(ownerID, id) == nil {
		return apperr.NotFound(workout.Resource)
	}

	r.s.workouts = slice.Filter(r.s.workouts, func(w *workout.Workout) bool { return w.ID != id })
	r.s.exercises = slice.Filter(r.s.exercises, func(e *exercise.Exercise) bool { return e.WorkoutID != id })
	r.s.sets = slice.Filter(r.s.sets, func(st *set.Set) bool { return st.WorkoutID != id })
	return nil
}

// # Exercises

type ExerciseRepository struct{ s *Store }

func (r *ExerciseRepository) find(ownerID int64, id string) *exercise.Exercise {
	for _, e := range r.s.exercises {
		if e.ID == id && e.UserID == ownerID {
			return e
		}
	}
	return nil
}

func (r *ExerciseRepository) List(_ context.Context, ownerID int64, f exercise.Filter) ([]*exercise.Exercise, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*exercise.Exercise{}
	for _, e := range r.s.exercises {
		if e.UserID != ownerID || (f.WorkoutID != "" && e.WorkoutID != f.WorkoutID) {
			continue
		}
		clone := *e
		out = append(out, &clone)
	}
	return out, nil
}

func (r *ExerciseRepository) ListAll(_ context.Context) ([]*exercise.Exercise, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*exercise.Exercise{}
	for _, e := range r.s.exercises {
		clone := *e
		out = append(out, &clone)
	}
	return out, nil
}

func (r *ExerciseRepository) FindByID(_ context.Context, ownerID int64, id string) (*exercise.Exercise, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e := r.find(ownerID, id)
	if e == nil {
		return nil, apperr.NotFound(exercise.Resource)
	}
	clone := *e
	return &clone, nil
}

func (r *ExerciseRepository) Create(_ context.Context, exercises []*exercise.Exercise) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	seen := map[string]bool{}
	for _, e := range r.s.exercises {
		seen[e.ID] = true
	}
	for _, e := range exercises {
		if seen[e.ID] {
			return apperr.Conflict(exercise.Resource + " already exists")
		}
		seen[e.ID] = true
	}

	for _, e := range exercises {
		e.CreatedAt = r.s.now()
		clone := *e
		r.s.exercises = append(r.s.exercises, &clone)
	}
	return nil
}

func (r *ExerciseRepository) Update(ctx context.Context, ownerID int64, change exercise.Change) error {
	return r.UpdateMany(ctx, ownerID, []exercise.Change{change})
}

func (r *ExerciseRepository) UpdateMany(_ context.Context, ownerID int64, changes []exercise.Change) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Resolve everything first so a missing row leaves the store untouched.
	targets := make([]*exercise.Exercise, len(changes))
	for i, change := range changes {
		if targets[i] = r.find(ownerID, change.ID); targets[i] == nil {
			return apperr.NotFound(exercise.Resource)
		}
	}

	for i, change := range changes {
		e := targets[i]
		if change.Patch.Title != nil {
			e.Title = *change.Patch.Title
		}
		if change.Patch.WorkoutID != nil {
			e.WorkoutID = *change.Patch.WorkoutID
			for _, st := range r.s.sets {
				if st.ExerciseID == e.ID && st.UserID == ownerID {
					st.WorkoutID = e.WorkoutID
				}
			}
		}
	}
	return nil
}

func (r *ExerciseRepository) Delete(_ context.Context, ownerID int64, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.find(ownerID, id) == nil {
		return apperr.NotFound(exercise.Resource)
	}

	r.s.exercises = slice.Filter(r.s.exercises, func(e *exercise.Exercise) bool { return e.ID != id })
	r.s.sets = slice.Filter(r.s.sets, func(st *set.Set) bool { return st.ExerciseID != id })
	return nil
}

// # Sets

type SetRepository struct{ s *Store }

func (r *SetRepository) find(ownerID int64, id string) *set.Set {
	for _, st := range r.s.sets {
		if st.ID == id && st.UserID == ownerID {
			return st
		}
	}
	return nil
}

func (r *SetRepository) List(_ context.Context, ownerID int64, f set.Filter) ([]*set.Set, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*set.Set{}
	for _, st := range r.s.sets {
		if st.UserID != ownerID ||
			(f.ExerciseID != "" && st.ExerciseID != f.ExerciseID) ||
			(f.WorkoutID != "" && st.WorkoutID != f.WorkoutID) {
			continue
		}
		clone := *st
		out = append(out, &clone)
	}
	return out, nil
}

func (r *SetRepository) ListAll(_ context.Context) ([]*set.Set, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*set.Set{}
	for _, st := range r.s.sets {
		clone := *st
		out = append(out, &clone)
	}
	return out, nil
}

func (r *SetRepository) FindByID(_ context.Context, ownerID int64, id string) (*set.Set, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	st := r.find(ownerID, id)
	if st == nil {
		return nil, apperr.NotFound(set.Resource)
	}
	clone := *st
	return &clone, nil
}

func (r *SetRepository) Create(_ context.Context, sets []*set.Set) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	seen := map[string]bool{}
	for _, st := range r.s.sets {
		seen[st.ID] = true
	}
	for _, st := range sets {
		if seen[st.ID] {
			return apperr.Conflict(set.Resource + " already exists")
		}
		seen[st.ID] = true
	}

	for _, st := range sets {
		st.CreatedAt = r.s.now()
		clone := *st
		r.s.sets = append(r.s.sets, &clone)
	}
	return nil
}

func (r *SetRepository) Update(ctx context.Context, ownerID int64, change set.Change) error {
	return r.UpdateMany(ctx, ownerID, []set.Change{change})
}

func (r *SetRepository) UpdateMany(_ context.Context, ownerID int64, changes []set.Change) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	targets := make([]*set.Set, len(changes))
	for i, change := range changes {
		if targets[i] = r.find(ownerID, change.ID); targets[i] == nil {
			return apperr.NotFound(set.Resource)
		}
	}

	for i, change := range changes {
		st := targets[i]
		if change.Patch.Reps != nil {
			st.Reps = *change.Patch.Reps
		}
		if change.Patch.Weight != nil {
			st.Weight = *change.Patch.Weight
		}
		if change.Patch.SetNumber != nil {
			number := *change.Patch.SetNumber
			st.SetNumber = &number
		}
	}
	return nil
}

func (r *SetRepository) Delete(_ context.Context, ownerID int64, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.find(ownerID, id) == nil {
		return apperr.NotFound(set.Resource)
	}
	r.s.sets = slice.Filter(r.s.sets, func(st *set.Set) bool { return st.ID != id })
	return nil
}

