// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package set manages the sets performed for an exercise.

A set is denormalised: it stores both its exercise and that exercise's workout
so listings can filter by either without a join. The workout must match the
exercise's workout whenever a set is written.
*/
package set

import "time"

// # Core Entities

// Set is one series of repetitions at a given weight.
type Set struct {
	ID         string    `json:"id"` // UUIDv7
	SetNumber  *int      `json:"set_number"`
	Reps       int       `json:"reps"`
	Weight     float64   `json:"weight"`
	ExerciseID string    `json:"exercise_id"`
	WorkoutID  string    `json:"workout_id"`
	UserID     int64     `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// # Search & Filtering

// Filter narrows a listing. Empty fields do not filter; both may be combined.
type Filter struct {
	ExerciseID string
	WorkoutID  string
}

// # Inputs

// CreateInput is one set in a POST body.
type CreateInput struct {
	SetNumber  *int     `json:"set_number"`
	Reps       *int     `json:"reps"`
	Weight     *float64 `json:"weight"`
	ExerciseID *string  `json:"exercise_id"`
	WorkoutID  *string  `json:"workout_id"`
}

// Patch carries the updatable fields. A nil field is left untouched; zero is a value.
type Patch struct {
	Reps      *int     `json:"reps"`
	Weight    *float64 `json:"weight"`
	SetNumber *int     `json:"set_number"`
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Reps == nil && p.Weight == nil && p.SetNumber == nil
}

// BulkPatch is one element of a collection PATCH body.
type BulkPatch struct {
	ID *string `json:"id"`
	Patch
}

// Change is a validated patch bound to its target row.
type Change struct {
	ID    string
	Patch Patch
}

// # Field Identifiers

const (
	FieldID         = "id"
	FieldSetNumber  = "set_number"
	FieldReps       = "reps"
	FieldWeight     = "weight"
	FieldExerciseID = "exercise_id"
	FieldWorkoutID  = "workout_id"
)

const (
	// Resource names the entity in not-found messages.
	Resource = "Set"

	MessageEmptyPatch = "Request body must contain reps, weight or set_number"
)
