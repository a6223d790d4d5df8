// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package exercise manages the exercises of a workout.

An exercise always belongs to one workout and carries that workout's owner;
the owner match is checked here, not left to the store.
*/
package exercise

import (
	"time"

	"github.com/taibuivan/strongly/internal/platform/sanitize"
)

// # Core Entities

// Exercise is one movement performed during a workout.
type Exercise struct {
	ID        string    `json:"id"` // UUIDv7
	Title     string    `json:"title"`
	WorkoutID string    `json:"workout_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Sanitized returns a copy safe to serialise.
func (e *Exercise) Sanitized() *Exercise {
	clone := *e
	clone.Title = sanitize.Text(e.Title)
	return &clone
}

// # Search & Filtering

// Filter narrows a listing. Empty fields do not filter.
type Filter struct {
	WorkoutID string
}

// # Inputs

// CreateInput is one exercise in a POST body.
type CreateInput struct {
	Title     *string `json:"title"`
	WorkoutID *string `json:"workout_id"`
}

// Patch carries the updatable fields. A nil field is left untouched.
type Patch struct {
	Title     *string `json:"title"`
	WorkoutID *string `json:"workout_id"`
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && p.WorkoutID == nil
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
	FieldID        = "id"
	FieldTitle     = "title"
	FieldWorkoutID = "workout_id"
)

const (
	TitleMaxLen = 200

	// Resource names the entity in not-found messages.
	Resource = "Exercise"

	MessageEmptyPatch = "Request body must contain title or workout_id"
)
