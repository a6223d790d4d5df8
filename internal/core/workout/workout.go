// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package workout manages workouts, the top of the ownership tree.

Every workout belongs to exactly one user. Exercises hang off a workout and sets
hang off an exercise; deleting a workout removes both through FK cascades.
*/
package workout

import (
	"time"

	"github.com/taibuivan/strongly/internal/platform/sanitize"
)

// # Core Entities

// Workout is one training session owned by a user.
type Workout struct {
	ID        string    `json:"id"` // UUIDv7
	Title     string    `json:"title"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Sanitized returns a copy safe to serialise.
func (w *Workout) Sanitized() *Workout {
	clone := *w
	clone.Title = sanitize.Text(w.Title)
	return &clone
}

// # Inputs

// CreateInput is one workout in a POST body. The id is always minted server-side.
type CreateInput struct {
	Title *string `json:"title"`
}

// Patch carries the updatable fields. A nil field is left untouched.
type Patch struct {
	Title *string `json:"title"`
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil
}

// # Field Identifiers

const (
	FieldTitle = "title"
)

// Limits and messages.
const (
	TitleMaxLen = 200

	// Resource names the entity in not-found messages.
	Resource = "Workout"

	MessageEmptyPatch = "Request body must contain title"
)
