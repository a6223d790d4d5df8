// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package export dumps every account and its training log as one nested document.

The tree mirrors ownership: users hold workouts, workouts hold exercises,
exercises hold sets. Password hashes never appear in the output.
*/
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/strongly/internal/core/exercise"
	"github.com/taibuivan/strongly/internal/core/set"
	"github.com/taibuivan/strongly/internal/core/workout"
	"github.com/taibuivan/strongly/internal/platform/constants"
	"github.com/taibuivan/strongly/internal/users/auth"
)

// FormatVersion is bumped whenever the document shape changes.
const FormatVersion = "1.0"

// Supported output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// # Document

type Document struct {
	Version    string    `json:"version" yaml:"version"`
	ExportedAt time.Time `json:"exported_at" yaml:"exported_at"`
	Tool       string    `json:"tool" yaml:"tool"`
	Users      []*User   `json:"users" yaml:"users"`
}

type User struct {
	ID        int64      `json:"id" yaml:"id"`
	Username  string     `json:"username" yaml:"username"`
	FullName  string     `json:"full_name" yaml:"full_name"`
	CreatedAt time.Time  `json:"created_at" yaml:"created_at"`
	Workouts  []*Workout `json:"workouts" yaml:"workouts"`
}

type Workout struct {
	ID        string      `json:"id" yaml:"id"`
	Title     string      `json:"title" yaml:"title"`
	CreatedAt time.Time   `json:"created_at" yaml:"created_at"`
	Exercises []*Exercise `json:"exercises" yaml:"exercises"`
}

type Exercise struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Sets      []*Set    `json:"sets" yaml:"sets"`
}

type Set struct {
	ID        string    `json:"id" yaml:"id"`
	SetNumber *int      `json:"set_number,omitempty" yaml:"set_number,omitempty"`
	Reps      int       `json:"reps" yaml:"reps"`
	Weight    float64   `json:"weight" yaml:"weight"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// # Sources

// Sources lists every row of each table. The resource services and the user
// repository satisfy these.
type Sources struct {
	Users     interface{ ListAll(context.Context) ([]*auth.User, error) }
	Workouts  interface{ ListAll(context.Context) ([]*workout.Workout, error) }
	Exercises interface{ ListAll(context.Context) ([]*exercise.Exercise, error) }
	Sets      interface{ ListAll(context.Context) ([]*set.Set, error) }
}

// Collect reads all four tables and assembles the document.
func Collect(ctx context.Context, sources Sources, now time.Time) (*Document, error) {
	users, err := sources.Users.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	workouts, err := sources.Workouts.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	exercises, err := sources.Exercises.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	sets, err := sources.Sets.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	return Build(users, workouts, exercises, sets, now), nil
}

// Build nests flat rows under their owners. Rows whose parent is missing are dropped.
func Build(users []*auth.User, workouts []*workout.Workout, exercises []*exercise.Exercise, sets []*set.Set, now time.Time) *Document {
	document := &Document{
		Version:    FormatVersion,
		ExportedAt: now.UTC(),
		Tool:       constants.AppName,
		Users:      make([]*User, 0, len(users)),
	}

	byUser := make(map[int64]*User, len(users))
	for _, u := range users {
		node := &User{ID: u.ID, Username: u.Username, FullName: u.FullName, CreatedAt: u.CreatedAt, Workouts: []*Workout{}}
		byUser[u.ID] = node
		document.Users = append(document.Users, node)
	}

	byWorkout := make(map[string]*Workout, len(workouts))
	for _, w := range workouts {
		owner, ok := byUser[w.UserID]
		if !ok {
			continue
		}
		node := &Workout{ID: w.ID, Title: w.Title, CreatedAt: w.CreatedAt, Exercises: []*Exercise{}}
		byWorkout[w.ID] = node
		owner.Workouts = append(owner.Workouts, node)
	}

	byExercise := make(map[string]*Exercise, len(exercises))
	for _, e := range exercises {
		parent, ok := byWorkout[e.WorkoutID]
		if !ok {
			continue
		}
		node := &Exercise{ID: e.ID, Title: e.Title, CreatedAt: e.CreatedAt, Sets: []*Set{}}
		byExercise[e.ID] = node
		parent.Exercises = append(parent.Exercises, node)
	}

	for _, s := range sets {
		parent, ok := byExercise[s.ExerciseID]
		if !ok {
			continue
		}
		parent.Sets = append(parent.Sets, &Set{
			ID:        s.ID,
			SetNumber: s.SetNumber,
			Reps:      s.Reps,
			Weight:    s.Weight,
			CreatedAt: s.CreatedAt,
		})
	}

	return document
}

// Encode renders the document as indented JSON or YAML.
func (document *Document) Encode(format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(document, "", "  ")
	case FormatYAML:
		return yaml.Marshal(document)
	default:
		return nil, fmt.Errorf("unknown format: %s (use %s or %s)", format, FormatJSON, FormatYAML)
	}
}
