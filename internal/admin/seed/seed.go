// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package seed plants a demo account with a small training log.
//
// Everything goes through the domain services, so seeded rows obey the same
// rules as rows created over HTTP.
package seed

import (
	"context"
	"fmt"

	"github.com/taibuivan/strongly/internal/core/exercise"
	"github.com/taibuivan/strongly/internal/core/set"
	"github.com/taibuivan/strongly/internal/core/workout"
	"github.com/taibuivan/strongly/internal/users/auth"
	"github.com/taibuivan/strongly/pkg/pointer"
)

// Services bundles the services the seeder writes through. In the CLI they
// all sit on one transaction.
type Services struct {
	Auth      *auth.Service
	Workouts  *workout.Service
	Exercises *exercise.Service
	Sets      *set.Service
}

// Account names the user to create.
type Account struct {
	Username string
	Password string
	FullName string
}

// Summary counts what was written.
type Summary struct {
	UserID    int64
	Workouts  int
	Exercises int
	Sets      int
}

type plannedSet struct {
	reps   int
	weight float64
}

type plannedExercise struct {
	title string
	sets  []plannedSet
}

type plannedWorkout struct {
	title     string
	exercises []plannedExercise
}

var plan = []plannedWorkout{
	{
		title: "Leg Day",
		exercises: []plannedExercise{
			{title: "Back Squat", sets: []plannedSet{{5, 100}, {5, 100}, {5, 105}}},
			{title: "Romanian Deadlift", sets: []plannedSet{{8, 80}, {8, 80}}},
		},
	},
	{
		title: "Push Day",
		exercises: []plannedExercise{
			{title: "Bench Press", sets: []plannedSet{{5, 70}, {5, 72.5}, {4, 75}}},
			{title: "Push-up", sets: []plannedSet{{20, 0}}},
		},
	},
}

// Run registers the account and fills it with the demo plan.
func Run(ctx context.Context, services Services, account Account) (*Summary, error) {
	user, err := services.Auth.Register(ctx, auth.RegisterInput(account))
	if err != nil {
		return nil, fmt.Errorf("register %s: %w", account.Username, err)
	}

	summary := &Summary{UserID: user.ID}

	for _, pw := range plan {
		workouts, err := services.Workouts.Create(ctx, user.ID, []workout.CreateInput{{Title: pointer.To(pw.title)}})
		if err != nil {
			return nil, fmt.Errorf("create workout %q: %w", pw.title, err)
		}
		summary.Workouts++

		for _, pe := range pw.exercises {
			workoutID := workouts[0].ID
			exercises, err := services.Exercises.Create(ctx, user.ID, []exercise.CreateInput{{
				Title:     pointer.To(pe.title),
				WorkoutID: &workoutID,
			}})
			if err != nil {
				return nil, fmt.Errorf("create exercise %q: %w", pe.title, err)
			}
			summary.Exercises++

			inputs := make([]set.CreateInput, len(pe.sets))
			for i, ps := range pe.sets {
				inputs[i] = set.CreateInput{
					SetNumber:  pointer.To(i + 1),
					Reps:       pointer.To(ps.reps),
					Weight:     pointer.To(ps.weight),
					ExerciseID: &exercises[0].ID,
					WorkoutID:  &workoutID,
				}
			}
			if _, err := services.Sets.Create(ctx, user.ID, inputs); err != nil {
				return nil, fmt.Errorf("create sets for %q: %w", pe.title, err)
			}
			summary.Sets += len(inputs)
		}
	}

	return summary, nil
}
