// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package exercise

import (
	"context"
	"log/slog"

	"github.com/taibuivan/strongly/internal/core/workout"
	"github.com/taibuivan/strongly/internal/platform/apperr"
	"github.com/taibuivan/strongly/internal/platform/validate"
	"github.com/taibuivan/strongly/pkg/uuid"
)

// WorkoutReader resolves owned workouts. *workout.Service satisfies it.
type WorkoutReader interface {
	Get(context context.Context, ownerID int64, id string) (*workout.Workout, error)
}

// # Service Layer

// Service orchestrates business rules for exercises.
type Service struct {
	repo     Repository
	workouts WorkoutReader
	logger   *slog.Logger
}

// NewService constructs a new exercise [Service].
func NewService(repo Repository, workouts WorkoutReader, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		workouts: workouts,
		logger:   logger,
	}
}

/*
List returns the owner's exercises, optionally only those of one workout.

A workout_id that is not a UUID cannot match anything and yields an empty list.
*/
func (service *Service) List(context context.Context, ownerID int64, filter Filter) ([]*Exercise, error) {
	if filter.WorkoutID != "" {
		filter.WorkoutID = uuid.Canonical(filter.WorkoutID)
		if filter.WorkoutID == "" {
			return []*Exercise{}, nil
		}
	}
	return service.repo.List(context, ownerID, filter)
}

// ListAll returns every exercise. Admin export only.
func (service *Service) ListAll(context context.Context) ([]*Exercise, error) {
	return service.repo.ListAll(context)
}

// Get retrieves one owned exercise; malformed ids answer like missing ones.
func (service *Service) Get(context context.Context, ownerID int64, id string) (*Exercise, error) {
	id = uuid.Canonical(id)
	if id == "" {
		return nil, apperr.NotFound(Resource)
	}
	return service.repo.FindByID(context, ownerID, id)
}

/*
Create validates and inserts one or many exercises for ownerID.

Each referenced workout must exist and belong to the caller; otherwise the
request fails with 404 "Workout doesn't exist" and nothing is inserted.
*/
func (service *Service) Create(context context.Context, ownerID int64, inputs []CreateInput) ([]*Exercise, error) {
	exercises := make([]*Exercise, 0, len(inputs))

	for index, input := range inputs {
		e, err := service.build(context, ownerID, input)
		if err != nil {
			return nil, validate.AtIndex(err, index, len(inputs))
		}
		exercises = append(exercises, e)
	}

	if err := service.repo.Create(context, exercises); err != nil {
		return nil, err
	}

	for _, e := range exercises {
		service.logger.Info("exercise_created",
			slog.String("exercise_id", e.ID),
			slog.String("workout_id", e.WorkoutID),
		)
	}
	return exercises, nil
}

/*
Update applies a presence-based partial update to one owned exercise.

Moving the exercise to another workout requires owning that workout; its sets
move along so every set keeps matching its exercise's workout.
*/
func (service *Service) Update(context context.Context, ownerID int64, id string, patch Patch) error {
	current, err := service.Get(context, ownerID, id)
	if err != nil {
		return err
	}

	change, err := service.prepare(context, ownerID, current.ID, patch)
	if err != nil {
		return err
	}

	if err := service.repo.Update(context, ownerID, change); err != nil {
		return err
	}

	service.logger.Info("exercise_updated", slog.String("exercise_id", change.ID))
	return nil
}

/*
UpdateMany applies a collection PATCH. Every element must name an id and at
least one updatable field; the whole batch runs in one transaction.
*/
func (service *Service) UpdateMany(context context.Context, ownerID int64, patches []BulkPatch) error {
	changes := make([]Change, 0, len(patches))

	for index, item := range patches {
		if item.ID == nil {
			return validate.AtIndex(validate.MissingField(FieldID), index, len(patches))
		}

		id := uuid.Canonical(*item.ID)
		if id == "" {
			return apperr.NotFound(Resource)
		}

		change, err := service.prepare(context, ownerID, id, item.Patch)
		if err != nil {
			return validate.AtIndex(err, index, len(patches))
		}
		changes = append(changes, change)
	}

	if err := service.repo.UpdateMany(context, ownerID, changes); err != nil {
		return err
	}

	service.logger.Info("exercises_updated", slog.Int("count", len(changes)))
	return nil
}

// Delete removes one owned exercise and, through cascades, its sets.
func (service *Service) Delete(context context.Context, ownerID int64, id string) error {
	id = uuid.Canonical(id)
	if id == "" {
		return apperr.NotFound(Resource)
	}

	if err := service.repo.Delete(context, ownerID, id); err != nil {
		return err
	}

	service.logger.Warn("exercise_deleted", slog.String("exercise_id", id))
	return nil
}

func (service *Service) build(context context.Context, ownerID int64, input CreateInput) (*Exercise, error) {
	if input.Title == nil {
		return nil, validate.MissingField(FieldTitle)
	}
	if input.WorkoutID == nil {
		return nil, validate.MissingField(FieldWorkoutID)
	}

	title := *input.Title
	validator := &validate.Validator{}
	validator.Required(FieldTitle, title).MaxLen(FieldTitle, title, TitleMaxLen)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	parent, err := service.workouts.Get(context, ownerID, *input.WorkoutID)
	if err != nil {
		return nil, err
	}

	return &Exercise{ID: uuid.New(), Title: title, WorkoutID: parent.ID, UserID: ownerID}, nil
}

// prepare validates a patch and resolves a new parent workout if one is named.
func (service *Service) prepare(context context.Context, ownerID int64, id string, patch Patch) (Change, error) {
	if patch.Empty() {
		return Change{}, apperr.ValidationError(MessageEmptyPatch)
	}

	if patch.Title != nil {
		validator := &validate.Validator{}
		validator.Required(FieldTitle, *patch.Title).MaxLen(FieldTitle, *patch.Title, TitleMaxLen)
		if err := validator.Err(); err != nil {
			return Change{}, err
		}
	}

	if patch.WorkoutID != nil {
		parent, err := service.workouts.Get(context, ownerID, *patch.WorkoutID)
		if err != nil {
			return Change{}, err
		}
		patch.WorkoutID = &parent.ID
	}

	return Change{ID: id, Patch: patch}, nil
}
