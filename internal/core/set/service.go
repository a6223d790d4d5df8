// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package set

import (
	"context"
	"log/slog"

	"github.com/taibuivan/strongly/internal/core/exercise"
	"github.com/taibuivan/strongly/internal/platform/apperr"
	"github.com/taibuivan/strongly/internal/platform/validate"
	"github.com/taibuivan/strongly/pkg/uuid"
)

// ExerciseReader resolves owned exercises. *exercise.Service satisfies it.
type ExerciseReader interface {
	Get(context context.Context, ownerID int64, id string) (*exercise.Exercise, error)
}

// Service orchestrates business rules for sets.
type Service struct {
	repo      Repository
	exercises ExerciseReader
	logger    *slog.Logger
}

// NewService constructs a new set [Service].
func NewService(repo Repository, exercises ExerciseReader, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		exercises: exercises,
		logger:    logger,
	}
}

// List returns the owner's sets narrowed by exercise and/or workout.
func (service *Service) List(context context.Context, ownerID int64, filter Filter) ([]*Set, error) {
	for _, value := range []*string{&filter.ExerciseID, &filter.WorkoutID} {
		if *value == "" {
			continue
		}
		*value = uuid.Canonical(*value)
		if *value == "" {
			return []*Set{}, nil
		}
	}
	return service.repo.List(context, ownerID, filter)
}

// ListAll returns every set. Admin export only.
func (service *Service) ListAll(context context.Context) ([]*Set, error) {
	return service.repo.ListAll(context)
}

// Get retrieves one owned set; malformed ids answer like missing ones.
func (service *Service) Get(context context.Context, ownerID int64, id string) (*Set, error) {
	id = uuid.Canonical(id)
	if id == "" {
		return nil, apperr.NotFound(Resource)
	}
	return service.repo.FindByID(context, ownerID, id)
}

/*
Create validates and inserts one or many sets for ownerID.

Rules per set:
  - reps, exercise_id, weight and workout_id are required; set_number is optional
  - the exercise must exist and belong to the caller (404 "Exercise doesn't exist")
  - workout_id must equal the exercise's workout (400)
*/
func (service *Service) Create(context context.Context, ownerID int64, inputs []CreateInput) ([]*Set, error) {
	sets := make([]*Set, 0, len(inputs))

	for index, input := range inputs {
		s, err := service.build(context, ownerID, input)
		if err != nil {
			return nil, validate.AtIndex(err, index, len(inputs))
		}
		sets = append(sets, s)
	}

	if err := service.repo.Create(context, sets); err != nil {
		return nil, err
	}

	for _, s := range sets {
		service.logger.Info("set_created", slog.String("set_id", s.ID), slog.String("exercise_id", s.ExerciseID))
	}
	return sets, nil
}

/*
Update applies a presence-based partial update to one owned set.

reps: 0 and weight: 0 are ordinary values and are written.
*/
func (service *Service) Update(context context.Context, ownerID int64, id string, patch Patch) error {
	current, err := service.Get(context, ownerID, id)
	if err != nil {
		return err
	}

	if err := checkPatch(patch); err != nil {
		return err
	}

	if err := service.repo.Update(context, ownerID, Change{ID: current.ID, Patch: patch}); err != nil {
		return err
	}

	service.logger.Info("set_updated", slog.String("set_id", current.ID))
	return nil
}

// UpdateMany applies a collection PATCH in one transaction.
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

		if err := checkPatch(item.Patch); err != nil {
			return validate.AtIndex(err, index, len(patches))
		}
		changes = append(changes, Change{ID: id, Patch: item.Patch})
	}

	if err := service.repo.UpdateMany(context, ownerID, changes); err != nil {
		return err
	}

	service.logger.Info("sets_updated", slog.Int("count", len(changes)))
	return nil
}

// Delete removes one owned set.
func (service *Service) Delete(context context.Context, ownerID int64, id string) error {
	id = uuid.Canonical(id)
	if id == "" {
		return apperr.NotFound(Resource)
	}

	if err := service.repo.Delete(context, ownerID, id); err != nil {
		return err
	}

	service.logger.Warn("set_deleted", slog.String("set_id", id))
	return nil
}

func (service *Service) build(context context.Context, ownerID int64, input CreateInput) (*Set, error) {
	required := []struct {
		field   string
		present bool
	}{
		{FieldReps, input.Reps != nil},
		{FieldExerciseID, input.ExerciseID != nil},
		{FieldWeight, input.Weight != nil},
		{FieldWorkoutID, input.WorkoutID != nil},
	}
	for _, r := range required {
		if !r.present {
			return nil, validate.MissingField(r.field)
		}
	}

	validator := &validate.Validator{}
	validator.NonNegative(FieldReps, float64(*input.Reps)).
		NonNegative(FieldWeight, *input.Weight)
	if input.SetNumber != nil {
		validator.Custom(FieldSetNumber, *input.SetNumber < 1, "Must be at least 1")
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	parent, err := service.exercises.Get(context, ownerID, *input.ExerciseID)
	if err != nil {
		return nil, err
	}

	if uuid.Canonical(*input.WorkoutID) != parent.WorkoutID {
		return nil, validate.RequiredError(FieldWorkoutID, "Must match the exercise's workout")
	}

	return &Set{
		ID:         uuid.New(),
		SetNumber:  input.SetNumber,
		Reps:       *input.Reps,
		Weight:     *input.Weight,
		ExerciseID: parent.ID,
		WorkoutID:  parent.WorkoutID,
		UserID:     ownerID,
	}, nil
}

func checkPatch(patch Patch) error {
	if patch.Empty() {
		return apperr.ValidationError(MessageEmptyPatch)
	}

	validator := &validate.Validator{}
	if patch.Reps != nil {
		validator.NonNegative(FieldReps, float64(*patch.Reps))
	}
	if patch.Weight != nil {
		validator.NonNegative(FieldWeight, *patch.Weight)
	}
	if patch.SetNumber != nil {
		validator.Custom(FieldSetNumber, *patch.SetNumber < 1, "Must be at least 1")
	}
	return validator.Err()
}
