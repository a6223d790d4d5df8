// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package workout

import (
	"context"
	"log/slog"

	"github.com/taibuivan/strongly/internal/platform/apperr"
	"github.com/taibuivan/strongly/internal/platform/validate"
	"github.com/taibuivan/strongly/pkg/uuid"
)

// # Service Layer

// Service orchestrates business rules for workouts.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new workout [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns the owner's workouts in insertion order.
func (service *Service) List(context context.Context, ownerID int64) ([]*Workout, error) {
	return service.repo.List(context, ownerID)
}

// ListAll returns every workout. Admin export only.
func (service *Service) ListAll(context context.Context) ([]*Workout, error) {
	return service.repo.ListAll(context)
}

/*
Get retrieves one owned workout.

A malformed id cannot name any row, so it answers like a missing one.
*/
func (service *Service) Get(context context.Context, ownerID int64, id string) (*Workout, error) {
	id = uuid.Canonical(id)
	if id == "" {
		return nil, apperr.NotFound(Resource)
	}
	return service.repo.FindByID(context, ownerID, id)
}

/*
Create validates and inserts one or many workouts for ownerID.

The owner always comes from the authenticated caller. Inputs are validated as a
whole before anything is written; the insert itself is a single transaction.
*/
func (service *Service) Create(context context.Context, ownerID int64, inputs []CreateInput) ([]*Workout, error) {
	workouts := make([]*Workout, 0, len(inputs))

	for index, input := range inputs {
		w, err := build(ownerID, input)
		if err != nil {
			return nil, validate.AtIndex(err, index, len(inputs))
		}
		workouts = append(workouts, w)
	}

	if err := service.repo.Create(context, workouts); err != nil {
		return nil, err
	}

	for _, w := range workouts {
		service.logger.Info("workout_created", slog.String("workout_id", w.ID), slog.Int64("user_id", ownerID))
	}
	return workouts, nil
}

/*
Update applies a presence-based partial update to one owned workout.

The row is resolved first, so an unknown id answers 404 even with an empty body.

Returns:
  - error: NOT_FOUND, or VALIDATION_ERROR when the patch is empty or invalid
*/
func (service *Service) Update(context context.Context, ownerID int64, id string, patch Patch) error {
	current, err := service.Get(context, ownerID, id)
	if err != nil {
		return err
	}

	if patch.Empty() {
		return apperr.ValidationError(MessageEmptyPatch)
	}

	if patch.Title != nil {
		validator := &validate.Validator{}
		validator.Required(FieldTitle, *patch.Title).MaxLen(FieldTitle, *patch.Title, TitleMaxLen)
		if err := validator.Err(); err != nil {
			return err
		}
	}

	if err := service.repo.Update(context, ownerID, current.ID, patch); err != nil {
		return err
	}

	service.logger.Info("workout_updated", slog.String("workout_id", current.ID))
	return nil
}

// Delete removes one owned workout and, through cascades, its exercises and sets.
func (service *Service) Delete(context context.Context, ownerID int64, id string) error {
	id = uuid.Canonical(id)
	if id == "" {
		return apperr.NotFound(Resource)
	}

	if err := service.repo.Delete(context, ownerID, id); err != nil {
		return err
	}

	service.logger.Warn("workout_deleted", slog.String("workout_id", id))
	return nil
}

func build(ownerID int64, input CreateInput) (*Workout, error) {
	if input.Title == nil {
		return nil, validate.MissingField(FieldTitle)
	}

	title := *input.Title
	validator := &validate.Validator{}
	validator.Required(FieldTitle, title).MaxLen(FieldTitle, title, TitleMaxLen)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return &Workout{ID: uuid.New(), Title: title, UserID: ownerID}, nil
}
