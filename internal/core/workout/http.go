// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package workout

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/strongly/internal/platform/constants"
	requestutil "github.com/taibuivan/strongly/internal/platform/request"
	"github.com/taibuivan/strongly/internal/platform/respond"
	"github.com/taibuivan/strongly/pkg/slice"
)

// Handler exposes workouts over HTTP. Every route expects an authenticated caller.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes is mounted at /api/workouts behind the authentication middleware.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listWorkouts)
	router.Post("/", handler.createWorkouts)
	router.Get("/{id}", handler.getWorkout)
	router.Patch("/{id}", handler.updateWorkout)
	router.Delete("/{id}", handler.deleteWorkout)

	return router
}

// Location returns the canonical URL of a workout.
func Location(id string) string {
	return constants.APIPrefix + "/workouts/" + id
}

func (handler *Handler) listWorkouts(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.AllowQuery(request); err != nil {
		respond.Error(writer, request, err)
		return
	}

	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	workouts, err := handler.service.List(request.Context(), ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, slice.Map(workouts, (*Workout).Sanitized))
}

func (handler *Handler) createWorkouts(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	inputs, isArray, err := requestutil.DecodeOneOrMany[CreateInput](request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	workouts, err := handler.service.Create(request.Context(), ownerID, inputs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if isArray {
		respond.Created(writer, slice.Map(workouts, (*Workout).Sanitized))
		return
	}
	respond.CreatedAt(writer, Location(workouts[0].ID), workouts[0].Sanitized())
}

func (handler *Handler) getWorkout(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	w, err := handler.service.Get(request.Context(), ownerID, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, w.Sanitized())
}

func (handler *Handler) updateWorkout(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Update(request.Context(), ownerID, requestutil.ID(request, "id"), patch); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) deleteWorkout(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), ownerID, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
