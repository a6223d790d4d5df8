// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package exercise

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/strongly/internal/platform/constants"
	requestutil "github.com/taibuivan/strongly/internal/platform/request"
	"github.com/taibuivan/strongly/internal/platform/respond"
	"github.com/taibuivan/strongly/pkg/slice"
	"github.com/taibuivan/strongly/internal/platform/validate"
)

// QueryWorkoutID is the only query key the listing accepts.
const QueryWorkoutID = "workout_id"

// Handler exposes exercises over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes is mounted at /api/exercises behind the authentication middleware.
//
// # Endpoints
//   - GET    /      : List, optionally ?workout_id=
//   - POST   /      : Create one (object body) or many (array body)
//   - PATCH  /      : Update many in one transaction
//   - GET    /{id}  : Retrieve
//   - PATCH  /{id}  : Partial update
//   - DELETE /{id}  : Delete, sets cascade
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listExercises)
	router.Post("/", handler.createExercises)
	router.Patch("/", handler.updateExercises)
	router.Get("/{id}", handler.getExercise)
	router.Patch("/{id}", handler.updateExercise)
	router.Delete("/{id}", handler.deleteExercise)

	return router
}

// Location returns the canonical URL of an exercise.
func Location(id string) string {
	return constants.APIPrefix + "/exercises/" + id
}

func (handler *Handler) listExercises(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.AllowQuery(request, QueryWorkoutID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := Filter{WorkoutID: request.URL.Query().Get(QueryWorkoutID)}

	exercises, err := handler.service.List(request.Context(), ownerID, filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, slice.Map(exercises, (*Exercise).Sanitized))
}

func (handler *Handler) createExercises(writer http.ResponseWriter, request *http.Request) {
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

	exercises, err := handler.service.Create(request.Context(), ownerID, inputs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if isArray {
		respond.Created(writer, slice.Map(exercises, (*Exercise).Sanitized))
		return
	}
	respond.CreatedAt(writer, Location(exercises[0].ID), exercises[0].Sanitized())
}

func (handler *Handler) updateExercises(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patches []BulkPatch
	if err := requestutil.DecodeJSON(request, &patches); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if len(patches) == 0 {
		respond.Error(writer, request, validate.ErrEmptyBatch)
		return
	}

	if err := handler.service.UpdateMany(request.Context(), ownerID, patches); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) getExercise(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	e, err := handler.service.Get(request.Context(), ownerID, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, e.Sanitized())
}

func (handler *Handler) updateExercise(writer http.ResponseWriter, request *http.Request) {
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

func (handler *Handler) deleteExercise(writer http.ResponseWriter, request *http.Request) {
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
