// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package set

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/strongly/internal/platform/constants"
	requestutil "github.com/taibuivan/strongly/internal/platform/request"
	"github.com/taibuivan/strongly/internal/platform/respond"
	"github.com/taibuivan/strongly/internal/platform/validate"
)

// Query keys the listing accepts.
const (
	QueryExerciseID = "exercise_id"
	QueryWorkoutID  = "workout_id"
)

// Handler exposes sets over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes is mounted at /api/sets behind the authentication middleware.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listSets)
	router.Post("/", handler.createSets)
	router.Patch("/", handler.updateSets)
	router.Get("/{id}", handler.getSet)
	router.Patch("/{id}", handler.updateSet)
	router.Delete("/{id}", handler.deleteSet)

	return router
}

// Location returns the canonical URL of a set.
func Location(id string) string {
	return constants.APIPrefix + "/sets/" + id
}

func (handler *Handler) listSets(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.AllowQuery(request, QueryExerciseID, QueryWorkoutID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	query := request.URL.Query()
	filter := Filter{
		ExerciseID: query.Get(QueryExerciseID),
		WorkoutID:  query.Get(QueryWorkoutID),
	}

	sets, err := handler.service.List(request.Context(), ownerID, filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sets)
}

func (handler *Handler) createSets(writer http.ResponseWriter, request *http.Request) {
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

	sets, err := handler.service.Create(request.Context(), ownerID, inputs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if isArray {
		respond.Created(writer, sets)
		return
	}
	respond.CreatedAt(writer, Location(sets[0].ID), sets[0])
}

func (handler *Handler) updateSets(writer http.ResponseWriter, request *http.Request) {
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

func (handler *Handler) getSet(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	s, err := handler.service.Get(request.Context(), ownerID, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, s)
}

func (handler *Handler) updateSet(writer http.ResponseWriter, request *http.Request) {
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

func (handler *Handler) deleteSet(writer http.ResponseWriter, request *http.Request) {
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
