// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/strongly/internal/platform/apperr"
	"github.com/taibuivan/strongly/internal/platform/respond"
)

func TestError_AppError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/workouts/x", nil)

	respond.Error(recorder, request, apperr.NotFound("Workout"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var body respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Workout doesn't exist", body.Error)
	assert.Equal(t, apperr.CodeNotFound, body.Code)
}

func TestError_PlainErrorIsOpaque(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/workouts", nil)

	respond.Error(recorder, request, errors.New("dial tcp 10.0.0.1:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "10.0.0.1")
	assert.Contains(t, recorder.Body.String(), apperr.CodeInternal)
}

func TestCreatedAt_SetsLocation(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.CreatedAt(recorder, "/api/workouts/abc", map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "/api/workouts/abc", recorder.Header().Get("Location"))
	assert.JSONEq(t, `{"id":"abc"}`, recorder.Body.String())
}

func TestNoContent_EmptyBody(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.NoContent(recorder)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Zero(t, recorder.Body.Len())
}
