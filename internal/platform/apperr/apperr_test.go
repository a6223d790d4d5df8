// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/strongly/internal/platform/apperr"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     *apperr.AppError
		status  int
		code    string
		message string
	}{
		{"not_found", apperr.NotFound("Workout"), http.StatusNotFound, apperr.CodeNotFound, "Workout doesn't exist"},
		{"missing_bearer", apperr.MissingToken("bearer"), http.StatusUnauthorized, apperr.CodeMissingToken, "Missing bearer token"},
		{"missing_basic", apperr.MissingToken("basic"), http.StatusUnauthorized, apperr.CodeMissingToken, "Missing basic token"},
		{"unauthorized", apperr.Unauthorized(apperr.MessageUnauthorized), http.StatusUnauthorized, apperr.CodeUnauthorized, "Unauthorized request"},
		{"unsupported_query", apperr.UnsupportedQuery("bogus"), http.StatusBadRequest, apperr.CodeUnsupportedQuery, "'bogus' is not a valid query"},
		{"conflict", apperr.Conflict("Username already taken"), http.StatusConflict, apperr.CodeConflict, "Username already taken"},
		{"method_not_allowed", apperr.MethodNotAllowed(), http.StatusMethodNotAllowed, apperr.CodeMethodNotAllowed, "Method not allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := apperr.Internal(cause)

	assert.Equal(t, "An unexpected error occurred", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestAs_TraversesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", apperr.NotFound("Set"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "Set doesn't exist", ae.Message)
	assert.True(t, apperr.IsNotFound(wrapped))
	assert.False(t, apperr.IsNotFound(errors.New("plain")))
	assert.Nil(t, apperr.As(errors.New("plain")))
}

func TestWithCause_DoesNotMutateOriginal(t *testing.T) {
	base := apperr.Unauthorized(apperr.MessageUnauthorized)
	withCause := base.WithCause(errors.New("token expired"))

	assert.Nil(t, base.Cause)
	assert.NotNil(t, withCause.Cause)
	assert.Equal(t, base.Message, withCause.Message)
}
