// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/strongly/internal/platform/apperr"
	"github.com/taibuivan/strongly/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		assert.NoError(t, dberr.Wrap(nil, "Workout"))
	})

	t.Run("NoRows", func(t *testing.T) {
		err := dberr.Wrap(pgx.ErrNoRows, "Workout")
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
		assert.Equal(t, "Workout doesn't exist", appErr.Message)
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("UniqueViolation", func(t *testing.T) {
		err := dberr.Wrap(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, "User")
		assert.Equal(t, apperr.CodeConflict, apperr.As(err).Code)
		assert.True(t, dberr.IsUniqueViolation(err))
	})

	t.Run("ForeignKeyViolation", func(t *testing.T) {
		err := dberr.Wrap(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, "Set")
		assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)
	})

	t.Run("AlreadyClassified", func(t *testing.T) {
		original := apperr.Conflict("nope")
		assert.Same(t, original, dberr.Wrap(original, "Set"))
	})

	t.Run("Unknown", func(t *testing.T) {
		err := dberr.Wrap(errors.New("boom"), "Set")
		assert.Equal(t, apperr.CodeInternal, apperr.As(err).Code)
	})
}
