// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/strongly/internal/platform/apperr"
	"github.com/taibuivan/strongly/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/strongly/internal/platform/request"
	"github.com/taibuivan/strongly/internal/platform/sec"
)

type item struct {
	Title string `json:"title"`
}

func TestDecodeOneOrMany(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		count  int
		isBulk bool
		code   string
	}{
		{"single", `{"title":"Leg Day","extra":true}`, 1, false, ""},
		{"array", `[{"title":"a"},{"title":"b"}]`, 2, true, ""},
		{"leading_space_array", "  \n[{\"title\":\"a\"}]", 1, true, ""},
		{"empty_array", `[]`, 0, true, apperr.CodeValidation},
		{"empty_body", ``, 0, false, apperr.CodeValidation},
		{"broken", `{"title":`, 0, false, apperr.CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			items, isBulk, err := requestutil.DecodeOneOrMany[item](request)
			if tt.code != "" {
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, tt.code, ae.Code)
				return
			}

			require.NoError(t, err)
			assert.Len(t, items, tt.count)
			assert.Equal(t, tt.isBulk, isBulk)
		})
	}
}

func TestAllowQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		offender string
	}{
		{"no_query", "", ""},
		{"allowed", "exercise_id=1&workout_id=2", ""},
		{"unknown_only", "bogus=1", "bogus"},
		{"unknown_after_valid", "workout_id=2&bogus=1&other=3", "bogus"},
		{"escaped_key", "work%20out=1", "work out"},
		{"key_without_value", "workout_id", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/api/sets?"+tt.query, nil)

			err := requestutil.AllowQuery(request, "exercise_id", "workout_id")
			if tt.offender == "" {
				assert.NoError(t, err)
				return
			}

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeUnsupportedQuery, ae.Code)
			assert.Equal(t, "'"+tt.offender+"' is not a valid query", ae.Message)
		})
	}
}

func TestRequiredPrincipal(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := requestutil.RequiredPrincipal(request)
	assert.Error(t, err)

	principal := &sec.Principal{UserID: 7, Username: "alice"}
	request = request.WithContext(ctxutil.WithAuthUser(request.Context(), principal))

	userID, err := requestutil.RequiredUserID(request)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}
