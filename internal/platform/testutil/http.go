// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// Do sends one request straight to handler. body is JSON-encoded unless nil.
func Do(t testing.TB, handler http.Handler, method, path, authorization string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}

	request := httptest.NewRequest(method, path, &payload)
	request.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		request.Header.Set("Authorization", authorization)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

// Decode unmarshals a recorded JSON response into T.
func Decode[T any](t testing.TB, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &out), recorder.Body.String())
	return out
}

// Created sends a POST that must answer 201 and returns the decoded body.
func Created[T any](t testing.TB, handler http.Handler, path, authorization string, body any) T {
	t.Helper()

	recorder := Do(t, handler, http.MethodPost, path, authorization, body)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	return Decode[T](t, recorder)
}
