// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/strongly/internal/platform/apperr"
	"github.com/taibuivan/strongly/internal/platform/ctxutil"
	"github.com/taibuivan/strongly/internal/platform/sec"
	"github.com/taibuivan/strongly/internal/platform/validate"
)

// maxBodyBytes caps request bodies; bulk payloads stay far below it.
const maxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Unknown fields are ignored.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(io.LimitReader(request.Body, maxBodyBytes)).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
DecodeOneOrMany decodes a body holding either a single JSON object or an array of them.

Returns:
  - []T: the decoded items (one element for a single object)
  - bool: true when the body was an array
  - error: validate.ErrInvalidJSON on malformed input, a validation error on an empty array
*/
func DecodeOneOrMany[T any](request *http.Request) ([]T, bool, error) {
	raw, err := io.ReadAll(io.LimitReader(request.Body, maxBodyBytes))
	if err != nil {
		return nil, false, validate.ErrInvalidJSON
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, validate.ErrInvalidJSON
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, true, validate.ErrInvalidJSON
		}
		if len(items) == 0 {
			return nil, true, validate.ErrEmptyBatch
		}
		return items, true, nil
	}

	var item T
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return nil, false, validate.ErrInvalidJSON
	}
	return []T{item}, false, nil
}

/*
ID retrieves a named URL parameter from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
AllowQuery checks every query key against a resource's allow-list.

Keys are inspected in the order they appear in the raw query string, so the
error always names the first offending key even when valid keys are present too.

Returns:
  - error: apperr.UnsupportedQuery for the first unknown key, otherwise nil
*/
func AllowQuery(request *http.Request, allowed ...string) error {
	for _, pair := range strings.Split(request.URL.RawQuery, "&") {
		if pair == "" {
			continue
		}

		rawKey, _, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			key = rawKey
		}

		if !slices.Contains(allowed, key) {
			return apperr.UnsupportedQuery(key)
		}
	}
	return nil
}

/*
Principal extracts the authenticated identity from the request context.

Returns nil if the request is not authenticated.
*/
func Principal(request *http.Request) *sec.Principal {
	return ctxutil.GetAuthUser(request.Context())
}

/*
RequiredPrincipal ensures the request is authenticated and returns its identity.

Returns:
  - *sec.Principal: The authenticated user
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredPrincipal(request *http.Request) (*sec.Principal, error) {

	principal := Principal(request)
	if principal == nil {
		return nil, apperr.Unauthorized(apperr.MessageUnauthorized)
	}

	return principal, nil
}

/*
RequiredUserID returns the id of the currently authenticated user.
*/
func RequiredUserID(request *http.Request) (int64, error) {
	principal, err := RequiredPrincipal(request)
	if err != nil {
		return 0, err
	}

	return principal.UserID, nil
}
