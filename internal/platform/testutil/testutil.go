// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package testutil provides in-memory stand-ins for the PostgreSQL and Redis
repositories, plus helpers to authenticate test requests.

The in-memory [Store] mirrors what the schema enforces: owner scoping,
ON DELETE CASCADE from workouts to exercises to sets, unique ids, and
all-or-nothing batches.
*/
package testutil

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/taibuivan/strongly/internal/platform/apperr"
	"github.com/taibuivan/strongly/internal/platform/constants"
	"github.com/taibuivan/strongly/internal/platform/sec"
)

// Logger returns a logger that discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// Authenticator resolves "Bearer <key>" by looking the key up in Tokens.
//
// It reproduces the bearer error taxonomy without signing anything, which keeps
// resource handler tests independent from the auth package.
type Authenticator struct {
	Tokens map[string]*sec.Principal
}

// NewAuthenticator creates an [Authenticator] with no known tokens.
func NewAuthenticator() *Authenticator {
	return &Authenticator{Tokens: map[string]*sec.Principal{}}
}

// Add registers a token for the principal and returns the full header value.
func (a *Authenticator) Add(token string, principal *sec.Principal) string {
	a.Tokens[token] = principal
	return "Bearer " + token
}

func (a *Authenticator) ResolveIdentity(_ context.Context, header string) (*sec.Principal, error) {
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return nil, apperr.MissingToken(constants.AuthSchemeBearer)
	}

	principal, ok := a.Tokens[token]
	if !ok {
		return nil, apperr.Unauthorized(apperr.MessageUnauthorized)
	}
	return principal, nil
}
