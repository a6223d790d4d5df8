// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/strongly/internal/platform/apperr"
	"github.com/taibuivan/strongly/internal/platform/constants"
	"github.com/taibuivan/strongly/internal/platform/middleware"
	"github.com/taibuivan/strongly/internal/platform/sec"
)

var (
	_ middleware.Authenticator = (*BearerAuthenticator)(nil)
	_ middleware.Authenticator = (*BasicAuthenticator)(nil)
)

// credentials returns what follows "<scheme> " in the header (scheme is case-insensitive).
func credentials(header, scheme string) (string, bool) {
	prefix, value, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(prefix, scheme) {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

// # Bearer

// BearerAuthenticator resolves "Authorization: Bearer <token>".
type BearerAuthenticator struct {
	tokens *sec.TokenService
	users  UserRepository
}

// NewBearerAuthenticator creates the token-based [middleware.Authenticator].
func NewBearerAuthenticator(tokens *sec.TokenService, users UserRepository) *BearerAuthenticator {
	return &BearerAuthenticator{tokens: tokens, users: users}
}

/*
ResolveIdentity verifies the token, then loads the user named by its subject.

Returns:
  - MISSING_TOKEN when the header has no bearer token
  - UNAUTHORIZED when verification fails, the subject is unknown, or the subject
    now belongs to a different user id than the one the token was issued for
*/
func (authenticator *BearerAuthenticator) ResolveIdentity(ctx context.Context, header string) (*sec.Principal, error) {
	token, ok := credentials(header, constants.AuthSchemeBearer)
	if !ok {
		return nil, apperr.MissingToken(constants.AuthSchemeBearer)
	}

	claims, err := authenticator.tokens.Verify(token)
	if err != nil {
		return nil, apperr.Unauthorized(apperr.MessageUnauthorized).WithCause(err)
	}

	user, err := authenticator.users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthorized(apperr.MessageUnauthorized).WithCause(err)
		}
		return nil, err
	}

	if user.ID != claims.UserID {
		return nil, apperr.Unauthorized(apperr.MessageUnauthorized).
			WithCause(fmt.Errorf("auth: token uid %d does not match user %d", claims.UserID, user.ID))
	}

	return user.Principal(), nil
}

// # Basic

// BasicAuthenticator resolves the legacy "Authorization: Basic <base64(user:pass)>".
type BasicAuthenticator struct {
	service *Service
}

// NewBasicAuthenticator creates the credential-pair [middleware.Authenticator].
func NewBasicAuthenticator(service *Service) *BasicAuthenticator {
	return &BasicAuthenticator{service: service}
}

/*
ResolveIdentity decodes the pair and verifies it like a login would, including
the login throttle.

Returns:
  - MISSING_TOKEN when the header has no basic token
  - UNAUTHORIZED for an undecodable or empty pair, unknown user, or wrong password
  - RATE_LIMITED while the username is locked out
*/
func (authenticator *BasicAuthenticator) ResolveIdentity(ctx context.Context, header string) (*sec.Principal, error) {
	token, ok := credentials(header, constants.AuthSchemeBasic)
	if !ok {
		return nil, apperr.MissingToken(constants.AuthSchemeBasic)
	}

	username, password, ok := sec.ParseBasicToken(token)
	if !ok {
		return nil, apperr.Unauthorized(apperr.MessageUnauthorized)
	}

	user, err := authenticator.service.VerifyCredentials(ctx, username, password)
	if err != nil {
		return nil, err
	}

	return user.Principal(), nil
}

// NewAuthenticator picks the configured scheme ("bearer" or "basic").
func NewAuthenticator(scheme string, service *Service) (middleware.Authenticator, error) {
	switch strings.ToLower(scheme) {
	case constants.AuthSchemeBearer:
		return NewBearerAuthenticator(service.tokens, service.users), nil
	case constants.AuthSchemeBasic:
		return NewBasicAuthenticator(service), nil
	default:
		return nil, fmt.Errorf("auth: unsupported scheme %q", scheme)
	}
}
