// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing, Basic
// credential decoding) from the domain logic. It acts as an Infrastructure
// service injected into the Application layer.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failures. Callers match them with [errors.Is].
var (
	ErrTokenMalformed        = errors.New("auth: malformed token")
	ErrTokenExpired          = errors.New("auth: token expired")
	ErrTokenInvalidSignature = errors.New("auth: invalid token signature")
)

// AuthClaims represents the payload embedded inside a bearer token.
//
// The subject carries the username; the numeric user id rides along so the
// middleware can reject a token whose username was re-registered by someone else.
type AuthClaims struct {
	jwt.RegisteredClaims

	UserID int64 `json:"uid"`
}

// TokenService issues and verifies HS256-signed bearer tokens.
type TokenService struct {
	secret     []byte
	issuer     string
	timeToLive time.Duration
	now        func() time.Time
}

// NewTokenService creates a new TokenService.
//
// A zero timeToLive issues tokens without an expiry claim.
func NewTokenService(secret, issuer string, timeToLive time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("auth: empty token secret")
	}

	return &TokenService{
		secret:     []byte(secret),
		issuer:     issuer,
		timeToLive: timeToLive,
		now:        time.Now,
	}, nil
}

// TimeToLive reports the configured token lifetime.
func (service *TokenService) TimeToLive() time.Duration {
	return service.timeToLive
}

// Issue creates a signed token asserting the given identity.
func (service *TokenService) Issue(userID int64, username string) (string, error) {
	currentTime := service.now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  username,
			Issuer:   service.issuer,
			IssuedAt: jwt.NewNumericDate(currentTime),
		},
		UserID: userID,
	}

	if service.timeToLive > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(currentTime.Add(service.timeToLive))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("auth: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and validity of a token string.
//
// The returned error wraps exactly one of [ErrTokenMalformed], [ErrTokenExpired]
// or [ErrTokenInvalidSignature]. A token from another issuer counts as malformed.
func (service *TokenService) Verify(tokenString string) (*AuthClaims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(service.now),
	}
	if service.issuer != "" {
		options = append(options, jwt.WithIssuer(service.issuer))
	}
	parser := jwt.NewParser(options...)

	token, err := parser.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		return service.secret, nil
	})

	if err != nil {
		return nil, classify(err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}

// classify folds the jwt library's error tree onto the three public failure kinds.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", ErrTokenInvalidSignature, err)
	default:
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}
}
