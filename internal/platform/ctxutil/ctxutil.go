// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/strongly/internal/platform/ctxkey"
	"github.com/taibuivan/strongly/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}

// Trace is filled in while a request travels down the chain and read back by
// the access log once the response is written. Handlers own it exclusively for
// the lifetime of the request.
type Trace struct {
	UserID int64
}

// WithTrace returns a new context carrying the request's [Trace].
func WithTrace(ctx context.Context, trace *Trace) context.Context {
	return context.WithValue(ctx, ctxkey.KeyTrace, trace)
}

// GetTrace returns the request's [Trace], or nil outside the access-log middleware.
func GetTrace(ctx context.Context) *Trace {
	trace, _ := ctx.Value(ctxkey.KeyTrace).(*Trace)
	return trace
}

// # Identity & Access

// WithAuthUser returns a new context with the authenticated principal attached.
func WithAuthUser(ctx context.Context, user *sec.Principal) context.Context {
	return context.WithValue(ctx, ctxkey.KeyUser, user)
}

// GetAuthUser retrieves the [*sec.Principal] from the [context.Context].
func GetAuthUser(ctx context.Context) *sec.Principal {
	principal, ok := ctx.Value(ctxkey.KeyUser).(*sec.Principal)
	if !ok {
		return nil
	}
	return principal
}
