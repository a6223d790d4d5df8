// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/taibuivan/strongly/internal/platform/apperr"
	"github.com/taibuivan/strongly/internal/platform/constants"
	"github.com/taibuivan/strongly/internal/platform/ctxutil"
	"github.com/taibuivan/strongly/internal/platform/respond"
	"github.com/taibuivan/strongly/internal/platform/sec"
)

// Authenticator resolves the raw Authorization header into a principal.
//
// # Contract
//
// Implementations return an [apperr.AppError] on failure: MISSING_TOKEN when the
// header carries nothing usable for the configured scheme, UNAUTHORIZED for
// anything that was presented but did not check out.
type Authenticator interface {
	ResolveIdentity(ctx context.Context, authorization string) (*sec.Principal, error)
}

// Authenticate guards every downstream handler behind the configured scheme.
//
// # Flow
//  1. Pass the Authorization header to the [Authenticator].
//  2. On failure, answer with the error envelope; the handler never runs.
//  3. On success, attach the principal, tag the request logger with the user id
//     and record it on the access-log [ctxutil.Trace].
func Authenticate(authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := request.Context()

			principal, err := authenticator.ResolveIdentity(ctx, request.Header.Get(constants.HeaderAuthorization))
			if err != nil {
				if ae := apperr.As(err); ae != nil && ae.Cause != nil {
					ctxutil.GetLogger(ctx).DebugContext(ctx, "authentication_rejected",
						slog.String("code", ae.Code),
						slog.Any("cause", ae.Cause),
					)
				}
				respond.Error(writer, request, err)
				return
			}

			if trace := ctxutil.GetTrace(ctx); trace != nil {
				trace.UserID = principal.UserID
			}

			ctx = ctxutil.WithAuthUser(ctx, principal)
			ctx = ctxutil.WithLogger(ctx, ctxutil.GetLogger(ctx).With(slog.Int64("user_id", principal.UserID)))

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
