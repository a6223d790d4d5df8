// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package middleware provides the HTTP chain every Strongly request passes through.

Order, as wired by the API server:

  - RequestID: correlation id in the context and the X-Request-ID header.
  - StructuredLogger: per-request slog logger plus one access-log line.
  - RateLimit: per-IP token bucket.
  - PanicRecovery: turns a panic into the 500 envelope.
  - CORS: origin allow-list.
  - Authenticate: resolves the Authorization header on protected routes.

Every rejection is written through [respond.Error], so a 401 from the
authenticator and a 429 from the limiter share one envelope.
*/
package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/strongly/internal/platform/constants"
	"github.com/taibuivan/strongly/internal/platform/ctxutil"
	"github.com/taibuivan/strongly/pkg/uuid"
)

// maxRequestIDLength bounds client-supplied correlation ids before they reach the logs.
const maxRequestIDLength = 64

// # Request Tracing

// RequestID attaches a correlation id to every request.
//
// A client-supplied X-Request-ID is kept when it is short enough; otherwise a
// UUIDv7 is minted.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requestID := strings.TrimSpace(request.Header.Get(constants.HeaderXRequestID))
			if requestID == "" || len(requestID) > maxRequestIDLength {
				requestID = uuid.New()
			}

			writer.Header().Set(constants.HeaderXRequestID, requestID)
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithRequestID(request.Context(), requestID)))
		})
	}
}

// # Access Log

// responseRecorder remembers what was written so the access log can report it.
type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (recorder *responseRecorder) WriteHeader(code int) {
	if recorder.status == 0 {
		recorder.status = code
	}
	recorder.ResponseWriter.WriteHeader(code)
}

func (recorder *responseRecorder) Write(body []byte) (int, error) {
	if recorder.status == 0 {
		recorder.status = http.StatusOK
	}
	n, err := recorder.ResponseWriter.Write(body)
	recorder.bytes += n
	return n, err
}

// Status is the written status, or 200 when the handler wrote nothing at all.
func (recorder *responseRecorder) Status() int {
	if recorder.status == 0 {
		return http.StatusOK
	}
	return recorder.status
}

// StructuredLogger derives a request-scoped logger and emits one
// "http_request_finished" line per request.
//
// # Fields
//
// request_id, method, path and ip are attached up front so every downstream log
// line carries them. The final line adds status, bytes, latency, the chi route
// pattern (ids replaced by {id}) and, once [Authenticate] has run, the user id.
func StructuredLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			startedAt := time.Now()

			requestLogger := logger.With(
				slog.String("request_id", ctxutil.GetRequestID(request.Context())),
				slog.String("method", request.Method),
				slog.String("path", request.URL.Path),
				slog.String("ip", RealIP(request)),
			)

			trace := &ctxutil.Trace{}
			ctx := ctxutil.WithLogger(request.Context(), requestLogger)
			ctx = ctxutil.WithTrace(ctx, trace)

			recorder := &responseRecorder{ResponseWriter: writer}
			next.ServeHTTP(recorder, request.WithContext(ctx))

			status := recorder.Status()
			attrs := []slog.Attr{
				slog.Int("status", status),
				slog.Int("bytes", recorder.bytes),
				slog.Int64("latency_ms", time.Since(startedAt).Milliseconds()),
				slog.String("user_agent", request.UserAgent()),
			}
			if routeContext := chi.RouteContext(ctx); routeContext != nil {
				if pattern := routeContext.RoutePattern(); pattern != "" {
					attrs = append(attrs, slog.String("route", pattern))
				}
			}
			if trace.UserID != 0 {
				attrs = append(attrs, slog.Int64("user_id", trace.UserID))
			}

			requestLogger.LogAttrs(ctx, accessLogLevel(status), "http_request_finished", attrs...)
		})
	}
}

func accessLogLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// # Helpers

// RealIP extracts the client address, preferring X-Real-IP, then the first
// X-Forwarded-For hop, then the connection's remote address.
func RealIP(request *http.Request) string {
	if ip := strings.TrimSpace(request.Header.Get(constants.HeaderXRealIP)); ip != "" {
		return ip
	}

	if forwarded := request.Header.Get(constants.HeaderXForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}
