// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/taibuivan/strongly/internal/platform/apperr"
	"github.com/taibuivan/strongly/internal/platform/ctxutil"
	"github.com/taibuivan/strongly/internal/platform/respond"
)

// stackSize caps the captured goroutine stack.
const stackSize = 4 << 10

// PanicRecovery turns a panicking handler into the 500 envelope.
//
// The stack goes to the request logger; the client only sees INTERNAL_ERROR.
// [http.ErrAbortHandler] is re-raised so net/http can drop the connection.
func PanicRecovery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				stack := make([]byte, stackSize)
				stack = stack[:runtime.Stack(stack, false)]

				ctx := request.Context()
				ctxutil.GetLogger(ctx).ErrorContext(ctx, "panic_recovered",
					slog.Any("panic", recovered),
					slog.String("stack", string(stack)),
				)

				respond.Error(writer, request, apperr.Internal(fmt.Errorf("panic: %v", recovered)))
			}()

			next.ServeHTTP(writer, request)
		})
	}
}
