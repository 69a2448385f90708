package myMiddleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/umenyi-bryan/Hackarena/internal/response"
)

// Recover turns a panicking handler into a 500 JSON response so one bad
// request never takes the process down.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("panic serving request",
					"method", r.Method,
					"path", r.URL.Path,
					"request_id", middleware.GetReqID(r.Context()),
					"panic", rec,
					"stack", string(debug.Stack()),
				)

				msg := fmt.Sprint(rec)
				if err, ok := rec.(error); ok {
					msg = err.Error()
				}
				response.Unexpected(w, msg, fmt.Sprintf("%T", rec))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
