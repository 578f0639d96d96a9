package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
)

// panicMessage is the body sent when a handler panics. The panic value
// itself only goes to the log.
const panicMessage = "Internal Server Error"

// Recovery turns a handler panic into a plain-text 500 and logs the panic
// with its stack. If the handler already wrote headers only the log entry
// is emitted.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				if v := recover(); v != nil {
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.String("panic", fmt.Sprint(v)),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)

					if !rw.committed {
						dto.WriteText(rw, r, http.StatusInternalServerError, panicMessage)
					}
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
