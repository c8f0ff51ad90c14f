package middleware

import (
	"log/slog"
	"net/http"

	"github.com/dbpibus/dbpibus/internal/xcontext"
	"github.com/dbpibus/dbpibus/internal/xslog"
)

// Logger puts base, tagged with the request id, into the request context.
// It must run after RequestID.
func Logger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := base
			if id, ok := xcontext.GetRequestID(r.Context()); ok {
				logger = logger.With(xslog.RequestID(id))
			}
			ctx := xslog.WithLogger(r.Context(), logger)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
