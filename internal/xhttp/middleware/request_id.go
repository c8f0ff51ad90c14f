package middleware

import (
	"net/http"

	"github.com/dbpibus/dbpibus/internal/xcontext"
	"github.com/dbpibus/dbpibus/internal/xhttp"
	"github.com/google/uuid"
)

type requestIDConfig struct {
	idFunc      func(*http.Request) string
	trustHeader bool
}

type RequestIDOption func(*requestIDConfig)

// WithIDFunc replaces the uuid generator.
func WithIDFunc(fn func(*http.Request) string) RequestIDOption {
	return func(c *requestIDConfig) { c.idFunc = fn }
}

// WithTrustedHeader reuses an incoming X-Request-ID when a proxy in front
// already assigned one.
func WithTrustedHeader() RequestIDOption {
	return func(c *requestIDConfig) { c.trustHeader = true }
}

func RequestID(opts ...RequestIDOption) func(http.Handler) http.Handler {
	cfg := requestIDConfig{
		idFunc: func(_ *http.Request) string {
			return uuid.NewString()
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if cfg.trustHeader {
				id = r.Header.Get(xhttp.XRequestID)
			}
			if id == "" {
				id = cfg.idFunc(r)
			}
			ctx := xcontext.SetRequestID(r.Context(), id)
			xhttp.SetHeaderRequestID(w, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
