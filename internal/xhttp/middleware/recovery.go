package middleware

import (
	"net/http"

	"github.com/dbpibus/dbpibus/internal/xerrors"
	"github.com/dbpibus/dbpibus/internal/xslog"
)

// Recovery turns a handler panic into the same JSON 500 every other error
// gets. http.ErrAbortHandler is re-raised so net/http can drop the connection.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			ctx := r.Context()
			xslog.FromContext(ctx).ErrorContext(ctx, "panic recovered",
				xslog.RequestGroup(r),
				xslog.ErrorGroupWithStack(rec),
			)
			xerrors.WriteError(ctx, w, xerrors.New(http.StatusInternalServerError, ""))
		}()
		next.ServeHTTP(w, r)
	})
}
