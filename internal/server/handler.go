// Package server is the read-only HTTP status endpoint: what the LCD shows
// right now, and the stats behind it.
package server

import (
	"net/http"

	"github.com/dbpibus/dbpibus/internal/app"
	"github.com/dbpibus/dbpibus/internal/version"
	"github.com/dbpibus/dbpibus/internal/xerrors"
	"github.com/dbpibus/dbpibus/internal/xhttp"
)

// StatusSource is satisfied by *app.Loop.
type StatusSource interface {
	Status() app.Status
}

type Handler struct {
	source StatusSource
}

func NewHandler(source StatusSource) *Handler {
	return &Handler{source: source}
}

// HandleStatus returns the full status as JSON.
func (h *Handler) HandleStatus(w http.ResponseWriter, _ *http.Request) {
	xhttp.SetHeaderNoStore(w)
	xhttp.WriteOK(w, h.source.Status())
}

// HandleLCD returns just the two display lines, for curl and watch.
func (h *Handler) HandleLCD(w http.ResponseWriter, _ *http.Request) {
	st := h.source.Status()
	xhttp.SetHeaderNoStore(w)
	xhttp.WriteText(w, http.StatusOK, st.Line1+"\n"+st.Line2)
}

// HandleHealth fails once the stats poller has stalled, so a supervisor can
// restart a device that is stuck showing stale numbers.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if !h.source.Status().PollerAlive {
		xerrors.WriteError(r.Context(), w, xerrors.New(http.StatusServiceUnavailable, "stats poller stalled"))
		return
	}
	xhttp.WriteOK(w, map[string]string{
		"status":  "ok",
		"version": version.Get(),
	})
}

// Routes mounts every endpoint on a new mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /status", h.HandleStatus)
	mux.HandleFunc("GET /lcd", h.HandleLCD)
	mux.HandleFunc("GET /health", h.HandleHealth)
	return mux
}
