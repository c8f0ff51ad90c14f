package xhttp

import (
	"net/http"

	go_json "github.com/goccy/go-json"
)

func WriteJSON(w http.ResponseWriter, status int, data any) {
	SetHeaderContentTypeApplicationJSON(w)
	w.WriteHeader(status)
	_ = go_json.NewEncoder(w).Encode(data)
}

func WriteOK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

// WriteText writes body as plain text with a trailing newline.
func WriteText(w http.ResponseWriter, status int, body string) {
	SetHeaderContentTypeTextPlain(w)
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body + "\n"))
}
