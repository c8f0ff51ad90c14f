package xhttp

import (
	"net/http"
)

const (
	XForwardedFor    = "X-Forwarded-For"
	XContentTypeOpts = "X-Content-Type-Options"
	CacheControl     = "Cache-Control"
	ContentType      = "Content-Type"
	UserAgent        = "User-Agent"
	XRequestID       = "X-Request-ID"
)

func SetHeaderRequestID(w http.ResponseWriter, requestID string) {
	w.Header().Set(XRequestID, requestID)
}

func SetHeaderContentTypeApplicationJSON(w http.ResponseWriter) {
	const applicationJSON = "application/json"
	w.Header().Set(ContentType, applicationJSON)
}

func SetHeaderContentTypeTextPlain(w http.ResponseWriter) {
	const textPlain = "text/plain; charset=utf-8"
	w.Header().Set(ContentType, textPlain)
}

// SetHeaderNoStore marks a response as live data that must not be cached.
func SetHeaderNoStore(w http.ResponseWriter) {
	w.Header().Set(CacheControl, "no-store")
}
