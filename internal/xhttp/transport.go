package xhttp

import (
	"fmt"
	"net/http"

	"github.com/dbpibus/dbpibus/internal/version"
)

const UserAgentPrefix = "dbpibus/"

type userAgentTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*userAgentTransport)(nil)

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the caller's request.
	req = req.Clone(req.Context())
	req.Header.Set(UserAgent, UserAgentPrefix+version.Get())
	req.Header.Set(version.Header, version.Get())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper that identifies the ticker to
// the stats server.
func NewTransport() http.RoundTripper {
	return &userAgentTransport{base: http.DefaultTransport}
}
