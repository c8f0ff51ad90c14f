package xhttp

import (
	"net/http"
	"time"
)

type ClientOption func(*http.Client)

func WithTimeout(d time.Duration) ClientOption {
	return func(c *http.Client) { c.Timeout = d }
}

// WithBaseTransport swaps the transport under the User-Agent wrapper. Tests
// point it at an httptest server's transport.
func WithBaseTransport(rt http.RoundTripper) ClientOption {
	return func(c *http.Client) {
		c.Transport = &userAgentTransport{base: rt}
	}
}

func NewHTTPClient(opts ...ClientOption) *http.Client {
	c := &http.Client{Transport: NewTransport()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
