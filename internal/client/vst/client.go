// Package vst fetches run stats from the Desert Bus vital statistics tracker.
package vst

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dbpibus/dbpibus/internal/xhttp"
	"github.com/dbpibus/dbpibus/internal/xslog"
	go_json "github.com/goccy/go-json"
)

const DefaultBaseURL = "https://vst.ninja/"

// maxBody caps how much of a response is read. The stats file is a few KiB.
const maxBody = 1 << 20

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(opts ...Option) *Client {
	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
		logger:  slog.Default(),
		timeout: 20 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	httpOpts := []xhttp.ClientOption{xhttp.WithTimeout(cfg.timeout)}
	if cfg.transport != nil {
		httpOpts = append(httpOpts, xhttp.WithBaseTransport(cfg.transport))
	}

	return &Client{
		baseURL:    withSlash(cfg.baseURL),
		httpClient: xhttp.NewHTTPClient(httpOpts...),
		logger:     cfg.logger,
	}
}

type clientConfig struct {
	baseURL   string
	logger    *slog.Logger
	timeout   time.Duration
	transport http.RoundTripper
}

type Option func(*clientConfig)

func WithBaseURL(baseURL string) Option {
	return func(cfg *clientConfig) {
		if baseURL != "" {
			cfg.baseURL = baseURL
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) {
		if d > 0 {
			cfg.timeout = d
		}
	}
}

// WithTransport sets the transport under the client's header wrapper.
func WithTransport(rt http.RoundTripper) Option {
	return func(cfg *clientConfig) { cfg.transport = rt }
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	u := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, &StatusError{URL: u, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return body, nil
}

func (c *Client) getJSON(ctx context.Context, path string, result any) error {
	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if err := go_json.NewDecoder(bytes.NewReader(body)).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// log prefers a logger carried in ctx, so fetch ids set by the poller show up
// on client log lines.
func (c *Client) log(ctx context.Context) *slog.Logger {
	return xslog.FromContextOr(ctx, c.logger)
}

func withSlash(u string) string {
	if len(u) > 0 && u[len(u)-1] != '/' {
		return u + "/"
	}
	return u
}
