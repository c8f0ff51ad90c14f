package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/dbpibus/dbpibus/internal/xhttp/middleware"
	"github.com/dbpibus/dbpibus/internal/xslog"
)

const defaultShutdownTimeout = 5 * time.Second

type Server struct {
	addr            string
	handler         http.Handler
	logger          *slog.Logger
	shutdownTimeout time.Duration
	settings        SettingsEditor
}

type Option func(*Server)

func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// WithSettings also serves GET /settings and PUT /settings/{key}.
func WithSettings(s SettingsEditor) Option {
	return func(srv *Server) { srv.settings = s }
}

func New(addr string, source StatusSource, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		addr:            addr,
		logger:          logger,
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := NewHandler(source).Routes()
	if s.settings != nil {
		sh := NewSettingsHandler(s.settings)
		mux.HandleFunc("GET /settings", sh.HandleList)
		mux.HandleFunc("PUT /settings/{key}", sh.HandleSet)
	}

	s.handler = middleware.Chain(mux,
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery,
		middleware.Logging,
	)
	return s
}

// Handler is the fully wrapped handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	coordinator := NewShutdownCoordinator(ctx)

	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return coordinator.BaseContext()
		},
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.InfoContext(ctx, "status server listening", xslog.URL("http://"+ln.Addr().String()))
		errc <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("status server: %w", err)
	case <-ctx.Done():
	}

	coordinator.InitiateShutdown()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("status server shutdown: %w", err)
	}
	s.logger.InfoContext(ctx, "status server stopped")
	return nil
}
