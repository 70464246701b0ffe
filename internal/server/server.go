// Package server exposes the registration form over HTTP. Every request gets
// its own signupform.App rebuilt from the posted state, so no form state is
// shared between requests.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	signupform "github.com/goliatone/go-signupform"
	"github.com/goliatone/go-signupform/pkg/openapi"
	"github.com/goliatone/go-signupform/pkg/orchestrator"
)

// maxFormBytes bounds posted form bodies.
const maxFormBytes = 1 << 20

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithOrchestrator shares an orchestrator between requests.
func WithOrchestrator(o *orchestrator.Orchestrator) Option {
	return func(s *Server) {
		if o != nil {
			s.orchestrator = o
		}
	}
}

// WithRenderer selects the renderer used when a request does not ask for
// one with ?renderer=.
func WithRenderer(name string) Option {
	return func(s *Server) {
		s.renderer = name
	}
}

// WithTheme sets the theme passed to renderers.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(s *Server) {
		s.theme = cfg
	}
}

// WithGrace sets the shutdown grace period.
func WithGrace(grace time.Duration) Option {
	return func(s *Server) {
		if grace >= 0 {
			s.grace = grace
		}
	}
}

// Server serves the form, its assets and the contract document.
type Server struct {
	logger       *zap.Logger
	orchestrator *orchestrator.Orchestrator
	renderer     string
	theme        *theme.RendererConfig
	grace        time.Duration

	contract []byte
	handler  http.Handler
}

// New builds the server and its routes.
func New(ctx context.Context, options ...Option) (*Server, error) {
	s := &Server{
		logger: zap.NewNop(),
		grace:  5 * time.Second,
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.orchestrator == nil {
		s.orchestrator = orchestrator.New()
	}
	if _, err := s.orchestrator.Renderer(s.renderer); err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	contract, err := openapi.Marshal(ctx)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	s.contract = contract

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleShow)
	mux.HandleFunc("POST /{$}", s.handleSubmit)
	mux.HandleFunc("GET /openapi.json", s.handleContract)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServerFS(signupform.AssetsFS())))

	s.handler = requestID(accessLog(s.logger, mux))
	return s, nil
}

// Handler returns the root handler including middleware.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe listens on addr and serves until ctx is done, then shuts
// down within the grace period.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(ln)
	}()
	s.logger.Info("listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: serve: %w", err)
	}
	s.logger.Info("stopped")
	return nil
}
