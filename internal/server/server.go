// Package server exposes the application over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.trai.ch/crate/internal/app"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
)

const shutdownTimeout = 10 * time.Second

// Application is the subset of the application layer the HTTP surface needs.
type Application interface {
	Matrix(ctx context.Context, collectionID string) (*app.CollectionMatrix, error)
	Bundle(ctx context.Context, collectionID string, gameVersion domain.GameVersion) (*domain.Bundle, error)
}

// Server serves the collection matrix and bundle endpoints.
type Server struct {
	app    Application
	logger ports.Logger
	cfg    *domain.Config
	http   *http.Server
}

// New creates a new Server instance.
func New(application Application, log ports.Logger, cfg *domain.Config) *Server {
	s := &Server{
		app:    application,
		logger: log,
		cfg:    cfg,
	}
	s.http = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the server's route table. Exposed so tests can drive the
// routes through httptest without binding a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/collections/{id}", s.handleMatrix)
	mux.HandleFunc("POST /api/collections/{id}/bundle", s.handleBundle)
	mux.Handle("GET /bundles/", http.StripPrefix("/bundles/", s.bundleFileHandler()))
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// Run serves HTTP until the context is cancelled, then shuts down gracefully.
// In-flight requests get shutdownTimeout to finish.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	s.logger.Info("listening on " + s.cfg.ListenAddr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
