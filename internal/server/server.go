// Package server exposes the dataset store and engines over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KaramelBytes/tabled/internal/config"
	"github.com/KaramelBytes/tabled/internal/store"
)

// Server wires the store, engines, logger, and metrics behind an
// http.Handler. Each request is served synchronously; a failed request
// never takes the store down with it.
type Server struct {
	cfg     *config.Global
	store   *store.Store
	log     *logrus.Logger
	metrics *metrics
}

// New constructs a Server around an existing store.
func New(cfg *config.Global, st *store.Store, logger *logrus.Logger) *Server {
	return &Server{
		cfg:     cfg,
		store:   st,
		log:     logger,
		metrics: newMetrics(st),
	}
}

// Handler builds the route table. Route patterns rely on the Go 1.22
// method-aware mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /api/datasets", s.instrument("list_datasets", s.handleListDatasets))
	mux.Handle("POST /api/datasets", s.instrument("create_dataset", s.handleCreateDataset))
	mux.Handle("GET /api/datasets/{name}", s.instrument("get_dataset", s.handleGetDataset))
	mux.Handle("DELETE /api/datasets/{name}", s.instrument("delete_dataset", s.handleDeleteDataset))
	mux.Handle("GET /api/datasets/{name}/stats", s.instrument("dataset_stats", s.handleStats))
	mux.Handle("POST /api/filter", s.instrument("filter", s.handleFilter))
	mux.Handle("POST /api/aggregate", s.instrument("aggregate", s.handleAggregate))

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", s.metrics.handler())

	return s.withRequestLog(withCORS(mux))
}

// ListenAndServe runs the HTTP server until ctx is canceled, then shuts
// down gracefully within the configured timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s.Handler(),
		ReadTimeout:  time.Duration(s.cfg.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeoutSec) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	s.log.WithField("addr", s.cfg.ListenAddr).Info("listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.ShutdownTimeoutSec)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
