// Package server exposes the calculation engine over HTTP and streams
// published passes to websocket clients.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/udisondev/huntercalc/internal/data"
	"github.com/udisondev/huntercalc/internal/db"
	"github.com/udisondev/huntercalc/internal/engine"
	"github.com/udisondev/huntercalc/internal/render"
)

const (
	maxSnapshotBytes = 1 << 20
	defaultRecent    = 20
	maxRecent        = 200
	shutdownTimeout  = 5 * time.Second
)

// PassStore reads stored passes. db.ResultRepository implements it.
type PassStore interface {
	Get(ctx context.Context, pass uuid.UUID) (db.Record, error)
	Recent(ctx context.Context, limit int) ([]db.Record, error)
}

// Config configures a Server.
type Config struct {
	Addr         string
	WriteTimeout time.Duration
	Logger       *slog.Logger
}

// Server routes snapshots into one engine and serves its results.
type Server struct {
	cfg    Config
	engine *engine.Engine
	hub    *Hub
	passes PassStore // nil when history is disabled
	logger *slog.Logger
}

// New creates a server and subscribes its websocket hub to e.
func New(e *engine.Engine, passes PassStore, cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	hub := NewHub(cfg.WriteTimeout, logger)
	e.Subscribe(hub)

	return &Server{
		cfg:    cfg,
		engine: e,
		hub:    hub,
		passes: passes,
		logger: logger,
	}
}

// Hub returns the websocket hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("POST /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/schema", s.handleSchema)
	mux.HandleFunc("GET /api/passes", s.handleRecent)
	mux.HandleFunc("GET /api/passes/{id}", s.handlePass)
	mux.Handle("GET /ws", s.hub)

	return mux
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on an existing listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server started", "address", ln.Addr())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	s.logger.Info("http server stopped")
	return nil
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	format, err := data.FormatOf(r.Header.Get("Content-Type"))
	if err != nil {
		httpError(w, err.Error(), http.StatusUnsupportedMediaType)
		return
	}

	stats, err := data.DecodeSnapshot(http.MaxBytesReader(w, r.Body, maxSnapshotBytes), format)
	if err != nil {
		httpError(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, published := s.engine.Recompute(stats)
	w.Header().Set("X-Pass-Published", strconv.FormatBool(published))
	s.writeJSON(w, http.StatusOK, render.NewBatch(res))
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	payload, err := data.SchemaJSON()
	if err != nil {
		httpError(w, "failed to encode", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/schema+json")
	w.Write(payload)
}

func (s *Server) handlePass(w http.ResponseWriter, r *http.Request) {
	if s.passes == nil {
		httpError(w, "pass history disabled", http.StatusNotFound)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpError(w, "invalid pass id", http.StatusBadRequest)
		return
	}

	rec, err := s.passes.Get(r.Context(), id)
	if errors.Is(err, db.ErrPassNotFound) {
		httpError(w, "pass not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error("loading pass", "pass", id, "err", err)
		httpError(w, "failed to load pass", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusOK, render.NewBatch(rec.Result))
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	if s.passes == nil {
		httpError(w, "pass history disabled", http.StatusNotFound)
		return
	}

	limit := defaultRecent
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			httpError(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(n, maxRecent)
	}

	records, err := s.passes.Recent(r.Context(), limit)
	if err != nil {
		s.logger.Error("loading recent passes", "err", err)
		httpError(w, "failed to load passes", http.StatusInternalServerError)
		return
	}

	type summary struct {
		Pass        string    `json:"pass"`
		Fingerprint string    `json:"fingerprint"`
		CreatedAt   time.Time `json:"createdAt"`
	}
	out := make([]summary, 0, len(records))
	for _, rec := range records {
		out = append(out, summary{
			Pass:        rec.Result.Pass.String(),
			Fingerprint: rec.Result.Fingerprint,
			CreatedAt:   rec.CreatedAt,
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encoding response", "err", err)
		httpError(w, "failed to encode", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(payload)
}

func httpError(w http.ResponseWriter, msg string, code int) {
	http.Error(w, msg, code)
}
