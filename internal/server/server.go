package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/DenisBelikov/homework-bot/internal/history"
)

// shutdownTimeout bounds the graceful shutdown after context cancellation.
const shutdownTimeout = 5 * time.Second

// Snapshot is a point-in-time view of a running bot, optimized for JSON
// serialization.
type Snapshot struct {
	// StartedAt is when the poll loop started.
	StartedAt time.Time `json:"started_at"`

	// Cursor is the current from_date watermark sent to the review API.
	Cursor int64 `json:"cursor"`

	// LastError is the text of the most recently reported error, if any.
	LastError string `json:"last_error,omitempty"`

	// History lists the recent deliveries, oldest first.
	History []history.Entry `json:"history"`
}

// SnapshotFunc supplies the current bot state for the status endpoint.
// It must be safe to call from request goroutines.
type SnapshotFunc func() Snapshot

// Server handles HTTP requests for the bot's status API.
//
// Server provides two endpoints:
//   - GET /api/status: Returns the current [Snapshot] as JSON
//   - GET /healthz: Liveness check
//
// The server is designed for graceful shutdown via context cancellation.
type Server struct {
	snapshot   SnapshotFunc
	port       int
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates a new status API [Server].
//
// Parameters:
//   - snapshot: Callback supplying the bot state for /api/status
//   - port: TCP port to listen on
//   - logger: Logger for server events
//
// The server is not started until [Server.Start] is called.
func NewServer(snapshot SnapshotFunc, port int, logger *slog.Logger) *Server {
	return &Server{
		snapshot: snapshot,
		port:     port,
		logger:   logger,
	}
}

// Start begins serving HTTP requests in a background goroutine.
//
// Start is non-blocking and returns immediately after confirming the server
// is listening. The server runs until the context is cancelled, at which
// point it initiates a graceful shutdown with a 5-second timeout.
//
// Returns an error if the server fails to bind to the configured port.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/healthz", s.handleHealth)

	// create listener first to verify port availability synchronously
	addr := fmt.Sprintf(":%d", s.port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind to port %d: %w", s.port, err)
	}

	s.httpServer = &http.Server{
		Handler: mux,
		// BaseContext derives all request contexts from the server context,
		// so cancelling ctx also cancels in-flight requests.
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("http server error", "error", err)
		}
	}()

	// shutdown on context cancellation
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("http server shutdown error", "error", err)
		}
	}()

	return nil
}

// handleStatus serves the current bot snapshot as JSON.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.snapshot()); err != nil {
		s.logger.Error("failed to encode status", "error", err)
	}
}

// handleHealth serves a plain liveness check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
