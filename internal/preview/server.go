package preview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"git.home.luguber.info/inful/readme-preview/internal/logfields"
	"git.home.luguber.info/inful/readme-preview/internal/metrics"
	smw "git.home.luguber.info/inful/readme-preview/internal/server/middleware"
)

// MetricsPath is where Prometheus metrics are served when enabled.
const MetricsPath = "/metrics"

const shutdownTimeout = 5 * time.Second

// Server serves the current preview page at every path. The page can be
// swapped at any time with SetHTML.
type Server struct {
	mu   sync.RWMutex
	html string

	logger         *slog.Logger
	recorder       metrics.Recorder
	metricsHandler http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithRecorder counts requests through r.
func WithRecorder(r metrics.Recorder) Option {
	return func(s *Server) { s.recorder = r }
}

// WithMetricsHandler mounts h at MetricsPath.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) { s.metricsHandler = h }
}

// WithLogger replaces the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// NewServer returns a Server initially serving html.
func NewServer(html string, opts ...Option) *Server {
	s := &Server{
		html:     html,
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetHTML replaces the served page.
func (s *Server) SetHTML(html string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.html = html
}

// HTML returns the page currently served.
func (s *Server) HTML() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.html
}

// Handler returns the HTTP handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	if s.metricsHandler != nil {
		mux.Handle(MetricsPath, s.metricsHandler)
	}
	mux.HandleFunc("/", s.servePage)
	return smw.Chain(s.logger, s.recorder)(mux)
}

func (s *Server) servePage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, s.HTML())
}

// Listen binds the preview port on all interfaces.
func Listen(port int) (net.Listener, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("listen on port %d: %w", port, err)
	}
	return ln, nil
}

// URL returns the address users open in a browser for port.
func URL(port int) string {
	return fmt.Sprintf("http://localhost:%d", port)
}

// Serve runs the HTTP server on ln until ctx is canceled, then shuts down
// gracefully. It returns nil on a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down preview server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("HTTP server shutdown error", logfields.Error(err))
		return err
	}
	return nil
}
