// Package server serves the showcase: an index of the registered widgets, a
// live page per widget, a JSON API and the websocket that drives each page's
// session.
package server

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/mayura-ui/mayura/internal/config"
	"github.com/mayura-ui/mayura/internal/errors"
	"github.com/mayura-ui/mayura/internal/fixtures"
	"github.com/mayura-ui/mayura/internal/i18n"
	"github.com/mayura-ui/mayura/internal/logging"
	"github.com/mayura-ui/mayura/internal/registry"
	"github.com/mayura-ui/mayura/internal/showcase"
	"github.com/mayura-ui/mayura/internal/version"
)

// shutdownTimeout bounds the graceful shutdown started by a cancelled
// context.
const shutdownTimeout = 5 * time.Second

// Server serves the showcase over HTTP.
type Server struct {
	config   *config.Config
	logger   logging.Logger
	errs     *errors.ErrorHandler
	registry *registry.ComponentRegistry
	catalog  *i18n.Catalog
	watcher  *fixtures.Watcher
	started  time.Time

	fixturesMutex sync.RWMutex
	fixtures      *fixtures.Fixtures

	serverMutex sync.RWMutex
	httpServer  *http.Server

	clientsMutex sync.RWMutex
	clients      map[*Client]struct{}

	shutdownOnce sync.Once
}

// New builds a server for cfg. The fixtures file named in the config is
// loaded now; with watching enabled it is reloaded on every change once the
// server starts.
func New(cfg *config.Config, reg *registry.ComponentRegistry, logger logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.WithComponent("server")

	catalog, err := i18n.New(cfg.Showcase.Locale)
	if err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeConfigInvalid, err.Error())
	}

	s := &Server{
		config:   cfg,
		logger:   logger,
		errs:     errors.NewErrorHandler(logger),
		registry: reg,
		catalog:  catalog,
		clients:  make(map[*Client]struct{}),
	}

	switch path := cfg.Showcase.Fixtures; {
	case path == "":
		s.fixtures = fixtures.Default()
	case cfg.Showcase.Watch:
		w, err := fixtures.NewWatcher(path, 0, logger)
		if err != nil {
			return nil, err
		}
		s.watcher = w
		s.fixtures = w.Current()
		w.OnChange(s.reload)
	default:
		fx, err := fixtures.Load(path)
		if err != nil {
			return nil, err
		}
		s.fixtures = fx
	}
	return s, nil
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /components/{name}", s.handleComponent)
	mux.HandleFunc("GET /api/components", s.handleComponents)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	return s.addMiddleware(mux)
}

// Start listens on the configured address and serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Server.Address())
	if err != nil {
		return errors.NewIOError(errors.ErrCodeInternalError, "listen on "+s.config.Server.Address(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	if s.watcher != nil {
		if err := s.watcher.Start(ctx); err != nil {
			s.logger.Warn(ctx, err, "Fixture watching disabled")
		}
	}

	s.started = time.Now()
	s.serverMutex.Lock()
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	server := s.httpServer
	s.serverMutex.Unlock()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, err, "Shutdown failed")
		}
	}()

	s.logger.Info(ctx, "Showcase listening", "addr", ln.Addr().String(), "components", s.registry.Count())
	if err := server.Serve(ln); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown closes every websocket, stops the fixture watcher and shuts the
// HTTP server down.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.logger.Info(ctx, "Shutting down server")

		if s.watcher != nil {
			if err := s.watcher.Stop(); err != nil {
				s.logger.Warn(ctx, err, "Stopping fixture watcher failed")
			}
		}

		// hijacked connections are not tracked by http.Server
		s.clientsMutex.Lock()
		clients := make([]*Client, 0, len(s.clients))
		for c := range s.clients {
			clients = append(clients, c)
		}
		s.clientsMutex.Unlock()
		for _, c := range clients {
			c.close("server shutting down")
		}

		s.serverMutex.RLock()
		server := s.httpServer
		s.serverMutex.RUnlock()
		if server != nil {
			shutdownErr = server.Shutdown(ctx)
		}
	})
	return shutdownErr
}

// Fixtures returns the demo data new sessions are built from.
func (s *Server) Fixtures() *fixtures.Fixtures {
	s.fixturesMutex.RLock()
	defer s.fixturesMutex.RUnlock()
	return s.fixtures
}

// ClientCount returns the number of connected websockets.
func (s *Server) ClientCount() int {
	s.clientsMutex.RLock()
	defer s.clientsMutex.RUnlock()
	return len(s.clients)
}

// newSession builds a session over the current fixtures.
func (s *Server) newSession(push func(showcase.Fragment)) *showcase.Session {
	return showcase.NewSession(s.Fixtures(), showcase.Options{
		Catalog:        s.catalog,
		Logger:         s.logger,
		MaxPageNumbers: s.config.Showcase.MaxPageNumbers,
		PageSize:       s.config.Showcase.PageSize,
		Push:           push,
	})
}

// reload swaps the fixtures and rebuilds every connected session.
func (s *Server) reload(fx *fixtures.Fixtures) {
	s.fixturesMutex.Lock()
	s.fixtures = fx
	s.fixturesMutex.Unlock()

	s.clientsMutex.RLock()
	clients := make([]*Client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.clientsMutex.RUnlock()

	ctx := context.Background()
	for _, c := range clients {
		c.session.SetFixtures(fx)
		frags, err := c.session.RenderAll(ctx)
		if err != nil {
			s.errs.Handle(ctx, err)
			continue
		}
		c.enqueue(Message{Type: MessageReload, Session: c.session.ID(), Fragments: frags})
	}
	s.logger.Info(ctx, "Fixtures pushed to clients", "clients", len(clients))
}

func (s *Server) addClient(c *Client) {
	s.clientsMutex.Lock()
	s.clients[c] = struct{}{}
	n := len(s.clients)
	s.clientsMutex.Unlock()
	s.logger.Debug(context.Background(), "Client connected", "session", c.session.ID(), "total", n)
}

func (s *Server) removeClient(c *Client) {
	s.clientsMutex.Lock()
	delete(s.clients, c)
	n := len(s.clients)
	s.clientsMutex.Unlock()
	s.logger.Debug(context.Background(), "Client disconnected", "session", c.session.ID(), "total", n)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Hijack hands the connection to the websocket upgrade.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	r.status = http.StatusSwitchingProtocols
	return http.NewResponseController(r.ResponseWriter).Hijack()
}

func (s *Server) addMiddleware(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if s.isAllowedOrigin(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Vary", "Origin")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		r = r.WithContext(i18n.WithCatalog(r.Context(), s.catalog))
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		handler.ServeHTTP(rec, r)
		s.logger.Debug(r.Context(), "Request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}

// isAllowedOrigin reports whether origin matches a configured origin
// exactly. Websocket upgrades use the configured values as host patterns.
func (s *Server) isAllowedOrigin(origin string) bool {
	if origin == "" {
		return false
	}
	return slices.Contains(s.config.Server.AllowedOrigins, origin)
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// HealthStatus is the body of /healthz.
type HealthStatus struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	Components int    `json:"components"`
	Clients    int    `json:"clients"`
	Uptime     string `json:"uptime"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := HealthStatus{
		Status:     "healthy",
		Version:    version.Get().Short(),
		Components: s.registry.Count(),
		Clients:    s.ClientCount(),
		Uptime:     time.Since(s.started).Truncate(time.Second).String(),
	}
	if err := writeJSON(w, http.StatusOK, health); err != nil {
		s.logger.Warn(r.Context(), err, "Failed to encode health response")
	}
}

func (s *Server) handleComponents(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, s.registry.GetAll()); err != nil {
		s.logger.Warn(r.Context(), err, "Failed to encode components")
	}
}
