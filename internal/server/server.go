// Package server serves a routed application over HTTP. Pages are rendered
// on the server; a websocket at the bridge path lets a remote page drive
// navigation and receive re-rendered HTML.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/vango-dev/vroute/internal/config"
	"github.com/vango-dev/vroute/pkg/history"
	"github.com/vango-dev/vroute/pkg/match"
	"github.com/vango-dev/vroute/pkg/render"
	"github.com/vango-dev/vroute/pkg/router"
	"github.com/vango-dev/vroute/pkg/snapshot"
	"github.com/vango-dev/vroute/pkg/telemetry"
	"github.com/vango-dev/vroute/pkg/vdom"
)

// Server is the bridge HTTP server.
type Server struct {
	config *config.Config
	logger *slog.Logger

	app   func() *vdom.VNode
	table []match.TableEntry

	registry  *prometheus.Registry
	collector *telemetry.Collector
	upgrader  history.Upgrader
	pages     *snapshot.Snapshotter

	sessions atomic.Int64
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a server for app. table describes app's routes for the
// /routes endpoint.
func New(cfg *config.Config, app func() *vdom.VNode, table []match.TableEntry, opts ...Option) *Server {
	s := &Server{
		config: cfg,
		logger: slog.Default(),
		app:    app,
		table:  table,
	}
	for _, opt := range opts {
		opt(s)
	}

	if cfg.Metrics.Enabled {
		s.registry = prometheus.NewRegistry()
		s.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		s.collector = telemetry.New(
			telemetry.WithRegistry(s.registry),
			telemetry.WithNamespace(cfg.Metrics.Namespace),
		)
	}

	s.upgrader = history.Upgrader{Logger: s.logger}
	s.pages = snapshot.New(app, nil, snapshot.WithLogger(s.logger), snapshot.WithTitle(func(path string) string {
		return cfg.Name
	}))
	return s
}

// Sessions returns the number of connected bridges.
func (s *Server) Sessions() int64 {
	return s.sessions.Load()
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/routes", s.handleRoutes)
	if s.registry != nil {
		r.Handle("/metrics", telemetry.Handler(s.registry))
	}
	r.Get(s.config.Bridge.Path, s.handleBridge)
	r.Get("/*", s.handlePage)

	return r
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Bridge.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		// Bridges are hijacked connections that Shutdown does not wait
		// for; deriving request contexts from ctx ends them too.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("bridge listening", "addr", srv.Addr, "path", s.config.Bridge.Path)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := r.URL.Query().Get("path")
	if path == "" {
		json.NewEncoder(w).Encode(s.table)
		return
	}

	steps, err := match.Resolve(s.table, path)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	if steps == nil {
		steps = []match.Step{}
	}
	json.NewEncoder(w).Encode(steps)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	target := r.URL.EscapedPath()
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	html, err := s.pages.Render(target)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

// handleBridge runs one remote page: a Source over the websocket bridge
// drives a mounted tree, and every navigation sends the new HTML back.
func (s *Server) handleBridge(w http.ResponseWriter, r *http.Request) {
	bridge, err := s.upgrader.Upgrade(w, r)
	if err != nil {
		s.logger.Warn("bridge upgrade failed", "error", err)
		return
	}
	defer bridge.Close()

	s.sessions.Add(1)
	defer s.sessions.Add(-1)

	srcOpts := []history.Option{history.WithLogger(s.logger)}
	routerOpts := []router.Option{router.WithLogger(s.logger)}
	if s.collector != nil {
		srcOpts = append(srcOpts, history.WithObserver(s.collector))
		routerOpts = append(routerOpts, router.WithObserver(s.collector))
	}

	src, err := history.New(bridge, srcOpts...)
	if err != nil {
		s.logger.Error("bridge source", "error", err)
		return
	}
	defer src.Close()

	rt := router.NewRouter(src, routerOpts...)
	root := router.BrowserRouter(rt, s.app())
	tree := render.Mount(vdom.Static(func() *vdom.VNode { return root }), render.WithLogger(s.logger))
	defer tree.Unmount()

	send := func() {
		html, err := tree.HTML()
		if err != nil {
			s.logger.Error("bridge render", "error", err)
			return
		}
		msg := history.Message{Op: history.OpRender, Path: src.Location().String(), HTML: html}
		if err := bridge.Send(msg); err != nil {
			s.logger.Debug("bridge send failed", "error", err)
		}
	}
	send()
	unsubscribe := src.Subscribe(send)
	defer unsubscribe()

	s.logger.Info("bridge connected", "path", src.CurrentPath(), "sessions", s.sessions.Load())
	if err := bridge.Run(r.Context()); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn("bridge closed", "error", err)
	}
}

// requestLogger logs each request at Debug with slog.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
