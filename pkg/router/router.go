package router

import (
	"errors"
	"log/slog"
	"time"

	"github.com/vango-dev/vroute/pkg/history"
	"github.com/vango-dev/vroute/pkg/vango"
)

// ErrNoRouter is matched by the error raised when a Link is activated
// outside a router.
var ErrNoRouter = errors.New("router: no router in context")

// RouterContext carries the Router of the enclosing BrowserRouter.
var RouterContext = vango.DefineContext[*Router]("RouterContext")

// ParentRouteContext carries the active route cell of the enclosing Switch.
var ParentRouteContext = vango.DefineContext[*vango.Signal[*RouteRecord]]("ParentRouteContext")

// SwitchEvent describes one Switch evaluation.
type SwitchEvent struct {
	// Depth is 1 for a top-level Switch and grows with nesting.
	Depth int

	// Path is the remaining path the Switch matched against.
	Path string

	// Pattern is the matched declaration, empty on a miss.
	Pattern string

	Matched  bool
	Start    time.Time
	Duration time.Duration
}

// Observer is told about every Switch evaluation.
type Observer interface {
	ObserveSwitch(ev SwitchEvent)
}

// Router is the navigation source shared by a router tree.
type Router struct {
	source   *history.Source
	logger   *slog.Logger
	observer Observer
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithObserver sets the Switch observer.
func WithObserver(o Observer) Option {
	return func(r *Router) {
		r.observer = o
	}
}

// NewRouter creates a Router over src.
func NewRouter(src *history.Source, opts ...Option) *Router {
	r := &Router{
		source: src,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Source returns the navigation source.
func (r *Router) Source() *history.Source {
	return r.source
}

// Logger returns the router's logger.
func (r *Router) Logger() *slog.Logger {
	return r.logger
}

// Navigate pushes path and notifies every Switch in the tree.
func (r *Router) Navigate(path string, opts ...history.NavigateOption) {
	r.source.Navigate(path, opts...)
}

// CurrentPath returns the current pathname with a leading slash.
func (r *Router) CurrentPath() string {
	return r.source.CurrentPath()
}

// CurrentQuery returns the parsed query of the current location.
func (r *Router) CurrentQuery() map[string]string {
	return r.source.CurrentQuery()
}

func (r *Router) observe(ev SwitchEvent) {
	if r.observer != nil {
		r.observer.ObserveSwitch(ev)
	}
}

// UseRouter returns the Router of the enclosing BrowserRouter, or nil.
func UseRouter(owner *vango.Owner) *Router {
	return RouterContext.Use(owner)
}

// UseRoute returns the active route of the enclosing Switch and
// re-renders the calling component when it changes value.
func UseRoute(owner *vango.Owner) *RouteRecord {
	cell, ok := ParentRouteContext.Lookup(owner)
	if !ok || cell == nil {
		return nil
	}

	current := cell.Get()
	cell.Track(owner, vango.NewListenerFunc(func() {
		if !cell.Get().Equal(current) {
			owner.Invalidate()
		}
	}))
	return current
}

// UseParams returns the parameters of the active route chain. See UseRoute.
func UseParams(owner *vango.Owner) map[string]string {
	return UseRoute(owner).AllParams()
}

// UseQuery returns the parsed query of the current location and
// re-renders the calling component on every navigation. It returns an
// empty map outside a router.
func UseQuery(owner *vango.Owner) map[string]string {
	r := UseRouter(owner)
	if r == nil {
		return map[string]string{}
	}
	owner.OnCleanup(r.source.Subscribe(owner.Invalidate))
	return r.source.CurrentQuery()
}
