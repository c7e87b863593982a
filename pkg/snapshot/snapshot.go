package snapshot

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/vango-dev/vroute/internal/errors"
	"github.com/vango-dev/vroute/pkg/history"
	"github.com/vango-dev/vroute/pkg/render"
	"github.com/vango-dev/vroute/pkg/routepath"
	"github.com/vango-dev/vroute/pkg/router"
	"github.com/vango-dev/vroute/pkg/vdom"
)

// Result describes one stored snapshot.
type Result struct {
	Path     string
	Location string
	Bytes    int
}

// Snapshotter renders an application at a list of paths.
type Snapshotter struct {
	app      func() *vdom.VNode
	store    Store
	logger   *slog.Logger
	renderer *render.Renderer
	title    func(path string) string
	lang     string
	meta     map[string]string
}

// Option configures a Snapshotter.
type Option func(*Snapshotter)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Snapshotter) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTitle sets the function that names each page.
func WithTitle(fn func(path string) string) Option {
	return func(s *Snapshotter) {
		s.title = fn
	}
}

// WithLang sets the document language.
func WithLang(lang string) Option {
	return func(s *Snapshotter) {
		s.lang = lang
	}
}

// WithMeta sets meta tags written into every page.
func WithMeta(meta map[string]string) Option {
	return func(s *Snapshotter) {
		s.meta = meta
	}
}

// WithPretty enables indented output.
func WithPretty(indent string) Option {
	return func(s *Snapshotter) {
		s.renderer = render.NewRenderer(render.RendererConfig{Pretty: true, Indent: indent})
	}
}

// New creates a Snapshotter. app returns the routed content placed under
// the router; it is called once per rendered path.
func New(app func() *vdom.VNode, store Store, opts ...Option) *Snapshotter {
	s := &Snapshotter{
		app:      app,
		store:    store,
		logger:   slog.Default(),
		renderer: render.NewRenderer(render.RendererConfig{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Render returns the HTML document for target. The target must be an
// absolute path; it may carry a query string.
func (s *Snapshotter) Render(target string) ([]byte, error) {
	canonical, err := routepath.ValidateTarget(target)
	if err != nil {
		return nil, errors.New("R004").WithSubject(target).Wrap(err)
	}

	h := history.NewMemoryHistory(canonical)
	src, err := history.New(h, history.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}
	defer src.Close()

	r := router.NewRouter(src, router.WithLogger(s.logger))
	root := router.BrowserRouter(r, s.app())
	tree := render.Mount(vdom.Static(func() *vdom.VNode { return root }), render.WithLogger(s.logger))
	defer tree.Unmount()

	page := render.PageData{
		Body: tree.Resolve(),
		Lang: s.lang,
		Meta: s.meta,
	}
	if s.title != nil {
		page.Title = s.title(target)
	}

	var buf bytes.Buffer
	if err := s.renderer.RenderPage(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Snapshot renders every path and stores the result. It stops at the
// first failure or when ctx is done.
func (s *Snapshotter) Snapshot(ctx context.Context, paths []string) ([]Result, error) {
	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		html, err := s.Render(p)
		if err != nil {
			return results, err
		}

		res, _ := routepath.Canonicalize(p)
		location, err := s.store.Put(ctx, Key(res.Path), html)
		if err != nil {
			return results, err
		}

		s.logger.Info("snapshot stored", "path", p, "location", location, "bytes", len(html))
		results = append(results, Result{Path: p, Location: location, Bytes: len(html)})
	}
	return results, nil
}
