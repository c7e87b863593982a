package router

import (
	"log/slog"

	"github.com/vango-dev/vroute/pkg/history"
	"github.com/vango-dev/vroute/pkg/vango"
	"github.com/vango-dev/vroute/pkg/vdom"
)

// BrowserOption configures a BrowserRouter that creates its own Router.
type BrowserOption func(*browserConfig)

type browserConfig struct {
	router     *Router
	history    history.History
	logger     *slog.Logger
	observer   Observer
	navObserve []history.Observer
}

// BrowserLogger sets the logger of the created Router and source.
func BrowserLogger(logger *slog.Logger) BrowserOption {
	return func(c *browserConfig) {
		c.logger = logger
	}
}

// BrowserObserver attaches o to the created Router. If o also implements
// history.Observer it observes the source as well.
func BrowserObserver(o Observer) BrowserOption {
	return func(c *browserConfig) {
		c.observer = o
		if ho, ok := o.(history.Observer); ok {
			c.navObserve = append(c.navObserve, ho)
		}
	}
}

type browserRouter struct {
	config   browserConfig
	children []any
}

// BrowserRouter establishes a Router for its children.
//
// Arguments may be a *Router to share, a history.History to build a new
// source over, BrowserOptions, and children. A source the BrowserRouter
// creates is closed when it unmounts; a supplied Router is left alone.
// Without either a Router or a History it panics with an R003 error.
func BrowserRouter(args ...any) *vdom.VNode {
	b := &browserRouter{}
	for _, arg := range args {
		switch v := arg.(type) {
		case *Router:
			b.config.router = v
		case history.History:
			b.config.history = v
		case BrowserOption:
			v(&b.config)
		default:
			b.children = append(b.children, v)
		}
	}
	return vdom.Comp(b)
}

func (b *browserRouter) Render(owner *vango.Owner) *vdom.VNode {
	r := b.config.router
	if r == nil {
		opts := []history.Option{history.WithLogger(b.config.logger)}
		for _, o := range b.config.navObserve {
			opts = append(opts, history.WithObserver(o))
		}

		src, err := history.New(b.config.history, opts...)
		if err != nil {
			panic(err)
		}
		owner.OnCleanup(func() { src.Close() })

		r = NewRouter(src, WithLogger(b.config.logger), WithObserver(b.config.observer))
	}

	RouterContext.Provide(owner, r)
	return vdom.Fragment(b.children...)
}

// StaticRouter renders its children without navigation wiring. It hides
// any enclosing Router: Switches below it never change route and resolve
// to their "" declaration, if any. Links below it cannot navigate.
func StaticRouter(children ...any) *vdom.VNode {
	return vdom.Comp(vdom.Func(func(owner *vango.Owner) *vdom.VNode {
		RouterContext.Provide(owner, nil)
		return vdom.Fragment(children...)
	}))
}
