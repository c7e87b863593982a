package router

import (
	"fmt"
	"strings"

	rerrors "github.com/vango-dev/vroute/internal/errors"
	"github.com/vango-dev/vroute/pkg/routepath"
	"github.com/vango-dev/vroute/pkg/vango"
	"github.com/vango-dev/vroute/pkg/vdom"
)

type linkComponent struct {
	href     any // string or func() string
	delegate any // caller's onclick handler, if any
	args     []any

	activeClass string
	exact       bool
	active      bool // track the current location
}

// Link renders an anchor that navigates through the enclosing Router
// instead of loading href. href is a string or a func() string evaluated on
// every activation. The remaining arguments are anchor attributes and
// children as accepted by vdom.A.
//
// A caller-supplied vdom.OnClick handler replaces the navigation entirely.
// Activating a Link outside a router panics with an R001 error.
func Link(href any, args ...any) *vdom.VNode {
	return vdom.Comp(newLink(href, args))
}

// ActiveLink is a Link that adds activeClass and aria-current="page" while
// the current path equals href, or, when exact is false, lies below it.
func ActiveLink(href any, activeClass string, exact bool, args ...any) *vdom.VNode {
	l := newLink(href, args)
	l.activeClass = activeClass
	l.exact = exact
	l.active = true
	return vdom.Comp(l)
}

// NavLink is an ActiveLink with the "active" class and exact matching.
func NavLink(href any, args ...any) *vdom.VNode {
	return ActiveLink(href, "active", true, args...)
}

func newLink(href any, args []any) *linkComponent {
	switch href.(type) {
	case string, func() string:
	default:
		panic(fmt.Sprintf("router: Link href must be string or func() string, got %T", href))
	}

	l := &linkComponent{href: href}
	for _, arg := range args {
		if h, ok := arg.(vdom.EventHandler); ok && h.Event == "onclick" {
			l.delegate = h.Handler
			continue
		}
		l.args = append(l.args, arg)
	}
	return l
}

func (l *linkComponent) resolve() string {
	switch h := l.href.(type) {
	case func() string:
		return h()
	case string:
		return h
	}
	return ""
}

func (l *linkComponent) Render(owner *vango.Owner) *vdom.VNode {
	r := RouterContext.Use(owner)
	href := l.resolve()

	args := make([]any, 0, len(l.args)+4)
	args = append(args, vdom.Href(href), vdom.OnClick(func(e *vdom.Event) {
		l.activate(r, e)
	}))

	rest := l.args
	if l.active && r != nil {
		wasActive := isActive(r.CurrentPath(), href, l.exact)
		owner.OnCleanup(r.source.Subscribe(func() {
			next := l.resolve()
			if next != href || isActive(r.CurrentPath(), next, l.exact) != wasActive {
				owner.Invalidate()
			}
		}))
		if wasActive {
			rest = withClass(rest, l.activeClass)
			args = append(args, vdom.AriaCurrent("page"))
		}
	}

	args = append(args, rest...)
	return vdom.A(args...)
}

// withClass adds class to the class attribute in args, or appends one.
func withClass(args []any, class string) []any {
	out := make([]any, 0, len(args)+1)
	merged := false
	for _, arg := range args {
		if a, ok := arg.(vdom.Attr); ok && a.Key == "class" && !merged {
			if existing, _ := a.Value.(string); existing != "" {
				a.Value = existing + " " + class
			} else {
				a.Value = class
			}
			merged = true
			arg = a
		}
		out = append(out, arg)
	}
	if !merged {
		out = append(out, vdom.Class(class))
	}
	return out
}

func (l *linkComponent) activate(r *Router, e *vdom.Event) {
	switch d := l.delegate.(type) {
	case func(*vdom.Event):
		d(e)
		return
	case func():
		d()
		return
	}

	e.PreventDefault()
	if r == nil {
		panic(rerrors.New("R001").Wrap(ErrNoRouter))
	}

	target := l.resolve()
	if target == "" {
		r.logger.Warn("link activated with empty href")
		return
	}
	r.Navigate(target)
}

// isActive compares paths on whole segments.
func isActive(current, href string, exact bool) bool {
	href, _, _ = strings.Cut(href, "?")
	if exact {
		return routepath.Trim(current) == routepath.Trim(href)
	}
	_, ok := routepath.StripPrefix(current, href)
	return ok
}
