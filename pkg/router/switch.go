package router

import (
	"log/slog"
	"time"

	"github.com/vango-dev/vroute/pkg/match"
	"github.com/vango-dev/vroute/pkg/routepath"
	"github.com/vango-dev/vroute/pkg/vango"
	"github.com/vango-dev/vroute/pkg/vdom"
)

// SwitchArg is an argument to Switch: a *RouteDecl or an option.
type SwitchArg interface {
	applySwitch(*switchConfig)
}

type switchConfig struct {
	routes   []*RouteDecl
	onChange func(*RouteRecord)
}

type switchOption func(*switchConfig)

func (f switchOption) applySwitch(c *switchConfig) { f(c) }

// OnChange registers fn to be called with every record the Switch
// publishes for a match. It is not called when nothing matches.
func OnChange(fn func(*RouteRecord)) SwitchArg {
	return switchOption(func(c *switchConfig) {
		c.onChange = fn
	})
}

type switchComponent struct {
	routes   []*RouteDecl
	matcher  *match.Matcher
	onChange func(*RouteRecord)
}

// Switch declares a set of sibling routes. The declaration list is fixed
// at construction; a malformed pattern panics here with an R002 error.
//
// While mounted the Switch owns one active route cell, recomputed on mount
// and on every navigation, and exposes it to its descendants through
// ParentRouteContext. It renders every declared Route; each Route decides
// for itself whether it is visible.
func Switch(args ...SwitchArg) *vdom.VNode {
	var cfg switchConfig
	for _, arg := range args {
		if arg != nil {
			arg.applySwitch(&cfg)
		}
	}

	decls := make([]match.Declaration, len(cfg.routes))
	for i, r := range cfg.routes {
		decls[i] = match.Declaration{Path: r.path, Exact: r.exact, Payload: r}
	}
	m, err := match.NewMatcher(decls)
	if err != nil {
		panic(err)
	}

	return vdom.Comp(&switchComponent{
		routes:   cfg.routes,
		matcher:  m,
		onChange: cfg.onChange,
	})
}

func (s *switchComponent) Render(owner *vango.Owner) *vdom.VNode {
	parentCell, nested := ParentRouteContext.Lookup(owner)
	r := RouterContext.Use(owner)

	cell := vango.NewNamedSignal[*RouteRecord]("active", nil)
	ParentRouteContext.Provide(owner, cell)

	logger := slog.Default()
	if r != nil {
		logger = r.logger
	}
	for _, dup := range s.matcher.Duplicates() {
		logger.Warn("duplicate route pattern, only the first declaration can match", "pattern", dup)
	}

	if r != nil {
		update := func() {
			if owner.IsDisposed() {
				return
			}
			var parent *RouteRecord
			if parentCell != nil {
				parent = parentCell.Get()
			}
			rec := s.evaluate(r, parent, nested)
			cell.Set(rec)
			if rec != nil && s.onChange != nil {
				s.onChange(rec)
			}
		}

		update()
		owner.OnCleanup(r.source.Subscribe(update))
		owner.OnCleanup(func() { cell.Set(nil) })
	} else {
		var parent *RouteRecord
		if parentCell != nil {
			parent = parentCell.Get()
		}
		if !nested || parent != nil {
			cell.Set(s.index(parent))
		}
	}

	children := make([]any, len(s.routes))
	for i, route := range s.routes {
		children[i] = vdom.Comp(route)
	}
	return vdom.Fragment(children...)
}

// index resolves a Switch with no router: only an index declaration
// matches, as if the remaining path were empty.
func (s *switchComponent) index(parent *RouteRecord) *RouteRecord {
	res := s.matcher.Match("")
	if res == nil {
		return nil
	}
	decl := res.Declaration.Payload.(*RouteDecl)
	rec := &RouteRecord{
		Pathname: decl.path,
		Params:   res.Params,
		Parent:   parent,
		decl:     decl,
	}
	if parent != nil {
		rec.Realpath = parent.Realpath
	}
	return rec
}

// evaluate matches the path left over by the enclosing Switch.
func (s *switchComponent) evaluate(r *Router, parent *RouteRecord, nested bool) *RouteRecord {
	start := time.Now()
	full := routepath.Trim(r.source.CurrentPath())

	remaining := full
	ok := true
	if nested {
		if parent == nil {
			ok = false
		} else {
			remaining, ok = routepath.StripPrefix(full, parent.Realpath)
		}
	}

	var rec *RouteRecord
	if ok {
		if res := s.matcher.Match(remaining); res != nil {
			decl := res.Declaration.Payload.(*RouteDecl)
			rec = &RouteRecord{
				Pathname: decl.path,
				Realpath: routepath.Consumed(full, res.Remaining),
				Params:   res.Params,
				Parent:   parent,
				decl:     decl,
			}
		}
	}

	ev := SwitchEvent{
		Depth:    parent.Depth() + 1,
		Path:     remaining,
		Matched:  rec != nil,
		Start:    start,
		Duration: time.Since(start),
	}
	if rec != nil {
		ev.Pattern = rec.Pathname
	}
	r.logger.Debug("switch evaluated", "path", remaining, "pattern", ev.Pattern, "matched", ev.Matched, "depth", ev.Depth)
	r.observe(ev)

	return rec
}
