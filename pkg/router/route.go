package router

import (
	"fmt"

	"github.com/vango-dev/vroute/pkg/routepath"
	"github.com/vango-dev/vroute/pkg/vango"
	"github.com/vango-dev/vroute/pkg/vdom"
)

// RouteDecl is a route declaration: a path pattern and the content to
// render while it is active. It is both a Switch argument and the
// component the Switch renders for it.
type RouteDecl struct {
	path    string
	exact   bool
	payload vdom.Component
}

// Route declares a route. The payload may be a vdom.Component, a
// *vdom.VNode, a func() *vdom.VNode or a func(*vango.Owner) *vdom.VNode.
// Function payloads are only called while the route is active. A nil
// payload declares nothing and is skipped by Switch.
func Route(path string, payload any) *RouteDecl {
	return &RouteDecl{path: path, payload: toComponent(payload)}
}

// Exact marks the declaration as matching only when it consumes the whole
// remaining path.
func (r *RouteDecl) Exact() *RouteDecl {
	r.exact = true
	return r
}

// Path returns the declared pattern.
func (r *RouteDecl) Path() string {
	return r.path
}

// IsExact reports whether the declaration is exact.
func (r *RouteDecl) IsExact() bool {
	return r.exact
}

func (r *RouteDecl) applySwitch(c *switchConfig) {
	if r.payload != nil {
		c.routes = append(c.routes, r)
	}
}

// Render implements vdom.Component. Inside a Switch the payload is shown
// while this declaration is the Switch's active route. Outside any Switch
// only the index route ("") renders.
func (r *RouteDecl) Render(owner *vango.Owner) *vdom.VNode {
	cell, ok := ParentRouteContext.Lookup(owner)
	if !ok || cell == nil {
		if routepath.Trim(r.path) == "" {
			return vdom.Comp(r.payload)
		}
		return nil
	}

	return vdom.When(cell,
		func(rec *RouteRecord) bool { return rec != nil && rec.decl == r },
		func(active bool) *vdom.VNode {
			if !active {
				return nil
			}
			return vdom.Comp(r.payload)
		})
}

func toComponent(payload any) vdom.Component {
	switch p := payload.(type) {
	case nil:
		return nil
	case vdom.Component:
		return p
	case *vdom.VNode:
		if p == nil {
			return nil
		}
		return vdom.Static(func() *vdom.VNode { return p })
	case func() *vdom.VNode:
		return vdom.Static(p)
	case func(*vango.Owner) *vdom.VNode:
		return vdom.Func(p)
	default:
		panic(fmt.Sprintf("router: unsupported route payload %T", payload))
	}
}
