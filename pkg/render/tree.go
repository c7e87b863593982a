package render

import (
	"io"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/vango-dev/vroute/pkg/vango"
	"github.com/vango-dev/vroute/pkg/vdom"
)

// Tree is a mounted component tree.
//
// Re-renders run synchronously on the goroutine that invalidated the
// component. A Tree must not be read while another goroutine is driving
// changes into it.
type Tree struct {
	root    *mounted
	scope   *vango.Owner
	parent  *vango.Owner
	logger  *slog.Logger
	renders atomic.Uint64
}

// mounted is the live counterpart of a VNode.
type mounted struct {
	vnode *vdom.VNode

	// scope is the owner the node was mounted under.
	scope *vango.Owner

	// owner is the component's own scope; nil for non-component nodes.
	owner *vango.Owner

	// children are the mounted children of an element or fragment, or the
	// single mounted output of a component.
	children []*mounted
}

// Option configures a Tree.
type Option func(*Tree)

// WithLogger sets the logger used for re-render diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tree) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithParent mounts the tree under an existing scope, so context values
// provided on parent are visible to every component in the tree.
func WithParent(parent *vango.Owner) Option {
	return func(t *Tree) {
		t.parent = parent
	}
}

// Mount renders c and mounts the result.
func Mount(c vdom.Component, opts ...Option) *Tree {
	t := &Tree{logger: slog.Default()}
	for _, opt := range opts {
		opt(t)
	}
	t.scope = vango.NewOwner(t.parent)
	t.root = t.mount(vdom.Comp(c), t.scope)
	return t
}

func (t *Tree) mount(v *vdom.VNode, scope *vango.Owner) *mounted {
	if v == nil {
		return nil
	}

	m := &mounted{vnode: v, scope: scope}
	switch v.Kind {
	case vdom.KindComponent:
		t.renderComponent(m)
	case vdom.KindElement, vdom.KindFragment:
		for _, child := range v.Children {
			if c := t.mount(child, scope); c != nil {
				m.children = append(m.children, c)
			}
		}
	}
	return m
}

func (t *Tree) renderComponent(m *mounted) {
	if m.vnode.Comp == nil {
		return
	}

	owner := vango.NewOwner(m.scope)
	m.owner = owner
	owner.SetListener(vango.NewListenerFunc(func() {
		t.rerender(m, owner)
	}))

	t.renders.Add(1)
	out := m.vnode.Comp.Render(owner)

	m.children = nil
	if c := t.mount(out, owner); c != nil {
		m.children = []*mounted{c}
	}
}

// rerender replaces the subtree of m. Stale invalidations from an owner
// that has already been replaced are ignored.
func (t *Tree) rerender(m *mounted, owner *vango.Owner) {
	if owner.IsDisposed() || m.owner != owner {
		return
	}
	owner.Dispose()
	t.logger.Debug("component re-rendered", "owner", owner.ID())
	t.renderComponent(m)
}

// Renders returns how many times any component in the tree has rendered.
func (t *Tree) Renders() uint64 {
	return t.renders.Load()
}

// Scope returns the root scope of the tree.
func (t *Tree) Scope() *vango.Owner {
	return t.scope
}

// Unmount disposes every scope in the tree. Safe to call more than once.
func (t *Tree) Unmount() {
	if t.scope == nil {
		return
	}
	t.scope.Dispose()
	t.scope = nil
	t.root = nil
}

// Resolve returns the current output of the tree with all components
// expanded. The returned nodes share props with the mounted nodes, so
// event handlers found on them are live.
func (t *Tree) Resolve() *vdom.VNode {
	return resolve(t.root)
}

func resolve(m *mounted) *vdom.VNode {
	if m == nil {
		return nil
	}

	switch m.vnode.Kind {
	case vdom.KindText:
		return m.vnode
	case vdom.KindComponent:
		if len(m.children) == 0 {
			return nil
		}
		return resolve(m.children[0])
	default:
		out := *m.vnode
		out.Children = make([]*vdom.VNode, 0, len(m.children))
		for _, c := range m.children {
			if r := resolve(c); r != nil {
				out.Children = append(out.Children, r)
			}
		}
		return &out
	}
}

// HTML renders the current state of the tree.
func (t *Tree) HTML() (string, error) {
	return NewRenderer(RendererConfig{}).RenderToString(t.Resolve())
}

// WriteHTML streams the current state of the tree to w.
func (t *Tree) WriteHTML(w io.Writer, config RendererConfig) error {
	return NewRenderer(config).RenderToWriter(w, t.Resolve())
}

// Text returns the concatenated text content of the tree.
func (t *Tree) Text() string {
	var sb strings.Builder
	vdom.Walk(t.Resolve(), func(n *vdom.VNode) bool {
		if n.Kind == vdom.KindText {
			sb.WriteString(n.Text)
		}
		return true
	})
	return sb.String()
}

// Find returns the first mounted element, in document order, for which
// pred reports true.
func (t *Tree) Find(pred func(*vdom.VNode) bool) *vdom.VNode {
	var found *vdom.VNode
	vdom.Walk(t.Resolve(), func(n *vdom.VNode) bool {
		if found != nil {
			return false
		}
		if n.Kind == vdom.KindElement && pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every mounted element for which pred reports true.
func (t *Tree) FindAll(pred func(*vdom.VNode) bool) []*vdom.VNode {
	var out []*vdom.VNode
	vdom.Walk(t.Resolve(), func(n *vdom.VNode) bool {
		if n.Kind == vdom.KindElement && pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// ByTag matches elements by tag name.
func ByTag(tag string) func(*vdom.VNode) bool {
	return func(n *vdom.VNode) bool { return n.Tag == tag }
}

// ByProp matches elements whose prop key has the given value.
func ByProp(key string, value any) func(*vdom.VNode) bool {
	return func(n *vdom.VNode) bool {
		v, ok := n.Props[key]
		if !ok {
			return false
		}
		return attrToString(v) == attrToString(value)
	}
}
