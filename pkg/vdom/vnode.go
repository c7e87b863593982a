package vdom

import (
	"strings"

	"github.com/vango-dev/vroute/pkg/vango"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <a>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // Attributes and event handlers
	Children []*VNode  // Child nodes
	Key      string    // Reconciliation key
	Text     string    // For KindText
	Comp     Component // For KindComponent
}

// Props holds attributes and event handlers.
type Props map[string]any

// IsInteractive returns true if this node has event handlers.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if strings.HasPrefix(key, "on") {
			return true
		}
	}
	return false
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // func() or func(*Event)
}

// Component is anything that can render to a VNode under an owner scope.
type Component interface {
	Render(owner *vango.Owner) *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func(owner *vango.Owner) *VNode
}

// Render implements Component.
func (f *FuncComponent) Render(owner *vango.Owner) *VNode {
	return f.render(owner)
}

// Func creates a component from a render function.
func Func(render func(owner *vango.Owner) *VNode) Component {
	return &FuncComponent{render: render}
}

// Static creates a component that always renders the result of fn.
// A fresh subtree is built on every mount.
func Static(fn func() *VNode) Component {
	return Func(func(*vango.Owner) *VNode { return fn() })
}

// Comp wraps a component in a KindComponent node.
func Comp(c Component) *VNode {
	if c == nil {
		return nil
	}
	return &VNode{Kind: KindComponent, Comp: c}
}
