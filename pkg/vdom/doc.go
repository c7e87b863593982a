// Package vdom defines the virtual node tree that components render to.
//
// Elements are built with variadic helpers that accept attributes, event
// handlers, child nodes, components, and plain strings in any order:
//
//	vdom.Div(vdom.Class("nav"),
//	    vdom.A(vdom.Href("/about"), vdom.OnClick(handler), "About"),
//	)
//
// A Component renders under an explicit *vango.Owner, which is how scoped
// context and unmount hooks reach it. When is the keyed view selector used
// by conditional content: it re-renders only when its derived key changes.
package vdom
