package vdom

import "github.com/vango-dev/vroute/pkg/vango"

// When maps the value of cell to a key and renders the view for that key.
// The view is re-evaluated only when the derived key changes; any other
// change to cell leaves the mounted subtree alone.
//
// Example:
//
//	vdom.When(active, func(r *Record) string { return r.Path },
//	    func(path string) *vdom.VNode {
//	        if path == "about" {
//	            return About()
//	        }
//	        return nil
//	    })
func When[T any, K comparable](cell *vango.Signal[T], key func(T) K, view func(K) *VNode) *VNode {
	return Comp(&when[T, K]{cell: cell, key: key, view: view})
}

type when[T any, K comparable] struct {
	cell *vango.Signal[T]
	key  func(T) K
	view func(K) *VNode
}

func (w *when[T, K]) Render(owner *vango.Owner) *VNode {
	if w.cell == nil {
		var zero T
		return w.view(w.key(zero))
	}

	current := w.key(w.cell.Get())
	l := vango.NewListenerFunc(func() {
		if owner.IsDisposed() {
			return
		}
		if w.key(w.cell.Get()) != current {
			owner.Invalidate()
		}
	})
	w.cell.Track(owner, l)

	return w.view(current)
}
