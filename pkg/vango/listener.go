package vango

// Listener is anything that can be notified when a dependency changes.
// Components and view selectors implement it.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies has changed.
	// For mounted components, this re-renders the component's subtree.
	MarkDirty()

	// ID returns a unique identifier for this listener.
	// Used to deduplicate subscriptions.
	ID() uint64
}

// ListenerFunc adapts a plain callback to the Listener interface.
type ListenerFunc struct {
	id uint64
	fn func()
}

// NewListenerFunc wraps fn with a fresh listener ID.
func NewListenerFunc(fn func()) *ListenerFunc {
	return &ListenerFunc{id: nextID(), fn: fn}
}

// MarkDirty implements Listener.
func (l *ListenerFunc) MarkDirty() {
	if l.fn != nil {
		l.fn()
	}
}

// ID implements Listener.
func (l *ListenerFunc) ID() uint64 {
	return l.id
}
