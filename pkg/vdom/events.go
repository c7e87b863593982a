package vdom

import "fmt"

// Event is delivered to element event handlers.
type Event struct {
	// Type is the event name without the "on" prefix (e.g., "click").
	Type string

	// Target is the element the event was dispatched on.
	Target *VNode

	defaultPrevented bool
}

// NewEvent creates an event of the given type.
func NewEvent(typ string) *Event {
	return &Event{Type: typ}
}

// PreventDefault suppresses the platform's default action.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// OnClick handles click events.
func OnClick(handler any) EventHandler { return event("click", handler) }

// Dispatch invokes the handler registered on node for ev.Type.
// It reports whether a handler was found. Handlers may be func() or
// func(*Event); any other value is an error.
func Dispatch(node *VNode, ev *Event) (bool, error) {
	if node == nil || ev == nil {
		return false, nil
	}
	h, ok := node.Props["on"+ev.Type]
	if !ok || h == nil {
		return false, nil
	}
	if ev.Target == nil {
		ev.Target = node
	}
	switch fn := h.(type) {
	case func():
		fn()
	case func(*Event):
		fn(ev)
	default:
		return false, fmt.Errorf("vdom: unsupported handler type %T for on%s", h, ev.Type)
	}
	return true, nil
}
