package history

import "sync"

// Entry is one item of a MemoryHistory stack.
type Entry struct {
	State    State
	Title    string
	Location Location
}

// MemoryHistory is an in-memory History. Back, Forward and Go move through
// the stack and fire popstate listeners the way a browser does.
type MemoryHistory struct {
	mu      sync.RWMutex
	entries []Entry
	index   int

	popstate listenerSet
}

// NewMemoryHistory creates a history with a single entry at initial.
func NewMemoryHistory(initial string) *MemoryHistory {
	return &MemoryHistory{
		entries: []Entry{{Location: ParseLocation(initial)}},
	}
}

// PushState implements History. Entries after the current one are dropped.
func (h *MemoryHistory) PushState(state State, title, path string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry := Entry{
		State:    state.clone(),
		Title:    title,
		Location: resolve(h.entries[h.index].Location, path),
	}
	h.entries = append(h.entries[:h.index+1], entry)
	h.index++
}

// ReplaceState implements History.
func (h *MemoryHistory) ReplaceState(state State, title, path string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries[h.index] = Entry{
		State:    state.clone(),
		Title:    title,
		Location: resolve(h.entries[h.index].Location, path),
	}
}

// Location implements History.
func (h *MemoryHistory) Location() Location {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.entries[h.index].Location
}

// OnPopState implements History.
func (h *MemoryHistory) OnPopState(fn func()) (remove func()) {
	return h.popstate.add(fn)
}

// Back moves one entry back. It reports false at the start of the stack.
func (h *MemoryHistory) Back() bool {
	return h.Go(-1)
}

// Forward moves one entry forward. It reports false at the end of the stack.
func (h *MemoryHistory) Forward() bool {
	return h.Go(1)
}

// Go moves delta entries and fires popstate. Out of range moves and a zero
// delta do nothing and report false.
func (h *MemoryHistory) Go(delta int) bool {
	h.mu.Lock()
	target := h.index + delta
	if delta == 0 || target < 0 || target >= len(h.entries) {
		h.mu.Unlock()
		return false
	}
	h.index = target
	h.mu.Unlock()

	h.popstate.fire()
	return true
}

// Current returns the current entry.
func (h *MemoryHistory) Current() Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	e := h.entries[h.index]
	e.State = e.State.clone()
	return e
}

// Entries returns a copy of the stack.
func (h *MemoryHistory) Entries() []Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Entry, len(h.entries))
	for i, e := range h.entries {
		e.State = e.State.clone()
		out[i] = e
	}
	return out
}

// Len returns the number of entries.
func (h *MemoryHistory) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Index returns the position of the current entry.
func (h *MemoryHistory) Index() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.index
}
