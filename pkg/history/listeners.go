package history

import (
	"sync"
	"sync/atomic"
)

// listener is a registered callback. removed is checked at call time so a
// callback removed during a notification pass is not invoked afterwards.
type listener struct {
	fn      func()
	removed atomic.Bool
}

// listenerSet is an ordered set of callbacks.
type listenerSet struct {
	mu   sync.Mutex
	list []*listener
}

func (s *listenerSet) add(fn func()) (remove func()) {
	l := &listener{fn: fn}
	s.mu.Lock()
	s.list = append(s.list, l)
	s.mu.Unlock()

	return func() {
		if l.removed.Swap(true) {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, existing := range s.list {
			if existing == l {
				s.list = append(s.list[:i:i], s.list[i+1:]...)
				return
			}
		}
	}
}

// fire invokes every callback registered when fire was called, in
// registration order, skipping those removed in the meantime.
func (s *listenerSet) fire() int {
	s.mu.Lock()
	snapshot := append([]*listener(nil), s.list...)
	s.mu.Unlock()

	called := 0
	for _, l := range snapshot {
		if l.removed.Load() {
			continue
		}
		l.fn()
		called++
	}
	return called
}

func (s *listenerSet) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.list)
}
