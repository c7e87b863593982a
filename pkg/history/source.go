package history

import (
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	rerrors "github.com/vango-dev/vroute/internal/errors"
)

// ErrNoHistory is returned by New when no History is supplied.
var ErrNoHistory = errors.New("history: no platform history")

// Reserved state keys set on every pushed entry.
const (
	StateTime = "t"
	StateKey  = "key"
)

// EventKind says what caused a navigation event.
type EventKind uint8

const (
	// EventPush is a PushState or Navigate on the source.
	EventPush EventKind = iota
	// EventReplace is a ReplaceState on the source.
	EventReplace
	// EventPop is a popstate from the platform (back, forward).
	EventPop
)

func (k EventKind) String() string {
	switch k {
	case EventPush:
		return "push"
	case EventReplace:
		return "replace"
	case EventPop:
		return "pop"
	default:
		return "unknown"
	}
}

// Event describes one dispatched navigation.
type Event struct {
	Kind     EventKind
	Location Location

	// Subscribers is the number of handlers invoked.
	Subscribers int

	// Start and Duration cover the notification pass.
	Start    time.Time
	Duration time.Duration
}

// Observer is told about every dispatched navigation.
type Observer interface {
	ObserveNavigation(ev Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev Event)

// ObserveNavigation implements Observer.
func (f ObserverFunc) ObserveNavigation(ev Event) { f(ev) }

// Option configures a Source.
type Option func(*Source)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithObserver adds an observer. May be given more than once.
func WithObserver(o Observer) Option {
	return func(s *Source) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// WithClock sets the time source used for state tagging and events.
func WithClock(now func() time.Time) Option {
	return func(s *Source) {
		if now != nil {
			s.now = now
		}
	}
}

// WithKeyFunc sets the generator of per-entry keys. Defaults to random UUIDs.
func WithKeyFunc(fn func() string) Option {
	return func(s *Source) {
		if fn != nil {
			s.newKey = fn
		}
	}
}

// NavigateOptions configures a single navigation.
type NavigateOptions struct {
	// Replace overwrites the current entry instead of pushing.
	Replace bool

	// State is merged into the entry state.
	State State

	// Params are query parameters added to the target.
	Params map[string]string
}

// NavigateOption is a functional option for Navigate.
type NavigateOption func(*NavigateOptions)

// WithReplace replaces the current entry instead of pushing a new one.
func WithReplace() NavigateOption {
	return func(o *NavigateOptions) {
		o.Replace = true
	}
}

// WithState stores state with the new entry.
func WithState(state State) NavigateOption {
	return func(o *NavigateOptions) {
		o.State = state
	}
}

// WithParams adds query parameters to the navigation target.
func WithParams(params map[string]string) NavigateOption {
	return func(o *NavigateOptions) {
		o.Params = params
	}
}

// Source normalizes a History into a single stream of navigation events.
//
// Dispatch is serialized: a navigation requested while subscribers are
// being notified, from a handler or from another goroutine, is queued and
// applied by the dispatching caller once the current pass completes, so
// every pass sees one consistent location.
type Source struct {
	history   History
	logger    *slog.Logger
	observers []Observer
	now       func() time.Time
	newKey    func() string

	subscribers listenerSet
	removePop   func()

	mu          sync.Mutex
	dispatching bool
	queue       []func() EventKind
	closed      bool
}

// New creates a Source over h. A nil h is a fatal precondition failure and
// returns an R003 error matching ErrNoHistory.
func New(h History, opts ...Option) (*Source, error) {
	if h == nil {
		return nil, rerrors.New("R003").Wrap(ErrNoHistory)
	}

	s := &Source{
		history: h,
		logger:  slog.Default(),
		now:     time.Now,
		newKey:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}

	s.removePop = h.OnPopState(func() {
		s.dispatch(func() EventKind { return EventPop })
	})
	return s, nil
}

// History returns the underlying platform history.
func (s *Source) History() History {
	return s.history
}

// Location returns the current location.
func (s *Source) Location() Location {
	return s.history.Location()
}

// CurrentPath returns the current pathname with a leading slash.
func (s *Source) CurrentPath() string {
	p := s.history.Location().Pathname
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// CurrentQuery parses the current search string. See ParseQuery.
func (s *Source) CurrentQuery() map[string]string {
	return ParseQuery(s.history.Location().Search)
}

// Navigate pushes path and notifies subscribers.
func (s *Source) Navigate(path string, opts ...NavigateOption) {
	var o NavigateOptions
	for _, opt := range opts {
		opt(&o)
	}
	path = AppendQuery(path, o.Params)

	if o.Replace {
		s.ReplaceState(o.State, "", path)
		return
	}
	s.PushState(o.State, "", path)
}

// PushState pushes a new entry tagged with the current time and a unique
// key, then notifies subscribers.
func (s *Source) PushState(state State, title, path string) {
	s.dispatch(func() EventKind {
		s.history.PushState(s.tag(state), title, path)
		return EventPush
	})
}

// ReplaceState replaces the current entry, then notifies subscribers.
func (s *Source) ReplaceState(state State, title, path string) {
	s.dispatch(func() EventKind {
		s.history.ReplaceState(s.tag(state), title, path)
		return EventReplace
	})
}

func (s *Source) tag(state State) State {
	out := make(State, len(state)+2)
	for k, v := range state {
		out[k] = v
	}
	out[StateTime] = s.now().UnixMilli()
	out[StateKey] = s.newKey()
	return out
}

// Subscribe registers fn for navigation events. Handlers run in
// registration order. The returned function unsubscribes; a handler
// unsubscribed during a pass is not invoked for the rest of that pass.
func (s *Source) Subscribe(fn func()) (unsubscribe func()) {
	return s.subscribers.add(fn)
}

// Subscribers returns the number of registered handlers.
func (s *Source) Subscribers() int {
	return s.subscribers.len()
}

// Close detaches the source from the platform popstate event. Subsequent
// navigations are ignored. Close is idempotent.
func (s *Source) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.queue = nil
	s.mu.Unlock()

	s.removePop()
	return nil
}

// dispatch runs op then notifies subscribers, trampolining nested requests.
func (s *Source) dispatch(op func() EventKind) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.logger.Debug("navigation on closed source ignored")
		return
	}
	if s.dispatching {
		s.queue = append(s.queue, op)
		s.mu.Unlock()
		return
	}
	s.dispatching = true
	s.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			s.mu.Lock()
			s.dispatching = false
			s.queue = nil
			s.mu.Unlock()
			panic(r)
		}
	}()

	for op != nil {
		s.run(op)

		s.mu.Lock()
		op = nil
		if len(s.queue) > 0 && !s.closed {
			op = s.queue[0]
			s.queue = s.queue[1:]
		}
		if op == nil {
			s.queue = nil
			s.dispatching = false
		}
		s.mu.Unlock()
	}
}

func (s *Source) run(op func() EventKind) {
	kind := op()
	start := s.now()
	loc := s.history.Location()

	s.logger.Debug("navigation", "kind", kind.String(), "path", loc.String())
	n := s.subscribers.fire()

	ev := Event{
		Kind:        kind,
		Location:    loc,
		Subscribers: n,
		Start:       start,
		Duration:    s.now().Sub(start),
	}
	for _, o := range s.observers {
		o.ObserveNavigation(ev)
	}
}
