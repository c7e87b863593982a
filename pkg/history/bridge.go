package history

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	rerrors "github.com/vango-dev/vroute/internal/errors"
	"github.com/vango-dev/vroute/pkg/routepath"
)

// Bridge message operations.
const (
	OpPush    = "push"
	OpReplace = "replace"
	OpPop     = "pop"
	OpRender  = "render"
)

// Message is a frame exchanged with the remote page.
type Message struct {
	Op    string `json:"op"`
	Path  string `json:"path,omitempty"`
	Title string `json:"title,omitempty"`
	State State  `json:"state,omitempty"`
	HTML  string `json:"html,omitempty"`
}

// Bridge is a History whose platform is a remote page connected over a
// websocket. Pushes are sent to the page as push frames; pop frames from
// the page move the location and fire popstate.
type Bridge struct {
	conn   *websocket.Conn
	logger *slog.Logger

	writeMu sync.Mutex

	mu       sync.RWMutex
	location Location
	state    State

	popstate  listenerSet
	closeOnce sync.Once
}

// NewBridge wraps an established connection. The remote page starts at
// initial.
func NewBridge(conn *websocket.Conn, initial string, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bridge{
		conn:     conn,
		logger:   logger,
		location: ParseLocation(initial),
	}
}

// Upgrader accepts websocket connections as bridges.
type Upgrader struct {
	websocket.Upgrader

	// Logger is handed to every bridge. Defaults to slog.Default().
	Logger *slog.Logger
}

// Upgrade upgrades the request. The initial location is taken from the
// "path" query parameter and defaults to "/".
func (u *Upgrader) Upgrade(w http.ResponseWriter, r *http.Request) (*Bridge, error) {
	initial := "/"
	if p := r.URL.Query().Get("path"); p != "" {
		target, err := routepath.ValidateTarget(p)
		if err != nil {
			http.Error(w, "invalid path", http.StatusBadRequest)
			return nil, rerrors.New("R004").WithSubject(p).Wrap(err)
		}
		initial = target
	}

	conn, err := u.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, err
	}
	return NewBridge(conn, initial, u.Logger), nil
}

// PushState implements History.
func (b *Bridge) PushState(state State, title, path string) {
	b.apply(OpPush, state, title, path)
}

// ReplaceState implements History.
func (b *Bridge) ReplaceState(state State, title, path string) {
	b.apply(OpReplace, state, title, path)
}

func (b *Bridge) apply(op string, state State, title, path string) {
	b.mu.Lock()
	b.location = resolve(b.location, path)
	b.state = state.clone()
	loc := b.location
	b.mu.Unlock()

	if err := b.Send(Message{Op: op, Path: loc.String(), Title: title, State: state}); err != nil {
		b.logger.Warn("bridge send failed", "op", op, "error", err)
	}
}

// Location implements History.
func (b *Bridge) Location() Location {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.location
}

// State returns the state of the current entry.
func (b *Bridge) State() State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state.clone()
}

// OnPopState implements History.
func (b *Bridge) OnPopState(fn func()) (remove func()) {
	return b.popstate.add(fn)
}

// Send writes a frame to the remote page.
func (b *Bridge) Send(msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	b.writeMu.Lock()
	defer b.writeMu.Unlock()
	return b.conn.WriteMessage(websocket.TextMessage, data)
}

// Run reads frames until the connection closes or ctx is done. Malformed
// frames and pop frames with an invalid path are logged and dropped.
func (b *Bridge) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			b.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := b.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) {
				return nil
			}
			return err
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			b.logger.Warn("bridge frame dropped", "error", err)
			continue
		}
		b.handle(msg)
	}
}

func (b *Bridge) handle(msg Message) {
	if msg.Op != OpPop {
		b.logger.Warn("bridge frame dropped", "op", msg.Op)
		return
	}

	target, err := routepath.ValidateTarget(msg.Path)
	if err != nil {
		b.logger.Warn("bridge pop dropped", "path", msg.Path, "error", err)
		return
	}

	b.mu.Lock()
	b.location = ParseLocation(target)
	b.state = msg.State.clone()
	b.mu.Unlock()

	b.popstate.fire()
}

// Close closes the connection. Safe to call more than once.
func (b *Bridge) Close() error {
	var err error
	b.closeOnce.Do(func() {
		b.writeMu.Lock()
		b.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		b.writeMu.Unlock()
		err = b.conn.Close()
	})
	return err
}
