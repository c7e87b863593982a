package router

import (
	"testing"

	"github.com/vango-dev/vroute/pkg/history"
	"github.com/vango-dev/vroute/pkg/render"
	"github.com/vango-dev/vroute/pkg/vango"
	"github.com/vango-dev/vroute/pkg/vdom"
)

// counter counts renders of a named view.
type counter map[string]int

func (c counter) view(name string) vdom.Component {
	return vdom.Static(func() *vdom.VNode {
		c[name]++
		return vdom.Text("[" + name + "]")
	})
}

// testApp mounts root under a shared router over a memory history that
// starts at initial.
type testApp struct {
	t       *testing.T
	history *history.MemoryHistory
	source  *history.Source
	router  *Router
	tree    *render.Tree
}

func mountApp(t *testing.T, initial string, children ...any) *testApp {
	t.Helper()

	h := history.NewMemoryHistory(initial)
	src, err := history.New(h)
	if err != nil {
		t.Fatalf("history.New() error: %v", err)
	}
	r := NewRouter(src)

	args := append([]any{r}, children...)
	app := BrowserRouter(args...)
	tree := render.Mount(vdom.Static(func() *vdom.VNode { return app }))

	a := &testApp{t: t, history: h, source: src, router: r, tree: tree}
	t.Cleanup(func() {
		tree.Unmount()
		src.Close()
	})
	return a
}

func (a *testApp) navigate(path string) {
	a.router.Navigate(path)
}

func (a *testApp) expectText(want string) {
	a.t.Helper()
	if got := a.tree.Text(); got != want {
		a.t.Errorf("at %s rendered %q, want %q", a.source.CurrentPath(), got, want)
	}
}

func (a *testApp) click(pred func(*vdom.VNode) bool) *vdom.Event {
	a.t.Helper()
	node := a.tree.Find(pred)
	if node == nil {
		a.t.Fatal("element not found")
	}
	ev := vdom.NewEvent("click")
	if _, err := vdom.Dispatch(node, ev); err != nil {
		a.t.Fatalf("Dispatch() error: %v", err)
	}
	return ev
}

// owned is a component that renders fn with its owner.
func owned(fn func(owner *vango.Owner) *vdom.VNode) vdom.Component {
	return vdom.Func(fn)
}
