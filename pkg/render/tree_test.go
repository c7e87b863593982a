package render

import (
	"testing"

	"github.com/vango-dev/vroute/pkg/vango"
	"github.com/vango-dev/vroute/pkg/vdom"
)

func TestMountRendersTree(t *testing.T) {
	app := vdom.Static(func() *vdom.VNode {
		return vdom.Div(vdom.ID("app"), vdom.H1("Title"), vdom.P("Body"))
	})

	tree := Mount(app)
	defer tree.Unmount()

	html, err := tree.HTML()
	if err != nil {
		t.Fatalf("HTML() error: %v", err)
	}
	if html != `<div id="app"><h1>Title</h1><p>Body</p></div>` {
		t.Errorf("HTML() = %q", html)
	}
	if tree.Text() != "TitleBody" {
		t.Errorf("Text() = %q", tree.Text())
	}
}

func TestInvalidateRerendersOnlyThatComponent(t *testing.T) {
	count := vango.NewSignal(0)
	var outerRenders, innerRenders int

	inner := vdom.Func(func(owner *vango.Owner) *vdom.VNode {
		innerRenders++
		n := count.Track(owner, vango.NewListenerFunc(owner.Invalidate))
		return vdom.Textf("count=%d", n)
	})
	outer := vdom.Func(func(owner *vango.Owner) *vdom.VNode {
		outerRenders++
		return vdom.Div(vdom.Comp(inner))
	})

	tree := Mount(outer)
	defer tree.Unmount()

	count.Set(1)
	count.Set(2)

	if tree.Text() != "count=2" {
		t.Errorf("Text() = %q, want count=2", tree.Text())
	}
	if outerRenders != 1 {
		t.Errorf("outer rendered %d times, want 1", outerRenders)
	}
	if innerRenders != 3 {
		t.Errorf("inner rendered %d times, want 3", innerRenders)
	}
	if tree.Renders() != 4 {
		t.Errorf("Renders() = %d, want 4", tree.Renders())
	}
	if count.Subscribers() != 1 {
		t.Errorf("Subscribers() = %d, want 1 (old scopes released)", count.Subscribers())
	}
}

func TestRerenderRunsCleanups(t *testing.T) {
	toggle := vango.NewSignal(true)
	var mounts, unmounts int

	child := vdom.Func(func(owner *vango.Owner) *vdom.VNode {
		mounts++
		owner.OnCleanup(func() { unmounts++ })
		return vdom.Span("child")
	})
	app := vdom.Func(func(owner *vango.Owner) *vdom.VNode {
		if toggle.Track(owner, vango.NewListenerFunc(owner.Invalidate)) {
			return vdom.Comp(child)
		}
		return nil
	})

	tree := Mount(app)
	toggle.Set(false)

	if mounts != 1 || unmounts != 1 {
		t.Errorf("mounts=%d unmounts=%d, want 1/1", mounts, unmounts)
	}
	if tree.Text() != "" {
		t.Errorf("Text() = %q, want empty", tree.Text())
	}

	toggle.Set(true)
	tree.Unmount()
	if mounts != 2 || unmounts != 2 {
		t.Errorf("after unmount mounts=%d unmounts=%d, want 2/2", mounts, unmounts)
	}

	// Unmount is idempotent
	tree.Unmount()
}

func TestWithParentExposesContext(t *testing.T) {
	theme := vango.CreateContext("light")
	parent := vango.NewOwner(nil)
	theme.Provide(parent, "dark")

	tree := Mount(vdom.Func(func(owner *vango.Owner) *vdom.VNode {
		return vdom.Text(theme.Use(owner))
	}), WithParent(parent))
	defer tree.Unmount()

	if tree.Text() != "dark" {
		t.Errorf("Text() = %q, want dark", tree.Text())
	}
}

func TestFindDispatchesLiveHandlers(t *testing.T) {
	clicks := 0
	tree := Mount(vdom.Static(func() *vdom.VNode {
		return vdom.Nav(
			vdom.A(vdom.Href("/a"), "A"),
			vdom.A(vdom.Href("/b"), vdom.OnClick(func() { clicks++ }), "B"),
		)
	}))
	defer tree.Unmount()

	link := tree.Find(ByProp("href", "/b"))
	if link == nil {
		t.Fatal("Find() = nil")
	}
	if ok, err := vdom.Dispatch(link, vdom.NewEvent("click")); !ok || err != nil {
		t.Fatalf("Dispatch() = %v, %v", ok, err)
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}

	if got := len(tree.FindAll(ByTag("a"))); got != 2 {
		t.Errorf("FindAll(a) = %d, want 2", got)
	}
	if tree.Find(ByTag("table")) != nil {
		t.Error("Find(table) should be nil")
	}
}
