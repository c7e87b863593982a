package vdom

import (
	"testing"

	"github.com/vango-dev/vroute/pkg/vango"
)

func TestCreateElementMixedArgs(t *testing.T) {
	handler := func() {}
	comp := Static(func() *VNode { return Text("c") })

	node := A(
		Href("/about"),
		Class("nav", "link"),
		OnClick(handler),
		nil,
		"About",
		Span("icon"),
		[]*VNode{Text("x"), nil},
		comp,
	)

	if node.Tag != "a" || node.Kind != KindElement {
		t.Fatalf("node = %v/%q, want element a", node.Kind, node.Tag)
	}
	if node.Props["href"] != "/about" {
		t.Errorf("href = %v, want /about", node.Props["href"])
	}
	if node.Props["class"] != "nav link" {
		t.Errorf("class = %v, want %q", node.Props["class"], "nav link")
	}
	if !node.IsInteractive() {
		t.Error("node with onclick should be interactive")
	}
	if len(node.Children) != 4 {
		t.Fatalf("len(Children) = %d, want 4", len(node.Children))
	}
	if node.Children[0].Kind != KindText || node.Children[0].Text != "About" {
		t.Errorf("first child = %+v, want text About", node.Children[0])
	}
	if node.Children[3].Kind != KindComponent {
		t.Errorf("last child kind = %v, want Component", node.Children[3].Kind)
	}
}

func TestKeyAttr(t *testing.T) {
	node := Li(Key("home"), "Home")
	if node.Key != "home" {
		t.Errorf("Key = %q, want home", node.Key)
	}
	if _, ok := node.Props["key"]; ok {
		t.Error("key should not be stored as a prop")
	}
}

func TestFragment(t *testing.T) {
	f := Fragment("a", nil, Text("b"), []*VNode{Text("c")})
	if f.Kind != KindFragment {
		t.Fatalf("Kind = %v, want Fragment", f.Kind)
	}
	if len(f.Children) != 3 {
		t.Errorf("len(Children) = %d, want 3", len(f.Children))
	}
}

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{VKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("VKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestWalkStopsEarly(t *testing.T) {
	tree := Div(Ul(Li("a"), Li("b")), P("c"))
	visited := 0
	Walk(tree, func(n *VNode) bool {
		visited++
		return n.Tag != "ul"
	})
	if visited != 2 {
		t.Errorf("visited = %d, want 2", visited)
	}
}

func TestFuncComponentReceivesOwner(t *testing.T) {
	owner := vango.NewOwner(nil)
	var got *vango.Owner
	c := Func(func(o *vango.Owner) *VNode {
		got = o
		return nil
	})
	c.Render(owner)
	if got != owner {
		t.Error("Func component should receive the owner it is rendered under")
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("br") || IsVoidElement("div") {
		t.Error("IsVoidElement mismatch")
	}
}
