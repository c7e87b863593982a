package vdom

import (
	"testing"

	"github.com/vango-dev/vroute/pkg/vango"
)

type dirtyCounter struct {
	id    uint64
	count int
}

func (d *dirtyCounter) MarkDirty() { d.count++ }
func (d *dirtyCounter) ID() uint64 { return d.id }

func TestWhenRendersSelectedView(t *testing.T) {
	cell := vango.NewSignal("home")
	node := When(cell, func(s string) string { return s }, func(k string) *VNode {
		return Text("view:" + k)
	})

	if node.Kind != KindComponent {
		t.Fatalf("When should produce a component node, got %v", node.Kind)
	}

	owner := vango.NewOwner(nil)
	out := node.Comp.Render(owner)
	if out.Text != "view:home" {
		t.Errorf("Render() = %q, want view:home", out.Text)
	}
}

func TestWhenInvalidatesOnlyOnKeyChange(t *testing.T) {
	type rec struct{ path, real string }
	cell := vango.NewSignal(&rec{path: "profile", real: "profile"})

	node := When(cell, func(r *rec) string { return r.path }, func(string) *VNode { return nil })

	owner := vango.NewOwner(nil)
	counter := &dirtyCounter{id: 1 << 40}
	owner.SetListener(counter)
	node.Comp.Render(owner)

	// Same key, new record: no invalidation
	cell.Set(&rec{path: "profile", real: "profile"})
	if counter.count != 0 {
		t.Errorf("invalidated %d times for unchanged key, want 0", counter.count)
	}

	cell.Set(&rec{path: "about", real: "about"})
	if counter.count != 1 {
		t.Errorf("invalidated %d times for changed key, want 1", counter.count)
	}

	owner.Dispose()
	if cell.Subscribers() != 0 {
		t.Errorf("Subscribers() after dispose = %d, want 0", cell.Subscribers())
	}
}

func TestWhenNilCell(t *testing.T) {
	node := When[*int](nil, func(p *int) bool { return p != nil }, func(ok bool) *VNode {
		if ok {
			return Text("set")
		}
		return Text("unset")
	})
	out := node.Comp.Render(vango.NewOwner(nil))
	if out.Text != "unset" {
		t.Errorf("Render() = %q, want unset", out.Text)
	}
}
