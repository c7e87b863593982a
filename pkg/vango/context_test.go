package vango

import "testing"

func TestContextDefault(t *testing.T) {
	theme := CreateContext("light")

	if got := theme.Use(nil); got != "light" {
		t.Errorf("Use(nil) = %q, want %q", got, "light")
	}
	if got := theme.Use(NewOwner(nil)); got != "light" {
		t.Errorf("Use(unprovided) = %q, want %q", got, "light")
	}
	if theme.Default() != "light" {
		t.Errorf("Default() = %q", theme.Default())
	}
}

func TestContextScopedToDescendants(t *testing.T) {
	theme := CreateContext("light")

	root := NewOwner(nil)
	left := NewOwner(root)
	right := NewOwner(root)
	leftChild := NewOwner(left)

	theme.Provide(left, "dark")

	if got := theme.Use(leftChild); got != "dark" {
		t.Errorf("descendant Use() = %q, want %q", got, "dark")
	}
	if got := theme.Use(right); got != "light" {
		t.Errorf("sibling Use() = %q, want %q", got, "light")
	}
	if got := theme.Use(root); got != "light" {
		t.Errorf("ancestor Use() = %q, want %q", got, "light")
	}
}

func TestContextNearestProviderWins(t *testing.T) {
	depth := CreateContext(0)

	root := NewOwner(nil)
	mid := NewOwner(root)
	leaf := NewOwner(mid)

	depth.Provide(root, 1)
	depth.Provide(mid, 2)

	if got := depth.Use(leaf); got != 2 {
		t.Errorf("Use() = %d, want 2", got)
	}
}

func TestContextLookup(t *testing.T) {
	cell := DefineContext[*Signal[int]]("Cell")
	if cell.Name() != "Cell" {
		t.Errorf("Name() = %q", cell.Name())
	}

	root := NewOwner(nil)
	if _, ok := cell.Lookup(root); ok {
		t.Error("Lookup should report missing provider")
	}

	s := NewSignal(7)
	cell.Provide(root, s)
	got, ok := cell.Lookup(NewOwner(root))
	if !ok || got != s {
		t.Errorf("Lookup() = %v, %v; want provided signal", got, ok)
	}
}

func TestContextsAreDistinct(t *testing.T) {
	a := CreateContext("a")
	b := CreateContext("b")

	o := NewOwner(nil)
	a.Provide(o, "A")

	if got := b.Use(o); got != "b" {
		t.Errorf("b.Use() = %q, want default %q", got, "b")
	}
}
