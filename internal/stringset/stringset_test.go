package stringset

import (
	"slices"
	"testing"
)

func TestSetAlgebra(t *testing.T) {
	a := New("a", "b", "c")
	b := New("b", "d")

	union := Sorted(a.Union(b))
	if !slices.Equal(union, []string{"a", "b", "c", "d"}) {
		t.Errorf("Union = %v, want [a b c d]", union)
	}

	diff := Sorted(a.Diff(b))
	if !slices.Equal(diff, []string{"a", "c"}) {
		t.Errorf("Diff = %v, want [a c]", diff)
	}

	inter := Sorted(a.Intersect(b))
	if !slices.Equal(inter, []string{"b"}) {
		t.Errorf("Intersect = %v, want [b]", inter)
	}
}

func TestUnionDoesNotMutateReceiver(t *testing.T) {
	a := New("a")
	b := New("b")

	_ = a.Union(b)

	if a.Has("b") {
		t.Error("Union mutated its receiver")
	}
}

func TestUnionIdempotent(t *testing.T) {
	a := New("x", "y")

	once := a.Union(a)
	twice := once.Union(a)

	if !slices.Equal(Sorted(once), Sorted(twice)) {
		t.Errorf("repeated union changed the result: %v vs %v", Sorted(once), Sorted(twice))
	}
}

func TestAddHasDelete(t *testing.T) {
	s := New[string]()
	s.Add("pkg")
	if !s.Has("pkg") {
		t.Error("expected pkg after Add")
	}
	s.Delete("pkg")
	if s.Has("pkg") {
		t.Error("expected pkg gone after Delete")
	}
}
