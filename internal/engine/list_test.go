package engine

import (
	"context"
	"slices"
	"testing"
)

func TestList(t *testing.T) {
	env := newTestEnv(t)
	env.seedSet(t, "base", true, "a", "b", "c")
	env.seedSet(t, "apps", false, "firefox")

	infos, err := env.engine.List(context.Background(), &ListRequest{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(infos) != 2 {
		t.Fatalf("got %d sets, want 2", len(infos))
	}
	if infos[0].Name != "apps" || infos[0].Installed {
		t.Errorf("infos[0] = %+v", infos[0])
	}
	if infos[1].Name != "base" || !infos[1].Installed {
		t.Errorf("infos[1] = %+v", infos[1])
	}
	if infos[0].Members != nil {
		t.Error("members populated without request")
	}
}

func TestList_WithMembers(t *testing.T) {
	env := newTestEnv(t)
	env.seedSet(t, "base", true, "b", "a")

	infos, err := env.engine.List(context.Background(), &ListRequest{Members: true})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if !slices.Equal(infos[0].Members, []string{"a", "b"}) {
		t.Errorf("Members = %v", infos[0].Members)
	}
}

func TestList_Empty(t *testing.T) {
	env := newTestEnv(t)

	infos, err := env.engine.List(context.Background(), &ListRequest{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(infos) != 0 {
		t.Errorf("got %d sets, want 0", len(infos))
	}
}
