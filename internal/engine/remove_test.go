package engine

import (
	"context"
	"errors"
	"slices"
	"testing"
)

// Only the excess is demoted: packages another installed set still needs
// stay explicit.
func TestRemove_DemotesOnlyExcess(t *testing.T) {
	env := newTestEnv(t)
	env.seedSet(t, "base", true, "a", "b", "c")
	env.seedSet(t, "apps", true, "b", "d")

	result, err := env.engine.Remove(context.Background(), &RemoveRequest{
		Set:      "base",
		Packages: []string{"a", "b"},
	})
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if !slices.Equal(env.mgr.calls, []string{"demote a"}) {
		t.Errorf("port calls = %v, want [demote a]", env.mgr.calls)
	}
	if !slices.Equal(result.Demoted, []string{"a"}) {
		t.Errorf("Demoted = %v", result.Demoted)
	}
	if got := env.members(t, "base"); !slices.Equal(got, []string{"c"}) {
		t.Errorf("base members = %v, want [c]", got)
	}
	if got := env.members(t, "apps"); !slices.Equal(got, []string{"b", "d"}) {
		t.Errorf("apps members = %v, want unchanged", got)
	}
}

func TestRemove_UninstalledSetSkipsPort(t *testing.T) {
	env := newTestEnv(t)
	env.seedSet(t, "base", false, "a", "b")

	result, err := env.engine.Remove(context.Background(), &RemoveRequest{
		Set:      "base",
		Packages: []string{"a"},
	})
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if len(env.mgr.calls) != 0 {
		t.Errorf("port calls = %v, want none", env.mgr.calls)
	}
	if len(result.Demoted) != 0 {
		t.Errorf("Demoted = %v, want none", result.Demoted)
	}
	if got := env.members(t, "base"); !slices.Equal(got, []string{"b"}) {
		t.Errorf("members = %v", got)
	}
}

func TestRemove_PortFailureLeavesFileUntouched(t *testing.T) {
	env := newTestEnv(t)
	env.seedSet(t, "base", true, "a")
	env.mgr.demoteErr = errors.New("db locked")

	_, err := env.engine.Remove(context.Background(), &RemoveRequest{
		Set:      "base",
		Packages: []string{"a"},
	})
	if !errors.Is(err, ErrManager) {
		t.Fatalf("expected ErrManager, got %v", err)
	}
	if got := env.members(t, "base"); !slices.Equal(got, []string{"a"}) {
		t.Errorf("members = %v, want unchanged [a]", got)
	}
}

func TestRemove_UnknownSet(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.engine.Remove(context.Background(), &RemoveRequest{
		Set:      "ghost",
		Packages: []string{"a"},
	})
	if err == nil {
		t.Fatal("expected error for unknown set")
	}
}
