package engine

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/pkgset-dev/pkgset/internal/sets"
	"github.com/pkgset-dev/pkgset/internal/stringset"
)

// fakeManager records port calls and replays canned state.
type fakeManager struct {
	explicit    []string
	explicitErr error
	installErr  error
	demoteErr   error

	// calls is the ordered trace, e.g. "install a b", "demote c".
	calls []string
}

func (m *fakeManager) Name() string { return "fake" }

func (m *fakeManager) ExplicitlyInstalled(ctx context.Context) ([]string, error) {
	if m.explicitErr != nil {
		return nil, m.explicitErr
	}
	return m.explicit, nil
}

func (m *fakeManager) Install(ctx context.Context, pkgs []string) error {
	m.calls = append(m.calls, strings.TrimSpace("install "+strings.Join(pkgs, " ")))
	return m.installErr
}

func (m *fakeManager) MarkDependency(ctx context.Context, pkgs []string) error {
	m.calls = append(m.calls, strings.TrimSpace("demote "+strings.Join(pkgs, " ")))
	return m.demoteErr
}

// testEnv is a real config root in a temp dir plus an engine wired to a
// fake manager.
type testEnv struct {
	engine   *Engine
	registry *sets.Registry
	mgr      *fakeManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	root := t.TempDir()
	setsDir := filepath.Join(root, "sets")
	installedDir := filepath.Join(root, "installed-sets")
	for _, dir := range []string{setsDir, installedDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	registry := sets.NewRegistry(setsDir, installedDir)
	mgr := &fakeManager{}
	return &testEnv{
		engine:   New(registry, mgr, log),
		registry: registry,
		mgr:      mgr,
	}
}

// seedSet creates a set with the given members, optionally installed.
func (env *testEnv) seedSet(t *testing.T, name string, installed bool, members ...string) sets.Set {
	t.Helper()

	s, err := env.registry.Set(name)
	if err != nil {
		t.Fatalf("Set(%q) failed: %v", name, err)
	}
	if _, err := s.Create(members); err != nil {
		t.Fatalf("Create(%q) failed: %v", name, err)
	}
	if installed {
		if err := s.MarkInstalled(); err != nil {
			t.Fatalf("MarkInstalled(%q) failed: %v", name, err)
		}
	}
	return s
}

func (env *testEnv) members(t *testing.T, name string) []string {
	t.Helper()

	s, err := env.registry.Resolve(name)
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", name, err)
	}
	m, err := s.Get()
	if err != nil {
		t.Fatalf("Get(%q) failed: %v", name, err)
	}
	return stringset.Sorted(m)
}

func (env *testEnv) installed(t *testing.T, name string) bool {
	t.Helper()

	s, err := env.registry.Set(name)
	if err != nil {
		t.Fatalf("Set(%q) failed: %v", name, err)
	}
	installed, err := s.Installed()
	if err != nil {
		t.Fatalf("Installed(%q) failed: %v", name, err)
	}
	return installed
}
