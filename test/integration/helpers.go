package integration

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/pkgset-dev/pkgset/internal/engine"
	"github.com/pkgset-dev/pkgset/internal/sets"
)

// fakeManager is an in-memory package manager for testing. It tracks the
// explicit set like a real manager would and records every mutating call.
type fakeManager struct {
	explicit map[string]bool
	calls    []string

	installErr error
	demoteErr  error
}

func newFakeManager(explicit ...string) *fakeManager {
	m := &fakeManager{explicit: make(map[string]bool)}
	for _, p := range explicit {
		m.explicit[p] = true
	}
	return m
}

func (m *fakeManager) Name() string { return "fake" }

func (m *fakeManager) ExplicitlyInstalled(ctx context.Context) ([]string, error) {
	var out []string
	for p := range m.explicit {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

func (m *fakeManager) Install(ctx context.Context, pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}
	m.calls = append(m.calls, "install "+strings.Join(pkgs, " "))
	if m.installErr != nil {
		return m.installErr
	}
	for _, p := range pkgs {
		m.explicit[p] = true
	}
	return nil
}

func (m *fakeManager) MarkDependency(ctx context.Context, pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}
	m.calls = append(m.calls, "demote "+strings.Join(pkgs, " "))
	if m.demoteErr != nil {
		return m.demoteErr
	}
	for _, p := range pkgs {
		delete(m.explicit, p)
	}
	return nil
}

func (m *fakeManager) explicitList() []string {
	out, _ := m.ExplicitlyInstalled(context.Background())
	return out
}

type testEnv struct {
	root     string
	registry *sets.Registry
	mgr      *fakeManager
	eng      *engine.Engine
}

func setupTestEngine(t *testing.T, explicit ...string) *testEnv {
	t.Helper()

	root := t.TempDir()
	setsDir := filepath.Join(root, "sets")
	installedDir := filepath.Join(root, "installed-sets")
	for _, dir := range []string{setsDir, installedDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	mgr := newFakeManager(explicit...)
	registry := sets.NewRegistry(setsDir, installedDir)
	return &testEnv{
		root:     root,
		registry: registry,
		mgr:      mgr,
		eng:      engine.New(registry, mgr, log),
	}
}

func (env *testEnv) seedSet(t *testing.T, name string, members ...string) {
	t.Helper()
	path := filepath.Join(env.root, "sets", name)
	content := strings.Join(members, "\n")
	if content != "" {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("seed set %s: %v", name, err)
	}
}

func (env *testEnv) markInstalled(t *testing.T, name string) {
	t.Helper()
	path := filepath.Join(env.root, "installed-sets", name)
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("mark %s installed: %v", name, err)
	}
}

func (env *testEnv) members(t *testing.T, name string) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(env.root, "sets", name))
	if err != nil {
		t.Fatalf("read set %s: %v", name, err)
	}
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			out = append(out, line)
		}
	}
	return out
}

func (env *testEnv) installed(t *testing.T, name string) bool {
	t.Helper()
	_, err := os.Lstat(filepath.Join(env.root, "installed-sets", name))
	return err == nil
}

func assertStrings(t *testing.T, got, want []string, label string) {
	t.Helper()
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("%s = %v, want %v", label, got, want)
	}
}
