// Package engine provides the core reconciliation logic for pkgset.
//
// The engine package acts as the orchestration layer between CLI commands
// and the file-backed sets on one side and the live package manager on the
// other. Every workflow follows the same discipline: read the declared
// state, compute a package delta, effect the delta through the manager
// port, and only commit file or marker mutations after the port call
// succeeded. A mutation already committed by an earlier successful step is
// never rolled back; Apply reconciles any resulting drift later.
//
// Key components:
//   - Engine: orchestrator holding the set registry and the manager port
//   - Install/Add/Remove/Uninstall: per-set workflows
//   - Apply/Unadded: whole-system reconciliation and bootstrap
package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pkgset-dev/pkgset/internal/manager"
	"github.com/pkgset-dev/pkgset/internal/sets"
	"github.com/pkgset-dev/pkgset/internal/stringset"
)

// Engine orchestrates all pkgset workflows.
// It is the main API surface called by the CLI.
type Engine struct {
	registry *sets.Registry
	mgr      manager.Manager
	log      *logrus.Logger
}

// New creates a new Engine with the given dependencies.
func New(registry *sets.Registry, mgr manager.Manager, log *logrus.Logger) *Engine {
	return &Engine{
		registry: registry,
		mgr:      mgr,
		log:      log,
	}
}

// resolveAll resolves every name to an existing set, failing on the first
// unknown name.
func (e *Engine) resolveAll(names []string) ([]sets.Set, error) {
	resolved := make([]sets.Set, 0, len(names))
	for _, name := range names {
		s, err := e.registry.Resolve(name)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, s)
	}
	return resolved, nil
}

// without filters the sets with the given name out of ss.
func without(ss []sets.Set, name string) []sets.Set {
	out := make([]sets.Set, 0, len(ss))
	for _, s := range ss {
		if s.Name != name {
			out = append(out, s)
		}
	}
	return out
}

// dedupe drops repeated names while preserving first-seen order.
func dedupe(pkgs []string) []string {
	seen := stringset.New[string]()
	out := make([]string, 0, len(pkgs))
	for _, pkg := range pkgs {
		if !seen.Has(pkg) {
			seen.Add(pkg)
			out = append(out, pkg)
		}
	}
	return out
}

// managerErr tags a failed port call so the CLI can classify it.
func managerErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrManager, op, err)
}
