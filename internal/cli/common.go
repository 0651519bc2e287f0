package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkgset-dev/pkgset/internal/config"
	"github.com/pkgset-dev/pkgset/internal/engine"
	"github.com/pkgset-dev/pkgset/internal/lockfile"
	"github.com/pkgset-dev/pkgset/internal/manager"
	"github.com/pkgset-dev/pkgset/internal/sets"
)

// newEngine creates a new engine with real implementations of all
// dependencies and, unless disabled, takes the advisory root lock for the
// duration of the workflow. The returned release func must be called when
// the workflow finishes.
func newEngine() (*engine.Engine, func(), error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	if err := paths.EnsureDirectories(); err != nil {
		return nil, nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	cfg, err := config.Load(paths.Config)
	if err != nil {
		return nil, nil, err
	}

	release := func() {}
	if cfg.Lock {
		lock, err := lockfile.Acquire(paths.Lock)
		if err != nil {
			return nil, nil, err
		}
		release = func() { _ = lock.Release() }
	}

	runner := manager.NewExecRunner(log)
	mgr, err := manager.Detect(runner, cfg.Manager)
	if err != nil {
		release()
		return nil, nil, err
	}
	log.WithField("manager", mgr.Name()).Debug("selected package manager")

	registry := sets.NewRegistry(paths.Sets, paths.InstalledSets)
	return engine.New(registry, mgr, log), release, nil
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
