package engine

import (
	"context"
	"fmt"

	"github.com/pkgset-dev/pkgset/internal/sets"
	"github.com/pkgset-dev/pkgset/internal/stringset"
)

// Uninstall clears the installed markers of the named sets and demotes the
// packages that no remaining installed set still needs. Set files are never
// touched. Sets that are not installed are reported and skipped, not
// failed.
func (e *Engine) Uninstall(ctx context.Context, req *UninstallRequest) (*UninstallResult, error) {
	if len(req.Sets) == 0 {
		return nil, ErrNoSets
	}

	resolved, err := e.resolveAll(req.Sets)
	if err != nil {
		return nil, err
	}

	var targets []sets.Set
	var skipped []string
	for _, s := range resolved {
		installed, err := s.Installed()
		if err != nil {
			return nil, fmt.Errorf("failed to check marker: %w", err)
		}
		if installed {
			targets = append(targets, s)
		} else {
			skipped = append(skipped, s.Name)
		}
	}

	result := &UninstallResult{Skipped: skipped}
	if len(targets) == 0 {
		return result, nil
	}

	allInstalled, err := e.registry.AllInstalled()
	if err != nil {
		return nil, err
	}
	remaining := allInstalled
	for _, t := range targets {
		remaining = without(remaining, t.Name)
	}

	targetAcc, err := e.registry.Accumulate(targets)
	if err != nil {
		return nil, err
	}
	remainingAcc, err := e.registry.Accumulate(remaining)
	if err != nil {
		return nil, err
	}

	demote := stringset.Sorted(targetAcc.Diff(remainingAcc))
	e.log.WithField("packages", len(demote)).Debug("demoting packages no installed set needs")
	if err := e.mgr.MarkDependency(ctx, demote); err != nil {
		return nil, managerErr("mark dependency", err)
	}

	for _, t := range targets {
		if err := t.MarkUninstalled(); err != nil {
			return nil, err
		}
		result.Sets = append(result.Sets, t.Name)
	}
	result.Demoted = demote

	return result, nil
}
