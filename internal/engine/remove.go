package engine

import (
	"context"
	"fmt"

	"github.com/pkgset-dev/pkgset/internal/stringset"
)

// Remove removes packages from a set. When the set is installed, the
// packages leaving the installed accumulation are first demoted on the
// port; a package still needed by another installed set is never demoted.
// The file mutation commits only after the port call succeeded.
func (e *Engine) Remove(ctx context.Context, req *RemoveRequest) (*RemoveResult, error) {
	pkgs := dedupe(req.Packages)

	target, err := e.registry.Resolve(req.Set)
	if err != nil {
		return nil, err
	}

	installed, err := target.Installed()
	if err != nil {
		return nil, fmt.Errorf("failed to check marker: %w", err)
	}

	var demoted []string
	if installed {
		allInstalled, err := e.registry.AllInstalled()
		if err != nil {
			return nil, err
		}
		stillNeeded, err := e.registry.Accumulate(without(allInstalled, target.Name))
		if err != nil {
			return nil, err
		}

		demoted = stringset.Sorted(stringset.New(pkgs...).Diff(stillNeeded))
		if err := e.mgr.MarkDependency(ctx, demoted); err != nil {
			return nil, managerErr("mark dependency", err)
		}
	}

	if err := target.Remove(pkgs); err != nil {
		return nil, err
	}

	return &RemoveResult{
		Set:      req.Set,
		Packages: pkgs,
		Demoted:  demoted,
	}, nil
}
