package engine

import (
	"context"
	"fmt"

	"github.com/pkgset-dev/pkgset/internal/stringset"
)

// Install installs the accumulated membership of the named sets and marks
// every one of them installed. The live install happens first: a failure
// mid-way never records "installed" falsely.
func (e *Engine) Install(ctx context.Context, req *InstallRequest) (*InstallResult, error) {
	if len(req.Sets) == 0 {
		return nil, ErrNoSets
	}

	targets, err := e.resolveAll(req.Sets)
	if err != nil {
		return nil, err
	}

	wanted, err := e.registry.Accumulate(targets)
	if err != nil {
		return nil, err
	}
	pkgs := stringset.Sorted(wanted)

	e.log.WithField("packages", len(pkgs)).Debug("installing accumulated membership")
	if err := e.mgr.Install(ctx, pkgs); err != nil {
		return nil, managerErr("install", err)
	}

	for _, s := range targets {
		if err := s.MarkInstalled(); err != nil {
			return nil, fmt.Errorf("failed to mark set installed: %w", err)
		}
	}

	return &InstallResult{
		Sets:     req.Sets,
		Packages: pkgs,
	}, nil
}
