package engine

import (
	"context"

	"github.com/pkgset-dev/pkgset/internal/stringset"
)

// Unadded returns the packages the system has explicitly installed that no
// set, installed or not, declares. Read-only; used for the initial
// bootstrap of a sets directory.
func (e *Engine) Unadded(ctx context.Context) (*UnaddedResult, error) {
	all, err := e.registry.All()
	if err != nil {
		return nil, err
	}
	declared, err := e.registry.Accumulate(all)
	if err != nil {
		return nil, err
	}

	livePkgs, err := e.mgr.ExplicitlyInstalled(ctx)
	if err != nil {
		return nil, managerErr("list explicitly installed", err)
	}

	return &UnaddedResult{
		Packages: stringset.Sorted(stringset.New(livePkgs...).Diff(declared)),
	}, nil
}
