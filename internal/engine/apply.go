package engine

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/pkgset-dev/pkgset/internal/stringset"
)

// Apply reconciles the live system's explicitly installed packages with the
// accumulated membership of all installed sets. Two phases: demote what the
// system has but no installed set declares, then install what is declared
// but missing. The install phase runs even when the demote phase failed;
// either failure makes the whole operation fail.
func (e *Engine) Apply(ctx context.Context, req *ApplyRequest) (*ApplyResult, error) {
	installed, err := e.registry.AllInstalled()
	if err != nil {
		return nil, err
	}
	declared, err := e.registry.Accumulate(installed)
	if err != nil {
		return nil, err
	}

	livePkgs, err := e.mgr.ExplicitlyInstalled(ctx)
	if err != nil {
		return nil, managerErr("list explicitly installed", err)
	}
	live := stringset.New(livePkgs...)

	result := &ApplyResult{
		Demote:  stringset.Sorted(live.Diff(declared)),
		Install: stringset.Sorted(declared.Diff(live)),
		DryRun:  req.DryRun,
	}

	e.log.WithFields(logrus.Fields{
		"demote":  len(result.Demote),
		"install": len(result.Install),
	}).Debug("computed apply delta")

	if req.DryRun {
		return result, nil
	}

	var errs []error
	if err := e.mgr.MarkDependency(ctx, result.Demote); err != nil {
		errs = append(errs, managerErr("mark dependency", err))
	}
	if err := e.mgr.Install(ctx, result.Install); err != nil {
		errs = append(errs, managerErr("install", err))
	}

	return result, errors.Join(errs...)
}
