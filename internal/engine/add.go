package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pkgset-dev/pkgset/internal/sets"
	"github.com/pkgset-dev/pkgset/internal/stringset"
)

// Add merges packages into a set, optionally creating it, marking it
// installed, and moving the packages out of every other set that contains
// them.
//
// Ordering: when the set ends up installed the live install runs before any
// file is touched, so a port failure leaves the declared state unchanged.
// With Move, removal from the other sets happens last, after the live
// system already accounts for the packages either via the explicit install
// or via the demote, so a package never transiently loses all owners.
func (e *Engine) Add(ctx context.Context, req *AddRequest) (*AddResult, error) {
	pkgs := dedupe(req.Packages)

	target, err := e.registry.Resolve(req.Set)
	created := false
	if err != nil {
		if !errors.Is(err, sets.ErrNotFound) || !req.New {
			return nil, err
		}
		target, err = e.registry.Set(req.Set)
		if err != nil {
			return nil, err
		}
		created = true
	}

	wasInstalled := false
	if !created {
		wasInstalled, err = target.Installed()
		if err != nil {
			return nil, fmt.Errorf("failed to check marker: %w", err)
		}
	}
	willBeInstalled := wasInstalled || (created && req.Installed)

	if willBeInstalled {
		if err := e.mgr.Install(ctx, sortPkgs(pkgs)); err != nil {
			return nil, managerErr("install", err)
		}
	}

	added, err := target.Merge(pkgs)
	if err != nil {
		return nil, err
	}
	if willBeInstalled && !wasInstalled {
		if err := target.MarkInstalled(); err != nil {
			return nil, fmt.Errorf("failed to mark set installed: %w", err)
		}
	}

	result := &AddResult{
		Set:       req.Set,
		Created:   created,
		Installed: willBeInstalled,
		Added:     added,
	}

	if req.Move {
		moved, demoted, err := e.move(ctx, target, pkgs, willBeInstalled)
		if err != nil {
			return result, err
		}
		result.Moved = moved
		result.Demoted = demoted
	}

	return result, nil
}

// move relocates pkgs out of every other set. When the destination is not
// installed, packages that were members of another installed set first get
// demoted on the port: they are leaving the installed accumulation. When
// the destination is installed the preceding install already marked them
// explicit and no port call is needed.
func (e *Engine) move(ctx context.Context, target sets.Set, pkgs []string, targetInstalled bool) (moved, demoted []string, err error) {
	all, err := e.registry.All()
	if err != nil {
		return nil, nil, err
	}
	others := without(all, target.Name)

	otherMembers, err := e.registry.Accumulate(others)
	if err != nil {
		return nil, nil, err
	}

	movedSet := stringset.New(pkgs...).Intersect(otherMembers)
	if len(movedSet) == 0 {
		return nil, nil, nil
	}

	if !targetInstalled {
		installed, err := e.registry.AllInstalled()
		if err != nil {
			return nil, nil, err
		}
		installedMembers, err := e.registry.Accumulate(without(installed, target.Name))
		if err != nil {
			return nil, nil, err
		}

		demoted = stringset.Sorted(movedSet.Intersect(installedMembers))
		if err := e.mgr.MarkDependency(ctx, demoted); err != nil {
			return nil, nil, managerErr("mark dependency", err)
		}
	}

	moved = stringset.Sorted(movedSet)
	for _, other := range others {
		if err := other.Remove(moved); err != nil {
			return moved, demoted, err
		}
	}

	e.log.WithFields(logrus.Fields{
		"set":   target.Name,
		"moved": len(moved),
	}).Debug("moved packages between sets")

	return moved, demoted, nil
}

func sortPkgs(pkgs []string) []string {
	return stringset.Sorted(stringset.New(pkgs...))
}
