package sets

import (
	"errors"
	"fmt"
	"os"

	"github.com/pkgset-dev/pkgset/internal/stringset"
)

// Registry enumerates and resolves package sets under one configuration
// root.
type Registry struct {
	setsDir      string
	installedDir string
}

// NewRegistry creates a Registry over the given sets and installed-marker
// directories.
func NewRegistry(setsDir, installedDir string) *Registry {
	return &Registry{
		setsDir:      setsDir,
		installedDir: installedDir,
	}
}

// Set returns a Set value for name without requiring a backing file. Used
// by create paths; everything else goes through Resolve.
func (r *Registry) Set(name string) (Set, error) {
	if err := validateName(name); err != nil {
		return Set{}, err
	}
	return Set{Name: name, setsDir: r.setsDir, installedDir: r.installedDir}, nil
}

// Resolve returns the Set for name, failing with ErrNotFound when it has no
// backing file.
func (r *Registry) Resolve(name string) (Set, error) {
	s, err := r.Set(name)
	if err != nil {
		return Set{}, err
	}

	exists, err := s.Exists()
	if err != nil {
		return Set{}, fmt.Errorf("failed to check set %s: %w", name, err)
	}
	if !exists {
		return Set{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return s, nil
}

// All returns every set found under the sets root, sorted by name.
func (r *Registry) All() ([]Set, error) {
	entries, err := os.ReadDir(r.setsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read sets directory: %w", err)
	}

	var all []Set
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		s, err := r.Resolve(entry.Name())
		if err != nil {
			return nil, err
		}
		all = append(all, s)
	}
	return all, nil
}

// AllInstalled returns every set with an installed marker, sorted by name.
// A marker whose backing set is missing is surfaced as ErrCorruptState.
func (r *Registry) AllInstalled() ([]Set, error) {
	entries, err := os.ReadDir(r.installedDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read installed-sets directory: %w", err)
	}

	var installed []Set
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		s, err := r.Resolve(entry.Name())
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("%w: set %q is marked installed but has no backing file", ErrCorruptState, entry.Name())
			}
			return nil, err
		}
		installed = append(installed, s)
	}
	return installed, nil
}

// Accumulate returns the union of Get() over the given sets. Duplicate sets
// in the input (same name) are read once.
func (r *Registry) Accumulate(ss []Set) (stringset.Set[string], error) {
	acc := stringset.New[string]()
	seen := stringset.New[string]()
	for _, s := range ss {
		if seen.Has(s.Name) {
			continue
		}
		seen.Add(s.Name)

		members, err := s.Get()
		if err != nil {
			return nil, err
		}
		acc = acc.Union(members)
	}
	return acc, nil
}
