package engine

import "errors"

var (
	// ErrNoSets indicates a workflow was invoked without any set names.
	ErrNoSets = errors.New("no sets specified")

	// ErrManager indicates a package manager port call failed. Mutations
	// gated behind that call were skipped; earlier committed mutations
	// stand (apply heals the drift).
	ErrManager = errors.New("package manager operation failed")
)
