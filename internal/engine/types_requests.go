package engine

// InstallRequest represents a request to install one or more sets.
type InstallRequest struct {
	// Sets are the names of the sets to install.
	Sets []string
}

// AddRequest represents a request to add packages to a set.
type AddRequest struct {
	// Set is the destination set name.
	Set string

	// Packages are the package names to add.
	Packages []string

	// New allows creating the set if it does not exist yet.
	New bool

	// Installed marks a newly created set installed (only meaningful
	// together with New).
	Installed bool

	// Move relocates the packages out of every other set that contains
	// them.
	Move bool
}

// RemoveRequest represents a request to remove packages from a set.
type RemoveRequest struct {
	// Set is the set to remove from.
	Set string

	// Packages are the package names to remove.
	Packages []string
}

// UninstallRequest represents a request to uninstall sets.
type UninstallRequest struct {
	// Sets are the names of the sets to uninstall.
	Sets []string
}

// ApplyRequest represents a request to reconcile the live system with the
// installed sets.
type ApplyRequest struct {
	// DryRun computes both deltas without touching anything.
	DryRun bool
}

// ReplaceAllRequest represents a request to rename a package across every
// set.
type ReplaceAllRequest struct {
	// Old is the exact package name to replace.
	Old string

	// New is the replacement name.
	New string
}

// ListRequest represents a request to list all sets.
type ListRequest struct {
	// Members includes each set's membership in the result.
	Members bool
}
