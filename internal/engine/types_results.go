package engine

// InstallResult reports an install workflow.
type InstallResult struct {
	// Sets are the set names that were marked installed.
	Sets []string `json:"sets"`

	// Packages is the accumulated membership handed to the manager.
	Packages []string `json:"packages"`
}

// AddResult reports an add workflow.
type AddResult struct {
	// Set is the destination set.
	Set string `json:"set"`

	// Created is true when the set was newly created.
	Created bool `json:"created"`

	// Installed is true when the set ended up installed.
	Installed bool `json:"installed"`

	// Added are the names newly appended to the set file.
	Added []string `json:"added"`

	// Moved are the names removed from other sets.
	Moved []string `json:"moved,omitempty"`

	// Demoted are the names marked as dependencies on the live system.
	Demoted []string `json:"demoted,omitempty"`
}

// RemoveResult reports a remove workflow.
type RemoveResult struct {
	// Set is the set the packages were removed from.
	Set string `json:"set"`

	// Packages are the removed names.
	Packages []string `json:"packages"`

	// Demoted are the names marked as dependencies; packages still needed
	// by another installed set are excluded.
	Demoted []string `json:"demoted,omitempty"`
}

// UninstallResult reports an uninstall workflow.
type UninstallResult struct {
	// Sets are the set names whose markers were removed.
	Sets []string `json:"sets"`

	// Skipped are requested sets that were not installed.
	Skipped []string `json:"skipped,omitempty"`

	// Demoted are the names marked as dependencies; packages still needed
	// by a remaining installed set are excluded.
	Demoted []string `json:"demoted,omitempty"`
}

// ApplyResult reports an apply workflow.
type ApplyResult struct {
	// Demote are the live explicit packages no installed set declares.
	Demote []string `json:"demote"`

	// Install are the declared packages the live system lacks.
	Install []string `json:"install"`

	// DryRun indicates nothing was touched.
	DryRun bool `json:"dry_run,omitempty"`
}

// ReplaceAllResult reports a replace-all workflow.
type ReplaceAllResult struct {
	// Changed are the sets whose files were rewritten.
	Changed []string `json:"changed"`
}

// SetInfo describes one set in a list result.
type SetInfo struct {
	// Name is the set name.
	Name string `json:"name"`

	// Installed reports the marker state.
	Installed bool `json:"installed"`

	// Members is the set's membership, only populated on request.
	Members []string `json:"members,omitempty"`
}

// UnaddedResult reports the live explicit packages no set declares.
type UnaddedResult struct {
	Packages []string `json:"packages"`
}
