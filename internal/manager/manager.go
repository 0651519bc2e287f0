// Package manager abstracts the OS package manager.
//
// The Manager interface is the reconciliation engine's only window onto the
// live system: list explicitly installed packages, install-and-mark-explicit,
// and demote to dependency. Backends exist for pacman, apt, and dnf, each
// delegating every invocation to a Runner so tests can substitute a fake.
//
// None of the operations upgrade or physically remove packages:
// "uninstall" in pkgset terms only flips the install reason to
// dependency/auto, leaving cleanup to the manager's own orphan handling.
package manager

import "context"

// Manager is the package manager port.
type Manager interface {
	// Name returns the program this backend invokes.
	Name() string

	// ExplicitlyInstalled returns the packages the manager considers
	// user-requested, as opposed to pulled in as dependencies.
	ExplicitlyInstalled(ctx context.Context) ([]string, error)

	// Install installs any of pkgs not already present and marks all of
	// them explicitly installed. Already-installed packages are not
	// upgraded. An empty pkgs is a no-op.
	Install(ctx context.Context, pkgs []string) error

	// MarkDependency marks pkgs as installed-as-dependency (auto). Nothing
	// is physically removed. An empty pkgs is a no-op.
	MarkDependency(ctx context.Context, pkgs []string) error
}
