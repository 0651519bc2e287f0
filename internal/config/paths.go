// Package config manages pkgset configuration and filesystem paths.
//
// Configuration includes the locations of the pkgset data directories, which
// can be customized via environment variables. The default root is
// ~/.config/pkgset/ containing sets/, installed-sets/, and config.ini.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by pkgset.
type Paths struct {
	// Root is the base directory for all pkgset data (default: ~/.config/pkgset)
	Root string

	// Sets is the directory containing one file per package set
	Sets string

	// InstalledSets is the directory containing installed markers
	InstalledSets string

	// Config is the path to the config file
	Config string

	// Lock is the path to the advisory lock file
	Lock string
}

// DefaultPaths returns the default paths for pkgset.
// Paths can be overridden with environment variables:
// - PKGSET_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("PKGSET_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".config", "pkgset")
	}

	return &Paths{
		Root:          root,
		Sets:          filepath.Join(root, "sets"),
		InstalledSets: filepath.Join(root, "installed-sets"),
		Config:        filepath.Join(root, "config.ini"),
		Lock:          filepath.Join(root, ".lock"),
	}, nil
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		p.Sets,
		p.InstalledSets,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
