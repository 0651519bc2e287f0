package config

import (
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

// Config holds the user-tunable settings layered from config.ini and the
// environment. Environment variables win over the file.
type Config struct {
	// Manager overrides the package manager backend or program
	// (PKGSET_MANAGER, or [manager] name in config.ini). Empty means
	// autodetect.
	Manager string

	// Lock controls the advisory root lock taken around each workflow
	// ([core] lock in config.ini, default true).
	Lock bool
}

// Load reads config.ini from the given path, applying defaults and
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Lock: true,
	}

	file, err := ini.Load(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	} else {
		cfg.Manager = file.Section("manager").Key("name").String()
		cfg.Lock = file.Section("core").Key("lock").MustBool(true)
	}

	if env := os.Getenv("PKGSET_MANAGER"); env != "" {
		cfg.Manager = env
	}

	return cfg, nil
}
