package manager

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrNoManager indicates no supported package manager was found on PATH.
var ErrNoManager = errors.New("no supported package manager found")

// Detect selects a Manager backend. A non-empty override picks a backend by
// name; an override that is not a known backend is treated as a
// pacman-compatible wrapper program (yay, paru). Without an override the
// first of pacman, apt-get, dnf found on PATH wins.
func Detect(runner Runner, override string) (Manager, error) {
	if override != "" {
		switch override {
		case "pacman":
			return NewPacman(runner, ""), nil
		case "apt", "apt-get":
			return NewApt(runner), nil
		case "dnf":
			return NewDnf(runner), nil
		default:
			if _, err := exec.LookPath(override); err != nil {
				return nil, fmt.Errorf("configured package manager %q not found: %w", override, err)
			}
			return NewPacman(runner, override), nil
		}
	}

	if _, err := exec.LookPath("pacman"); err == nil {
		return NewPacman(runner, ""), nil
	}
	if _, err := exec.LookPath("apt-get"); err == nil {
		return NewApt(runner), nil
	}
	if _, err := exec.LookPath("dnf"); err == nil {
		return NewDnf(runner), nil
	}

	return nil, ErrNoManager
}
