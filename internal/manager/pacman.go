package manager

import "context"

// Pacman implements Manager for pacman and pacman-compatible wrappers
// (yay, paru).
type Pacman struct {
	program string
	runner  Runner
}

// NewPacman creates a pacman backend. program overrides the invoked
// executable; empty means "pacman".
func NewPacman(runner Runner, program string) *Pacman {
	if program == "" {
		program = "pacman"
	}
	return &Pacman{program: program, runner: runner}
}

func (p *Pacman) Name() string {
	return p.program
}

func (p *Pacman) ExplicitlyInstalled(ctx context.Context) ([]string, error) {
	out, err := p.runner.Output(ctx, p.program, "-Qqe")
	if err != nil {
		return nil, err
	}
	return splitPackages(out), nil
}

func (p *Pacman) Install(ctx context.Context, pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}
	// --needed skips up-to-date packages instead of reinstalling them, but
	// it also skips their reason change, so the explicit mark is a second
	// step.
	if err := p.runner.Run(ctx, p.program, append([]string{"-S", "--needed"}, pkgs...)...); err != nil {
		return err
	}
	return p.runner.Run(ctx, p.program, append([]string{"-D", "--asexplicit"}, pkgs...)...)
}

func (p *Pacman) MarkDependency(ctx context.Context, pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}
	return p.runner.Run(ctx, p.program, append([]string{"-D", "--asdeps"}, pkgs...)...)
}
