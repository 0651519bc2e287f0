package manager

import "context"

// Apt implements Manager for Debian-family systems via apt-get and
// apt-mark.
type Apt struct {
	runner Runner
}

// NewApt creates an apt backend.
func NewApt(runner Runner) *Apt {
	return &Apt{runner: runner}
}

func (a *Apt) Name() string {
	return "apt-get"
}

func (a *Apt) ExplicitlyInstalled(ctx context.Context) ([]string, error) {
	out, err := a.runner.Output(ctx, "apt-mark", "showmanual")
	if err != nil {
		return nil, err
	}
	return splitPackages(out), nil
}

func (a *Apt) Install(ctx context.Context, pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}
	// --no-upgrade leaves already-installed packages at their current
	// version; apt-mark then flips any of them that were auto to manual.
	if err := a.runner.Run(ctx, "apt-get", append([]string{"install", "--no-upgrade", "-y"}, pkgs...)...); err != nil {
		return err
	}
	return a.runner.Run(ctx, "apt-mark", append([]string{"manual"}, pkgs...)...)
}

func (a *Apt) MarkDependency(ctx context.Context, pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}
	return a.runner.Run(ctx, "apt-mark", append([]string{"auto"}, pkgs...)...)
}
