package manager

import "context"

// Dnf implements Manager for Fedora-family systems.
type Dnf struct {
	runner Runner
}

// NewDnf creates a dnf backend.
func NewDnf(runner Runner) *Dnf {
	return &Dnf{runner: runner}
}

func (d *Dnf) Name() string {
	return "dnf"
}

func (d *Dnf) ExplicitlyInstalled(ctx context.Context) ([]string, error) {
	out, err := d.runner.Output(ctx, "dnf", "repoquery", "--userinstalled", "--qf", "%{name}\n")
	if err != nil {
		return nil, err
	}
	return splitPackages(out), nil
}

func (d *Dnf) Install(ctx context.Context, pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}
	if err := d.runner.Run(ctx, "dnf", append([]string{"install", "-y"}, pkgs...)...); err != nil {
		return err
	}
	return d.runner.Run(ctx, "dnf", append([]string{"mark", "install"}, pkgs...)...)
}

func (d *Dnf) MarkDependency(ctx context.Context, pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}
	return d.runner.Run(ctx, "dnf", append([]string{"mark", "remove"}, pkgs...)...)
}
