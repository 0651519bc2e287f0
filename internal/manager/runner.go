package manager

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Runner executes package manager programs.
type Runner interface {
	// Output runs the program and returns its captured stdout.
	Output(ctx context.Context, name string, args ...string) (string, error)

	// Run runs the program with stdout and stderr attached to the
	// terminal, so interactive manager prompts reach the user.
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner implements Runner with os/exec.
type ExecRunner struct {
	log *logrus.Logger
}

// NewExecRunner creates an ExecRunner logging invocations at debug level.
func NewExecRunner(log *logrus.Logger) *ExecRunner {
	return &ExecRunner{log: log}
}

// Output runs the program and returns its captured stdout.
func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	r.log.WithFields(logrus.Fields{
		"program": name,
		"args":    strings.Join(args, " "),
	}).Debug("running command")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return string(out), nil
}

// Run runs the program attached to the terminal.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	r.log.WithFields(logrus.Fields{
		"program": name,
		"args":    strings.Join(args, " "),
	}).Debug("running command")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// splitPackages turns one-package-per-line command output into a slice,
// dropping blank lines.
func splitPackages(out string) []string {
	var pkgs []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			pkgs = append(pkgs, line)
		}
	}
	return pkgs
}
