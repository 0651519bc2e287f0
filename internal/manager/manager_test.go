package manager

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records invocations and replays canned output.
type fakeRunner struct {
	commands []string
	output   string
	runErr   error
}

func (r *fakeRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	r.commands = append(r.commands, name+" "+strings.Join(args, " "))
	return r.output, nil
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	r.commands = append(r.commands, name+" "+strings.Join(args, " "))
	return r.runErr
}

func TestPacman_ExplicitlyInstalled(t *testing.T) {
	runner := &fakeRunner{output: "vim\ngit\n\nhtop\n"}
	p := NewPacman(runner, "")

	pkgs, err := p.ExplicitlyInstalled(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"vim", "git", "htop"}, pkgs)
	assert.Equal(t, []string{"pacman -Qqe"}, runner.commands)
}

func TestPacman_Install(t *testing.T) {
	runner := &fakeRunner{}
	p := NewPacman(runner, "")

	require.NoError(t, p.Install(context.Background(), []string{"vim", "git"}))

	assert.Equal(t, []string{
		"pacman -S --needed vim git",
		"pacman -D --asexplicit vim git",
	}, runner.commands)
}

func TestPacman_MarkDependency(t *testing.T) {
	runner := &fakeRunner{}
	p := NewPacman(runner, "")

	require.NoError(t, p.MarkDependency(context.Background(), []string{"vim"}))

	assert.Equal(t, []string{"pacman -D --asdeps vim"}, runner.commands)
}

func TestPacman_WrapperProgram(t *testing.T) {
	runner := &fakeRunner{}
	p := NewPacman(runner, "yay")

	require.NoError(t, p.Install(context.Background(), []string{"vim"}))

	assert.Equal(t, "yay", p.Name())
	assert.Equal(t, []string{
		"yay -S --needed vim",
		"yay -D --asexplicit vim",
	}, runner.commands)
}

// Empty package lists succeed without invoking the underlying manager.
func TestEmptyCallsAreNoOps(t *testing.T) {
	runners := make(map[string]*fakeRunner)
	newRunner := func(name string) *fakeRunner {
		r := &fakeRunner{runErr: errors.New("must not run")}
		runners[name] = r
		return r
	}

	backends := []Manager{
		NewPacman(newRunner("pacman"), ""),
		NewApt(newRunner("apt")),
		NewDnf(newRunner("dnf")),
	}

	for _, m := range backends {
		require.NoError(t, m.Install(context.Background(), nil), m.Name())
		require.NoError(t, m.MarkDependency(context.Background(), nil), m.Name())
	}
	for name, r := range runners {
		assert.Empty(t, r.commands, name)
	}
}

func TestPacman_InstallFailureStopsMark(t *testing.T) {
	runner := &fakeRunner{runErr: errors.New("exit status 1")}
	p := NewPacman(runner, "")

	err := p.Install(context.Background(), []string{"vim"})
	require.Error(t, err)

	assert.Equal(t, []string{"pacman -S --needed vim"}, runner.commands,
		"explicit mark must not run after a failed install")
}

func TestApt_Commands(t *testing.T) {
	runner := &fakeRunner{output: "vim\n"}
	a := NewApt(runner)

	pkgs, err := a.ExplicitlyInstalled(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"vim"}, pkgs)

	require.NoError(t, a.Install(context.Background(), []string{"git"}))
	require.NoError(t, a.MarkDependency(context.Background(), []string{"vim"}))

	assert.Equal(t, []string{
		"apt-mark showmanual",
		"apt-get install --no-upgrade -y git",
		"apt-mark manual git",
		"apt-mark auto vim",
	}, runner.commands)
}

func TestDnf_Commands(t *testing.T) {
	runner := &fakeRunner{output: "vim\n"}
	d := NewDnf(runner)

	pkgs, err := d.ExplicitlyInstalled(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"vim"}, pkgs)

	require.NoError(t, d.Install(context.Background(), []string{"git"}))
	require.NoError(t, d.MarkDependency(context.Background(), []string{"vim"}))

	assert.Equal(t, []string{
		"dnf repoquery --userinstalled --qf %{name}\n",
		"dnf install -y git",
		"dnf mark install git",
		"dnf mark remove vim",
	}, runner.commands)
}

func TestDetect_KnownOverrides(t *testing.T) {
	runner := &fakeRunner{}

	for override, want := range map[string]string{
		"pacman":  "pacman",
		"apt":     "apt-get",
		"apt-get": "apt-get",
		"dnf":     "dnf",
	} {
		m, err := Detect(runner, override)
		require.NoError(t, err, override)
		assert.Equal(t, want, m.Name(), override)
	}
}

func TestDetect_UnknownOverrideMissingFromPath(t *testing.T) {
	_, err := Detect(&fakeRunner{}, "definitely-not-a-real-manager")
	assert.Error(t, err)
}
