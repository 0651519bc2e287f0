// Package sets manages named, file-backed package sets.
//
// A set is a flat text file under the sets root: one package name per line,
// blank lines and '#' comments ignored for membership but preserved by every
// rewrite. A parallel empty marker file under the installed-sets root records
// whether the set is installed.
//
// Key components:
//   - Set: value type for one named set; identity is the name alone
//   - Registry: enumerates sets and installed sets, resolves names, and
//     accumulates membership across sets
package sets

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkgset-dev/pkgset/internal/lineio"
	"github.com/pkgset-dev/pkgset/internal/stringset"
)

var (
	// ErrNotFound indicates a named set has no backing file.
	ErrNotFound = errors.New("set not found")

	// ErrExists indicates a set being created already exists.
	ErrExists = errors.New("set already exists")

	// ErrCorruptState indicates an installed marker without a backing set.
	ErrCorruptState = errors.New("corrupt state")

	// ErrInvalidName indicates a set name unusable as a file name.
	ErrInvalidName = errors.New("invalid set name")
)

// Set is one named package set. Two Set values from the same Registry are
// equal exactly when their names are equal; membership is always read from
// disk on demand, never cached.
type Set struct {
	// Name is the set's unique identifier and file name.
	Name string

	setsDir      string
	installedDir string
}

// Path returns the set's backing file path.
func (s Set) Path() string {
	return filepath.Join(s.setsDir, s.Name)
}

// markerPath returns the set's installed marker path.
func (s Set) markerPath() string {
	return filepath.Join(s.installedDir, s.Name)
}

// Exists reports whether the backing file is present.
func (s Set) Exists() (bool, error) {
	_, err := os.Lstat(s.Path())
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Get reads the set's membership: every line that is neither blank nor a
// comment, stripped of surrounding whitespace.
func (s Set) Get() (stringset.Set[string], error) {
	lines, err := lineio.ReadLines(s.Path())
	if err != nil {
		return nil, fmt.Errorf("failed to read set %s: %w", s.Name, err)
	}

	members := stringset.New[string]()
	for _, line := range lines {
		if !lineio.Ignored(line) {
			members.Add(lineio.Clean(line))
		}
	}
	return members, nil
}

// Create creates the backing file and merges pkgs into it. It fails with
// ErrExists when the set already has a backing file.
func (s Set) Create(pkgs []string) ([]string, error) {
	exists, err := s.Exists()
	if err != nil {
		return nil, fmt.Errorf("failed to check set %s: %w", s.Name, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrExists, s.Name)
	}
	return s.Merge(pkgs)
}

// Merge appends every package not already present in the file and returns
// the appended names in argument order. "Already present" compares against
// raw stripped lines, so a name that only occurs commented out still counts
// as present: merge never re-adds something the user deliberately commented
// out. The read and the append happen on a single file handle.
func (s Set) Merge(pkgs []string) ([]string, error) {
	f, err := os.OpenFile(s.Path(), os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open set %s: %w", s.Name, err)
	}
	defer func() {
		_ = f.Close()
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read set %s: %w", s.Name, err)
	}

	present := stringset.New[string]()
	for _, line := range lineio.SplitLines(string(data)) {
		clean := lineio.Clean(line)
		present.Add(clean)
		if strings.HasPrefix(clean, "#") {
			// A commented-out name still counts as present, so merge
			// never re-adds something the user deliberately disabled.
			present.Add(lineio.Clean(strings.TrimLeft(clean, "#")))
		}
	}

	var extra []string
	for _, pkg := range pkgs {
		if !present.Has(pkg) {
			extra = append(extra, pkg)
			present.Add(pkg)
		}
	}

	if len(extra) == 0 {
		return nil, nil
	}

	var b strings.Builder
	if len(data) > 0 && data[len(data)-1] != '\n' {
		b.WriteByte('\n')
	}
	b.WriteString(lineio.JoinLines(extra))

	if _, err := f.WriteString(b.String()); err != nil {
		return nil, fmt.Errorf("failed to append to set %s: %w", s.Name, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close set %s: %w", s.Name, err)
	}

	return extra, nil
}

// Remove drops every line whose stripped content is one of pkgs. Comment
// lines are never touched, even when their text matches.
func (s Set) Remove(pkgs []string) error {
	drop := stringset.New(pkgs...)
	_, err := lineio.Rewrite(s.Path(), func(line string) (string, bool) {
		if lineio.Ignored(line) {
			return line, true
		}
		return line, !drop.Has(lineio.Clean(line))
	})
	if err != nil {
		return fmt.Errorf("failed to remove from set %s: %w", s.Name, err)
	}
	return nil
}

// Replace rewrites every line whose stripped content exactly equals old to
// new, reporting whether the file changed. All other lines pass through
// unchanged, including comments and lines where old appears only as a
// substring.
func (s Set) Replace(old, new string) (bool, error) {
	changed, err := lineio.Rewrite(s.Path(), func(line string) (string, bool) {
		if lineio.Clean(line) == old {
			return new, true
		}
		return line, true
	})
	if err != nil {
		return false, fmt.Errorf("failed to replace in set %s: %w", s.Name, err)
	}
	return changed, nil
}

// Installed reports whether the installed marker is present.
func (s Set) Installed() (bool, error) {
	_, err := os.Lstat(s.markerPath())
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// MarkInstalled creates the installed marker. No-op if already present.
func (s Set) MarkInstalled() error {
	f, err := os.OpenFile(s.markerPath(), os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to mark set %s installed: %w", s.Name, err)
	}
	return f.Close()
}

// MarkUninstalled removes the installed marker. No-op if already absent.
func (s Set) MarkUninstalled() error {
	if err := os.Remove(s.markerPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to mark set %s uninstalled: %w", s.Name, err)
	}
	return nil
}

// validateName validates a set name for use as a file name.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, string(filepath.Separator)) {
		return fmt.Errorf("%w: %q must not contain path separators", ErrInvalidName, name)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
