// Package lineio provides line-granular operations over flat text files.
//
// It is the persistence primitive for package set files: read all lines,
// apply a per-line transform, and write the file back only when the result
// actually differs. Writes are atomic (temp file + rename) so a crash never
// leaves a half-rewritten file behind.
package lineio

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Transform is applied to each line of a file during Rewrite. The returned
// string replaces the line; keep=false drops the line entirely.
type Transform func(line string) (out string, keep bool)

// Clean strips leading and trailing whitespace from a line.
func Clean(line string) string {
	return strings.TrimSpace(line)
}

// Ignored reports whether a line carries no membership: blank after
// stripping, or a '#' comment.
func Ignored(line string) bool {
	c := Clean(line)
	return c == "" || strings.HasPrefix(c, "#")
}

// ReadLines returns the lines of the file at path, without trailing
// newlines. A final newline does not produce an empty trailing line.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits text into lines, tolerating CRLF endings and a missing
// final newline.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// JoinLines is the inverse of SplitLines: every line gets a trailing
// newline, so non-empty files always end in one.
func JoinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Rewrite applies fn to every line of the file at path and writes the
// result back. The file is left untouched (no write, no mtime change) when
// the transformed lines equal the originals. Returns whether the file was
// rewritten.
func Rewrite(path string, fn Transform) (bool, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if replaced, keep := fn(line); keep {
			out = append(out, replaced)
		}
	}

	if slices.Equal(lines, out) {
		return false, nil
	}

	if err := atomicWrite(path, []byte(JoinLines(out)), 0644); err != nil {
		return false, fmt.Errorf("failed to rewrite %s: %w", path, err)
	}
	return true, nil
}

// atomicWrite writes data to path via a temp file in the same directory and
// a rename, so readers never observe a partial file.
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".pkgset-tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	tmp = nil
	return nil
}
