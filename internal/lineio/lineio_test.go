package lineio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadLines(t *testing.T) {
	path := writeFile(t, "one\ntwo\n\n# comment\nthree\n")

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "", "# comment", "three"}, lines)
}

func TestReadLines_NoTrailingNewline(t *testing.T) {
	path := writeFile(t, "one\ntwo")

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, lines)
}

func TestReadLines_CRLF(t *testing.T) {
	path := writeFile(t, "one\r\ntwo\r\n")

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, lines)
}

func TestRewrite_DropLines(t *testing.T) {
	path := writeFile(t, "keep\ndrop\nkeep2\n")

	changed, err := Rewrite(path, func(line string) (string, bool) {
		return line, line != "drop"
	})
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep\nkeep2\n", string(data))
}

func TestRewrite_ReplaceLine(t *testing.T) {
	path := writeFile(t, "old\n# old stays in comments\nother\n")

	changed, err := Rewrite(path, func(line string) (string, bool) {
		if Clean(line) == "old" {
			return "new", true
		}
		return line, true
	})
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n# old stays in comments\nother\n", string(data))
}

// An identity transform must not touch the file at all.
func TestRewrite_UnchangedSkipsWrite(t *testing.T) {
	path := writeFile(t, "a\nb\n")

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))
	before, err := os.Stat(path)
	require.NoError(t, err)

	changed, err := Rewrite(path, func(line string) (string, bool) { return line, true })
	require.NoError(t, err)
	assert.False(t, changed)

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime(), "no-op rewrite must not modify the file")
}

func TestRewrite_MissingFile(t *testing.T) {
	_, err := Rewrite(filepath.Join(t.TempDir(), "absent"), func(line string) (string, bool) {
		return line, true
	})
	assert.Error(t, err)
}

func TestIgnored(t *testing.T) {
	assert.True(t, Ignored(""))
	assert.True(t, Ignored("   "))
	assert.True(t, Ignored("# comment"))
	assert.True(t, Ignored("  # indented comment"))
	assert.False(t, Ignored("package"))
	assert.False(t, Ignored("  package  "))
}
