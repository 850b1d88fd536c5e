package sysfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFirstLine(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "cpuinfo", "model name: Xeon  \nsecond line\n")

	tree := NewTree(root)

	line, err := tree.FirstLine("cpuinfo")
	require.NoError(t, err)
	assert.Equal(t, "model name: Xeon", line, "trailing whitespace stripped")
}

func TestFirstLineMissing(t *testing.T) {
	tree := NewTree(t.TempDir())

	_, err := tree.FirstLine("no/such/file")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFirstLineEmptyFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "empty", "")

	tree := NewTree(root)

	line, err := tree.FirstLine("empty")
	require.NoError(t, err, "found but empty is distinct from not found")
	assert.Equal(t, "", line)
}

func TestFirstLineDefault(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "present", "value\n")

	tree := NewTree(root)

	assert.Equal(t, "value", tree.FirstLineDefault("present", "fallback"))
	assert.Equal(t, "fallback", tree.FirstLineDefault("absent", "fallback"))
}

func TestLines(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "data", "one\ntwo  \nthree\n")

	tree := NewTree(root)

	assert.Equal(t, []string{"one", "two", "three"}, tree.Lines("data"))
}

func TestLinesMissingFile(t *testing.T) {
	tree := NewTree(t.TempDir())

	assert.Nil(t, tree.Lines("absent"), "missing file yields no lines, not an error")
}

func TestLinesNotAFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dir"), 0o755))

	tree := NewTree(root)

	assert.Nil(t, tree.Lines("dir"))
}

func TestSubDirs(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "class/hwmon/hwmon0"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "class/hwmon/hwmon1"), 0o755))
	writeFile(t, root, "class/hwmon/notadir", "x")

	tree := NewTree(root)

	assert.ElementsMatch(t, []string{"hwmon0", "hwmon1"}, tree.SubDirs("class/hwmon"))
	assert.Nil(t, tree.SubDirs("class/missing"))
}
