// Package sysfs provides best-effort line access to pseudo-filesystem
// trees such as /proc and /sys. Probes built on top treat a missing or
// unreadable path as "source unavailable", never as an error.
package sysfs

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by FirstLine when the path does not exist or
// cannot be read.
var ErrNotFound = errors.New("file not found")

// Tree reads text files below a fixed root directory.
type Tree struct {
	root string
}

// NewTree creates a reader rooted at dir (e.g. /proc or /sys).
func NewTree(dir string) *Tree {
	return &Tree{root: dir}
}

// Root returns the root directory of the tree.
func (t *Tree) Root() string {
	return t.root
}

// Path resolves a relative path against the tree root.
func (t *Tree) Path(rel string) string {
	return filepath.Join(t.root, rel)
}

// FirstLine reads the first line of a file with trailing whitespace
// stripped. Any access failure is reported as ErrNotFound.
func (t *Tree) FirstLine(rel string) (string, error) {
	f, err := os.Open(t.Path(rel))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, rel)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("%w: %s", ErrNotFound, rel)
		}
		return "", nil
	}
	return strings.TrimRight(scanner.Text(), " \t\r\n"), nil
}

// FirstLineDefault reads the first line of a file, returning def when
// the file is missing or unreadable.
func (t *Tree) FirstLineDefault(rel, def string) string {
	line, err := t.FirstLine(rel)
	if err != nil {
		return def
	}
	return line
}

// Lines reads all lines of a file with trailing whitespace stripped.
// On any access failure it returns nil rather than an error.
func (t *Tree) Lines(rel string) []string {
	f, err := os.Open(t.Path(rel))
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), " \t\r\n"))
	}
	if scanner.Err() != nil {
		return nil
	}
	return lines
}

// SubDirs lists the immediate subdirectory names below rel. On any
// access failure it returns nil. Symlinks are included since sysfs
// device directories are commonly symlinked.
func (t *Tree) SubDirs(rel string) []string {
	entries, err := os.ReadDir(t.Path(rel))
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || e.Type()&os.ModeSymlink != 0 {
			names = append(names, e.Name())
		}
	}
	return names
}
