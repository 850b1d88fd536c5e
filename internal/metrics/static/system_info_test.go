package static

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchmeta/agent/internal/sysfs"
)

func writeASLR(t *testing.T, root, value string) {
	t.Helper()
	path := filepath.Join(root, "sys/kernel/randomize_va_space")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(value), 0o644))
}

func TestReadASLR(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"0", "No randomization"},
		{"1", "Conservative randomization"},
		{"2", "Full randomization"},
		{"9", ""},
	}

	for _, tt := range tests {
		root := t.TempDir()
		writeASLR(t, root, tt.value+"\n")
		assert.Equal(t, tt.want, readASLR(sysfs.NewTree(root)), "value %q", tt.value)
	}
}

func TestReadASLRMissingSource(t *testing.T) {
	assert.Equal(t, "", readASLR(sysfs.NewTree(t.TempDir())))
}

func TestCollectSystemInfoBestEffort(t *testing.T) {
	// Missing proc tree must not prevent the other lookups.
	info := CollectSystemInfo(context.Background(), sysfs.NewTree(t.TempDir()))
	require.NotNil(t, info)
	assert.Equal(t, "", info.ASLR)
	assert.NotEqual(t, "", info.Hostname)
}

func TestCollectRuntimeInfo(t *testing.T) {
	info := CollectRuntimeInfo()
	assert.True(t, strings.HasPrefix(info.Version, "go"), "version %q", info.Version)
	assert.Contains(t, info.Version, "-bit)")
	assert.NotEqual(t, "", info.Implementation)
}
