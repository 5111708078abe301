//go:build linux

package xdbgout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStatus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "status")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDebuggerPresent(t *testing.T) {
	restore := statusPath
	t.Cleanup(func() { statusPath = restore })

	t.Run("TracerPid 非零视为已附加", func(t *testing.T) {
		statusPath = writeStatus(t, "Name:\tvlogctl\nTracerPid:\t1234\nUid:\t0\n")
		assert.True(t, debuggerPresent())
	})

	t.Run("TracerPid 为零视为未附加", func(t *testing.T) {
		statusPath = writeStatus(t, "Name:\tvlogctl\nTracerPid:\t0\nUid:\t0\n")
		assert.False(t, debuggerPresent())
	})

	t.Run("缺少 TracerPid 字段", func(t *testing.T) {
		statusPath = writeStatus(t, "Name:\tvlogctl\nUid:\t0\n")
		assert.False(t, debuggerPresent())
	})

	t.Run("文件不可读时保守返回未附加", func(t *testing.T) {
		statusPath = filepath.Join(t.TempDir(), "missing")
		assert.False(t, debuggerPresent())
	})
}
