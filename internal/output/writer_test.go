package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bharatsindhu/username-history/internal/history"
)

func TestWriteLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)

	require.NoError(t, WriteLines(path, []string{"alpha", "beta"}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "alpha\nbeta\n", string(got))
}

func TestWriteLinesTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer\n"), 0o644))

	require.NoError(t, WriteLines(path, []string{"ünïcode"}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ünïcode\n", string(got))
}

func TestWriteLinesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0o644))

	require.NoError(t, WriteLines(path, nil))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestWriteLinesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", DefaultPath)

	err := WriteLines(path, []string{"a"})
	require.Error(t, err)
	assert.ErrorIs(t, err, history.ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
