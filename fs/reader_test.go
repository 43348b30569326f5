package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/pagescan"
	"github.com/fwojciec/pagescan/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads UTF-8 content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "index.html")
		require.NoError(t, os.WriteFile(path, []byte("<title>Café</title>"), 0644))

		content, err := fs.ReadFile(path)

		require.NoError(t, err)
		assert.Equal(t, "<title>Café</title>", content)
	})

	t.Run("reads empty file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "empty.html")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		content, err := fs.ReadFile(path)

		require.NoError(t, err)
		assert.Empty(t, content)
	})

	t.Run("returns not found for missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.html")

		_, err := fs.ReadFile(path)

		require.Error(t, err)
		assert.Equal(t, pagescan.ENOTFOUND, pagescan.ErrorCode(err))
		assert.Contains(t, pagescan.ErrorMessage(err), "missing.html")
	})

	t.Run("rejects invalid UTF-8", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "latin1.html")
		require.NoError(t, os.WriteFile(path, []byte("<title>Caf\xe9</title>"), 0644))

		_, err := fs.ReadFile(path)

		require.Error(t, err)
		assert.Equal(t, pagescan.EINVALID, pagescan.ErrorCode(err))
	})

	t.Run("fails on directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ReadFile(t.TempDir())

		require.Error(t, err)
		assert.Equal(t, pagescan.EINTERNAL, pagescan.ErrorCode(err))
	})
}
