package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStorageCreateAndOpen(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	w, err := store.Create("reports/term1/out.txt")
	require.NoError(t, err)
	_, err = io.WriteString(w, "hello\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	require.Equal(t, filepath.Join(dir, "reports", "term1", "out.txt"), store.Path("reports/term1/out.txt"))

	r, err := store.Open("reports/term1/out.txt")
	require.NoError(t, err)
	defer r.Close() //nolint:errcheck
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "hello\n", string(data))
}

func TestLocalStorageOpenMissing(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Open("missing.txt")
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalStorageAbsolutePath(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	abs := filepath.Join(t.TempDir(), "name.txt")
	require.NoError(t, os.WriteFile(abs, []byte("123456789,Alice\n"), 0o644))
	require.Equal(t, abs, store.Path(abs))

	r, err := store.Open(abs)
	require.NoError(t, err)
	require.NoError(t, r.Close())
}
