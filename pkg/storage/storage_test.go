package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiskStore(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store, err := NewDiskStore(root)
	require.NoError(t, err)

	path, err := store.Save(filepath.Join("articles", "l-1"), ".jpg", strings.NewReader("not really a jpeg"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(path, filepath.Join("articles", "l-1")+string(filepath.Separator)))
	require.Equal(t, ".jpg", filepath.Ext(path))

	data, err := os.ReadFile(filepath.Join(root, path))
	require.NoError(t, err)
	require.Equal(t, "not really a jpeg", string(data))

	require.NoError(t, store.Remove(path))
	_, err = os.Stat(filepath.Join(root, path))
	require.True(t, os.IsNotExist(err))

	// two saves never collide
	p1, err := store.Save("avatars", ".png", strings.NewReader("a"))
	require.NoError(t, err)
	p2, err := store.Save("avatars", ".png", strings.NewReader("b"))
	require.NoError(t, err)
	require.NotEqual(t, p1, p2)
}
