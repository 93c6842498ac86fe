package storage_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"livecast/core/storage"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiskStore(t *testing.T) (*storage.DiskStore, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	store, err := storage.NewDiskStore(fs, "templates")
	require.NoError(t, err)
	return store, fs
}

func TestDiskStore_SaveAndOpen(t *testing.T) {
	store, _ := newDiskStore(t)
	ctx := context.Background()

	content := "<h1>Promo</h1>"
	require.NoError(t, store.Save(ctx, "promo.html", strings.NewReader(content), int64(len(content))))

	rc, err := store.Open(ctx, "promo.html")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestDiskStore_SaveOverwrites(t *testing.T) {
	store, _ := newDiskStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a.html", strings.NewReader("first version"), 13))
	require.NoError(t, store.Save(ctx, "a.html", strings.NewReader("v2"), 2))

	rc, err := store.Open(ctx, "a.html")
	require.NoError(t, err)
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	assert.Equal(t, "v2", string(data))
}

func TestDiskStore_TraversalStaysInside(t *testing.T) {
	store, fs := newDiskStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "../evil.html", strings.NewReader("x"), 1))

	exists, err := afero.Exists(fs, "templates/evil.html")
	require.NoError(t, err)
	assert.True(t, exists)

	outside, err := afero.Exists(fs, "evil.html")
	require.NoError(t, err)
	assert.False(t, outside)
}

func TestDiskStore_OpenMissing(t *testing.T) {
	store, fs := newDiskStore(t)
	require.NoError(t, fs.MkdirAll("templates/sub", 0o755))

	_, err := store.Open(context.Background(), "nope.html")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = store.Open(context.Background(), "sub")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDiskStore_List(t *testing.T) {
	store, fs := newDiskStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "b.html", strings.NewReader("bb"), 2))
	require.NoError(t, store.Save(ctx, "a.html", strings.NewReader("a"), 1))
	require.NoError(t, fs.MkdirAll("templates/folder", 0o755))

	objects, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "a.html", objects[0].Name)
	assert.Equal(t, int64(1), objects[0].Size)
	assert.Equal(t, "b.html", objects[1].Name)
}
