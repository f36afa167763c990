//go:build unit
// +build unit

package connector

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/car-catalog/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalImageConnector_SaveListDelete(t *testing.T) {
	root := filepath.Join(t.TempDir(), "images", "cars")
	store, err := NewLocalImageConnector(root, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	ctx := context.Background()
	name, err := store.Save(ctx, []byte("jpeg bytes"), ".JPG")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".jpg"))

	content, err := os.ReadFile(filepath.Join(root, name))
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(content))

	other, err := store.Save(ctx, []byte("png bytes"), ".png")
	require.NoError(t, err)
	assert.NotEqual(t, name, other)

	files, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		assert.False(t, f.ModTime.IsZero())
	}

	require.NoError(t, store.Delete(ctx, name))
	assert.False(t, testutil.FileExists(root, name))
	require.NoError(t, store.Delete(ctx, name), "deleting a missing file is not an error")
}

func TestLocalImageConnector_RejectsUnsafeInput(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalImageConnector(root, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	ctx := context.Background()
	_, err = store.Save(ctx, []byte("x"), "/../../etc")
	assert.Error(t, err)

	assert.Error(t, store.Delete(ctx, "../outside.jpg"))
	assert.Error(t, store.Delete(ctx, ""))
	assert.Empty(t, testutil.ListFiles(t, root))
}

func TestLocalImageConnector_ListSkipsDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "thumbs"), 0o755))
	require.NoError(t, testutil.CreateTestFile(filepath.Join(root, "a.jpg"), []byte("a")))

	store, err := NewLocalImageConnector(root, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	files, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "a.jpg", files[0].Name)
}

func TestLocalImageConnector_CanceledContext(t *testing.T) {
	store, err := NewLocalImageConnector(t.TempDir(), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Save(ctx, []byte("x"), ".jpg")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewLocalImageConnector_EmptyRoot(t *testing.T) {
	_, err := NewLocalImageConnector("", testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
