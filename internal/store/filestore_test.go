package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	ctx := context.Background()

	_, ok, err := fs.Get(ctx, KeyAccounts)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, fs.Set(ctx, KeyAccounts, []byte(`{"a@b.com":{}}`)))

	raw, ok, err := fs.Get(ctx, KeyAccounts)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"a@b.com":{}}`, string(raw))

	// Overwrite replaces the whole document.
	require.NoError(t, fs.Set(ctx, KeyAccounts, []byte(`{}`)))
	raw, ok, err = fs.Get(ctx, KeyAccounts)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{}`, string(raw))
}

func TestFileStoreDelete(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, fs.Set(ctx, KeyCurrent, []byte(`{"email":"a@b.com"}`)))
	require.NoError(t, fs.Delete(ctx, KeyCurrent))

	_, ok, err := fs.Get(ctx, KeyCurrent)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error.
	require.NoError(t, fs.Delete(ctx, KeyCurrent))
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, fs.Set(ctx, KeyEvents, []byte(`[]`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, KeyEvents+".json", filepath.Base(entries[0].Name()))
}
