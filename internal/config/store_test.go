package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStore_RoundTrip(t *testing.T) {
	store := NewDefaultStoreWithPath(filepath.Join(t.TempDir(), "isim", "default"))

	require.NoError(t, store.Set("A1B2C3D4-E5F6-7890-ABCD-EF1234567890"))

	got, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, "A1B2C3D4-E5F6-7890-ABCD-EF1234567890", got)
}

func TestDefaultStore_GetUnset(t *testing.T) {
	store := NewDefaultStoreWithPath(filepath.Join(t.TempDir(), "default"))

	got, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestDefaultStore_SetOverwrites(t *testing.T) {
	store := NewDefaultStoreWithPath(filepath.Join(t.TempDir(), "default"))

	require.NoError(t, store.Set("FIRST"))
	require.NoError(t, store.Set("SECOND"))

	got, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, "SECOND", got)
}

func TestDefaultStore_FileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default")
	store := NewDefaultStoreWithPath(path)

	require.NoError(t, store.Set("ABCD-1234"))

	// One identifier line, trailing newline, nothing else.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ABCD-1234\n", string(data))
}

func TestDefaultStore_Clear(t *testing.T) {
	store := NewDefaultStoreWithPath(filepath.Join(t.TempDir(), "default"))

	require.NoError(t, store.Set("ABCD-1234"))
	require.NoError(t, store.Clear())

	got, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, "", got)

	// Clearing when nothing is stored is not an error.
	require.NoError(t, store.Clear())
}

func TestDefaultStore_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	store := NewDefaultStoreWithPath(filepath.Join(dir, "default"))

	require.NoError(t, store.Set("ABCD-1234"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "default", entries[0].Name())
}
