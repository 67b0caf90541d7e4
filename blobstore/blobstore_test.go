package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorePutOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewLocalStore(dir)

	data := []byte("name,sequence,raw_alignment_score\nseq2,AATTCCCCGG,10.0\n")
	require.NoError(t, store.Put(ctx, "scores.csv", data))

	// The artifact is at the expected path, with no temp files left behind.
	assert.FileExists(t, filepath.Join(dir, "scores.csv"))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	rc, err := store.Open(ctx, "scores.csv")
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, data, got)
}

func TestLocalStorePutMissingDir(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "does-not-exist"))

	err := store.Put(context.Background(), "scores.csv", []byte("x"))
	require.Error(t, err)
}

func TestLocalStoreDeleteAndList(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())

	require.NoError(t, store.Put(ctx, "a.csv", []byte("a")))
	require.NoError(t, store.Put(ctx, "b.csv", []byte("b")))
	require.NoError(t, store.Put(ctx, "b.json", []byte("b")))

	names, err := store.List(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"b.csv", "b.json"}, names)

	require.NoError(t, store.Delete(ctx, "a.csv"))
	require.NoError(t, store.Delete(ctx, "a.csv")) // idempotent

	names, err = store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"b.csv", "b.json"}, names)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Open(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, "scores.csv", []byte("data")))

	rc, err := store.Open(ctx, "scores.csv")
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), got)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"scores.csv"}, names)

	require.NoError(t, store.Delete(ctx, "scores.csv"))
	_, err = store.Open(ctx, "scores.csv")
	assert.ErrorIs(t, err, ErrNotFound)
}
