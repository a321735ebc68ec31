package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalObjectStorage_UploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalObjectStorage(dir, "/uploads")
	require.NoError(t, err)
	ctx := context.Background()

	url, err := store.Upload(ctx, "vendors/abc/pan_card.pdf", []byte("content"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/vendors/abc/pan_card.pdf", url)

	data, err := os.ReadFile(filepath.Join(dir, "vendors", "abc", "pan_card.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)

	require.NoError(t, store.Delete(ctx, "vendors/abc/pan_card.pdf"))
	_, err = os.Stat(filepath.Join(dir, "vendors", "abc", "pan_card.pdf"))
	assert.True(t, os.IsNotExist(err))

	// Deleting again is a no-op
	assert.NoError(t, store.Delete(ctx, "vendors/abc/pan_card.pdf"))
}

func TestLocalObjectStorage_RejectsTraversal(t *testing.T) {
	store, err := NewLocalObjectStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, err = store.Upload(context.Background(), "../outside.txt", []byte("x"), "text/plain")
	assert.Error(t, err)
}

func TestLocalObjectStorage_EmptyKey(t *testing.T) {
	store, err := NewLocalObjectStorage(t.TempDir(), "")
	require.NoError(t, err)

	_, err = store.Upload(context.Background(), "", nil, "")
	assert.Error(t, err)

	assert.Error(t, store.Delete(context.Background(), ""))
}

func TestLocalObjectStorage_PresignDownload(t *testing.T) {
	store, err := NewLocalObjectStorage(t.TempDir(), "/files")
	require.NoError(t, err)

	url, expires, err := store.PresignDownload(context.Background(), "a/b.png", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "/files/a/b.png", url)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, time.Minute)
}
