package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kamranshamim45/ai-job-portal/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStorage(t *testing.T) *LocalStorage {
	t.Helper()

	store, err := NewLocalStorage(config.StorageConfig{
		BasePath: t.TempDir(),
		BaseURL:  "/api/files/",
	})
	require.NoError(t, err)
	return store
}

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestLocalStorage(t)

	url, err := store.Save(ctx, "resumes/u1/cv.pdf", strings.NewReader("%PDF-1.4"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "/api/files/resumes/u1/cv.pdf", url)

	data, err := os.ReadFile(filepath.Join(store.BasePath(), "resumes/u1/cv.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	require.NoError(t, store.Delete(ctx, "resumes/u1/cv.pdf"))
	_, err = os.Stat(filepath.Join(store.BasePath(), "resumes/u1/cv.pdf"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_DeleteMissingIsNoop(t *testing.T) {
	store := newTestLocalStorage(t)
	assert.NoError(t, store.Delete(context.Background(), "never/existed.pdf"))
}

func TestLocalStorage_Defaults(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(config.StorageConfig{BasePath: dir})
	require.NoError(t, err)
	assert.Equal(t, "/api/files/a.png", store.URL("a.png"))
}

func TestNew_SelectsBackend(t *testing.T) {
	store, err := New(config.StorageConfig{Type: "local", BasePath: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, store)

	_, err = New(config.StorageConfig{Type: "ftp"})
	assert.Error(t, err)
}
