package models

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	info, ok := Find("vosk-model-small-ru-0.22")
	require.True(t, ok)
	assert.Equal(t, "ru", info.Locale)

	_, ok = Find("no-such-model")
	assert.False(t, ok)
}

func TestForLocale(t *testing.T) {
	info, ok := ForLocale("en")
	require.True(t, ok)
	assert.Equal(t, "vosk-model-small-en-us-0.15", info.Dir)

	_, ok = ForLocale("de")
	assert.False(t, ok)
}

func TestEnsureExistingDir(t *testing.T) {
	dir := t.TempDir()

	path, err := Ensure(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, dir, path)
}

func TestEnsureUnknownModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-model")

	_, err := Ensure(context.Background(), path)
	assert.Error(t, err)
}

func writeZip(t *testing.T, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "model.zip")
	f, err := os.Create(path)
	require.NoError(t, err)

	w := zip.NewWriter(f)
	for name, body := range entries {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	return path
}

func TestUnzip(t *testing.T) {
	archive := writeZip(t, map[string]string{
		"model/am/final.mdl": "weights",
		"model/conf/mfcc":    "conf",
	})
	dest := t.TempDir()

	require.NoError(t, unzip(archive, dest))

	data, err := os.ReadFile(filepath.Join(dest, "model", "am", "final.mdl"))
	require.NoError(t, err)
	assert.Equal(t, "weights", string(data))
}

func TestUnzipRejectsTraversal(t *testing.T) {
	archive := writeZip(t, map[string]string{
		"../escape.txt": "nope",
	})

	err := unzip(archive, t.TempDir())
	assert.Error(t, err)
}
