package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildZip(t *testing.T, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mod.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range entries {
		if content == "" && name[len(name)-1] == '/' {
			_, err := w.Create(name)
			require.NoError(t, err)
			continue
		}
		ew, err := w.Create(name)
		require.NoError(t, err)
		_, err = ew.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return path
}

func TestExtractZipStripsCommonRoot(t *testing.T) {
	zipPath := buildZip(t, map[string]string{
		"SeamlessCoop/":             "",
		"SeamlessCoop/ersc.dll":     "dll bytes",
		"SeamlessCoop/settings.ini": "[A]\nkey = 1\n",
	})
	dest := t.TempDir()

	n, err := ExtractZip(zipPath, dest)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.FileExists(t, filepath.Join(dest, "ersc.dll"))
	assert.FileExists(t, filepath.Join(dest, "settings.ini"))
	assert.NoDirExists(t, filepath.Join(dest, "SeamlessCoop"))
}

func TestExtractZipFlatArchive(t *testing.T) {
	zipPath := buildZip(t, map[string]string{
		"launcher.exe": "exe",
		"readme.txt":   "hi",
	})
	dest := t.TempDir()

	n, err := ExtractZip(zipPath, dest)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.FileExists(t, filepath.Join(dest, "launcher.exe"))
	assert.FileExists(t, filepath.Join(dest, "readme.txt"))
}

func TestExtractZipSingleFile(t *testing.T) {
	zipPath := buildZip(t, map[string]string{"only.dll": "x"})
	dest := t.TempDir()

	n, err := ExtractZip(zipPath, dest)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.FileExists(t, filepath.Join(dest, "only.dll"))
}

func TestExtractZipRejectsTraversal(t *testing.T) {
	zipPath := buildZip(t, map[string]string{"../evil.txt": "nope"})
	dest := t.TempDir()

	_, err := ExtractZip(zipPath, dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsafe path")
	assert.NoFileExists(t, filepath.Join(filepath.Dir(dest), "evil.txt"))
}

func TestExtractZipNestedDirs(t *testing.T) {
	zipPath := buildZip(t, map[string]string{
		"Mod/sub/deep/file.bin": "data",
		"Mod/top.txt":           "t",
	})
	dest := t.TempDir()

	n, err := ExtractZip(zipPath, dest)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.FileExists(t, filepath.Join(dest, "sub", "deep", "file.bin"))
	assert.FileExists(t, filepath.Join(dest, "top.txt"))
}

func TestIsZip(t *testing.T) {
	zipPath := buildZip(t, map[string]string{"a.txt": "a"})
	assert.True(t, IsZip(zipPath))

	notZip := filepath.Join(t.TempDir(), "fake.zip")
	require.NoError(t, os.WriteFile(notZip, []byte("plain text"), 0o644))
	assert.False(t, IsZip(notZip))
}
