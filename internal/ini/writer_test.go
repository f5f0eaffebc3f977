package ini

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestWriteSettings(t *testing.T) {
	content := "; header comment\n[GAMEPLAY]\n; doc\nallow_invaders = 1\n  skip_intros = 0\nuntouched = 7\n"
	path := writeTemp(t, content)

	err := WriteSettings(path, map[string]string{
		"allow_invaders": "0",
		"skip_intros":    "1",
		"missing_key":    "9",
	})
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "; header comment\n[GAMEPLAY]\n; doc\nallow_invaders = 0\n  skip_intros = 1\nuntouched = 7\n"
	assert.Equal(t, want, string(got))
	assert.NotContains(t, string(got), "missing_key", "unknown keys are not appended")
}

func TestWriteSettingsLeavesCommentsAndHeaders(t *testing.T) {
	content := "[A]\n; key = looks like assignment\nkey = 1\n"
	path := writeTemp(t, content)

	require.NoError(t, WriteSettings(path, map[string]string{"key": "2"}))

	got, _ := os.ReadFile(path)
	assert.Equal(t, "[A]\n; key = looks like assignment\nkey = 2\n", string(got))
}

func TestMerge(t *testing.T) {
	newContent := "[GAMEPLAY]\n; doc\nallow_invaders = 1\nnew_feature = 0\n"
	path := writeTemp(t, newContent)

	oldContent := "[GAMEPLAY]\nALLOW_INVADERS = 0\nremoved_key = 5\n"
	changed, err := Merge(path, []byte(oldContent))
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	got, _ := os.ReadFile(path)
	assert.Contains(t, string(got), "allow_invaders = 0", "old value carried over, case-insensitive key match")
	assert.Contains(t, string(got), "new_feature = 0", "keys the old file lacked keep the new value")
	assert.NotContains(t, string(got), "removed_key")
}

func TestMergeNoOldValues(t *testing.T) {
	path := writeTemp(t, "[A]\nkey = 1\n")
	changed, err := Merge(path, []byte("; comments only\n"))
	require.NoError(t, err)
	assert.Zero(t, changed)
}

func TestMergeIdenticalValuesUntouched(t *testing.T) {
	content := "[A]\nkey = 1\n"
	path := writeTemp(t, content)
	changed, err := Merge(path, []byte("key = 1\n"))
	require.NoError(t, err)
	assert.Zero(t, changed)

	got, _ := os.ReadFile(path)
	assert.Equal(t, content, string(got))
}
