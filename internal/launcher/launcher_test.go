package launcher

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaunchMissingExecutable(t *testing.T) {
	err := Launch(filepath.Join(t.TempDir(), "ersc_launcher.exe"))
	assert.ErrorIs(t, err, ErrLauncherMissing)
}

func TestLaunchRejectsDirectory(t *testing.T) {
	err := Launch(t.TempDir())
	assert.ErrorIs(t, err, ErrLauncherMissing)
}
