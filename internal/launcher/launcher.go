// Package launcher starts the co-op launcher executables and creates
// desktop shortcuts for them. Processes are detached so closing this app
// never kills a running game.
package launcher

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

var ErrLauncherMissing = errors.New("launcher executable not found")

// Launch starts the given executable detached, with its working directory
// set to the executable's own directory so the mod finds its files.
func Launch(exePath string) error {
	info, err := os.Stat(exePath)
	if err != nil || info.IsDir() {
		return ErrLauncherMissing
	}
	return start(exePath, filepath.Dir(exePath))
}
