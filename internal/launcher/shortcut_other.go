//go:build !windows

package launcher

import "github.com/pkg/errors"

var errShortcutsUnsupported = errors.New("desktop shortcuts are only supported on windows")

func CreateShortcut(exePath, name, iconPath string) (string, error) {
	return "", errShortcutsUnsupported
}
