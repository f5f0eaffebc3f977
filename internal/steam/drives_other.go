//go:build !windows

package steam

import "os"

// driveRoots probes the mount points WSL and similar environments use for
// mapped Windows drives (/mnt/c, /c, ...).
func driveRoots() []string {
	var roots []string
	for c := 'a'; c <= 'z'; c++ {
		for _, prefix := range []string{"/mnt/" + string(c), "/" + string(c)} {
			if info, err := os.Stat(prefix); err == nil && info.IsDir() {
				roots = append(roots, prefix)
			}
		}
	}
	return roots
}
