//go:build windows

package steam

import (
	"os"

	"golang.org/x/sys/windows"
)

// driveRoots returns every mounted drive root (C:\, D:\, ...).
func driveRoots() []string {
	var roots []string
	if mask, err := windows.GetLogicalDrives(); err == nil && mask != 0 {
		for i := 0; i < 26; i++ {
			if mask&(1<<uint(i)) != 0 {
				roots = append(roots, string(rune('A'+i))+`:\`)
			}
		}
		return roots
	}
	// Fallback: brute-force stat every letter.
	for c := 'A'; c <= 'Z'; c++ {
		root := string(c) + `:\`
		if _, err := os.Stat(root); err == nil {
			roots = append(roots, root)
		}
	}
	return roots
}
