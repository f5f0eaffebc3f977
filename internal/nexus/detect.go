package nexus

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// versionFileNames are checked inside the mod directory, in order.
var versionFileNames = []string{"VERSION", "version.txt", ".version"}

// dllVersionRe matches a dotted version embedded as a printable string in a
// binary, e.g. "1.7.8" or "1.7.8.0".
var dllVersionRe = regexp.MustCompile(`(\d+)\.(\d+)\.(\d+)(?:\.(\d+))?`)

// archiveVersionRe pulls a version out of a downloaded archive filename,
// e.g. "Seamless Co-op v1.7.8.zip".
var archiveVersionRe = regexp.MustCompile(`v?(\d+\.\d+(?:\.\d+){0,2})`)

// dllScanLimit bounds how much of a DLL is searched for a version string.
const dllScanLimit = 4096

// InstalledVersion determines which mod version is present in modDir. It
// prefers an explicit version file, then falls back to scanning the mod's
// DLLs for an embedded version string. Returns "" when nothing is found.
func InstalledVersion(modDir string) string {
	if modDir == "" {
		return ""
	}

	for _, name := range versionFileNames {
		data, err := os.ReadFile(filepath.Join(modDir, name))
		if err != nil {
			continue
		}
		if v := normalize(strings.TrimSpace(string(data))); v != "" {
			return v
		}
	}

	entries, err := os.ReadDir(modDir)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".dll") {
			continue
		}
		if v := versionFromBinary(filepath.Join(modDir, e.Name())); v != "" {
			return v
		}
	}
	return ""
}

// versionFromBinary scans the head of a binary for a dotted version string.
func versionFromBinary(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	buf := make([]byte, dllScanLimit)
	n, _ := f.Read(buf)
	if n == 0 {
		return ""
	}
	m := dllVersionRe.Find(buf[:n])
	if m == nil {
		return ""
	}
	return normalize(string(m))
}

// VersionFromArchiveName extracts the version from a mod archive filename.
// The last match wins so "ds3 v2 seamless coop v1.5.2.zip" yields "1.5.2".
func VersionFromArchiveName(name string) string {
	matches := archiveVersionRe.FindAllStringSubmatch(name, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1][1]
}
