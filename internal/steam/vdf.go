package steam

import (
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var vdfPathRe = regexp.MustCompile(`"path"\s+"([^"]+)"`)

// ParseLibraryFolders extracts Steam library paths from a libraryfolders.vdf
// stream. The file is Valve's KeyValues format; only the "path" entries
// matter here, so a full parser is not warranted.
func ParseLibraryFolders(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read libraryfolders.vdf")
	}
	var paths []string
	for _, m := range vdfPathRe.FindAllStringSubmatch(string(data), -1) {
		// VDF escapes backslashes.
		paths = append(paths, strings.ReplaceAll(m[1], `\\`, `\`))
	}
	return paths, nil
}

// parseLibraryFoldersFile is the file-path convenience wrapper; a missing or
// unreadable file yields no paths, matching the best-effort scan contract.
func parseLibraryFoldersFile(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	paths, err := ParseLibraryFolders(f)
	if err != nil {
		return nil
	}
	return paths
}
