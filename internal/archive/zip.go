// Package archive extracts downloaded mod archives into a game directory.
package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotZip is returned when the file is not a readable zip archive.
var ErrNotZip = errors.New("not a valid zip archive")

// IsZip reports whether the file at path can be opened as a zip archive.
func IsZip(path string) bool {
	r, err := zip.OpenReader(path)
	if err != nil {
		return false
	}
	_ = r.Close()
	return true
}

// ExtractZip unpacks the archive into dest. Mod authors often wrap releases
// in a single top-level folder; when every entry shares one, that folder is
// stripped so files land directly in dest. Entries that would escape dest
// are rejected. Returns the number of files written.
func ExtractZip(path, dest string) (int, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return 0, errors.Wrap(ErrNotZip, err.Error())
	}
	defer r.Close()

	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	root := commonRoot(names)

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return 0, errors.Wrap(err, "create extract target")
	}

	extracted := 0
	for _, f := range r.File {
		name := filepath.ToSlash(f.Name)
		if strings.HasSuffix(name, "/") {
			continue
		}
		if root != "" {
			if name == root {
				continue
			}
			name = strings.TrimPrefix(name, root+"/")
		}

		target := filepath.Join(dest, filepath.FromSlash(name))
		if !insideDir(target, dest) {
			return extracted, errors.Errorf("archive contains unsafe path: %s", f.Name)
		}

		if err := writeEntry(f, target); err != nil {
			return extracted, err
		}
		extracted++
	}
	return extracted, nil
}

func writeEntry(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.Wrap(err, "create entry directory")
	}
	src, err := f.Open()
	if err != nil {
		return errors.Wrapf(err, "open archive entry %s", f.Name)
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrapf(err, "create %s", target)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return errors.Wrapf(err, "write %s", target)
	}
	return nil
}

// commonRoot returns the single top-level folder shared by every entry,
// or "" when entries do not share one.
func commonRoot(names []string) string {
	if len(names) == 0 {
		return ""
	}
	first, _, _ := strings.Cut(filepath.ToSlash(names[0]), "/")
	if first == "" || first == "." || first == ".." {
		return ""
	}
	nested := false
	for _, n := range names {
		n = filepath.ToSlash(n)
		if strings.HasPrefix(n, first+"/") {
			nested = true
		} else if n != first {
			return ""
		}
	}
	if !nested {
		// A lone top-level file is content, not a wrapper folder.
		return ""
	}
	return first
}

// insideDir reports whether target stays within dir after path cleaning.
func insideDir(target, dir string) bool {
	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
