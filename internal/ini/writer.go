package ini

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// WriteSettings rewrites the values of the given keys in an INI file while
// leaving every other line byte-for-byte intact: comments, section headers,
// blank lines, unknown keys, and indentation all survive. Keys present in
// values but absent from the file are not appended.
func WriteSettings(path string, values map[string]string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read settings file")
	}

	lines := strings.SplitAfter(string(data), "\n")
	var b strings.Builder
	for _, raw := range lines {
		line := strings.TrimRight(raw, "\r\n")
		stripped := strings.TrimSpace(line)
		if stripped != "" &&
			!strings.HasPrefix(stripped, ";") &&
			!strings.HasPrefix(stripped, "[") &&
			strings.Contains(stripped, "=") {
			key := strings.TrimSpace(strings.SplitN(stripped, "=", 2)[0])
			if v, ok := values[key]; ok {
				indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
				b.WriteString(indent)
				b.WriteString(key)
				b.WriteString(" = ")
				b.WriteString(v)
				b.WriteString("\n")
				continue
			}
		}
		b.WriteString(raw)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return errors.Wrap(err, "write settings file")
	}
	return nil
}

// Merge carries values from an old INI (raw bytes) into the file at newPath
// for keys present in both, matching key names case-insensitively. The new
// file's structure, comments, and any keys the old file lacked are kept.
// Returns the number of values carried over.
func Merge(newPath string, oldData []byte) (int, error) {
	oldValues := make(map[string]string)
	for _, line := range strings.Split(string(oldData), "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, ";") || strings.HasPrefix(stripped, "#") {
			continue
		}
		if key, val, ok := strings.Cut(stripped, "="); ok {
			oldValues[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(val)
		}
	}
	if len(oldValues) == 0 {
		return 0, nil
	}

	data, err := os.ReadFile(newPath)
	if err != nil {
		return 0, errors.Wrap(err, "read new settings file")
	}

	changed := 0
	lines := strings.SplitAfter(string(data), "\n")
	var b strings.Builder
	for _, raw := range lines {
		stripped := strings.TrimSpace(strings.TrimRight(raw, "\r\n"))
		if stripped != "" && !strings.HasPrefix(stripped, ";") && !strings.HasPrefix(stripped, "#") {
			if key, val, ok := strings.Cut(stripped, "="); ok {
				keyTrimmed := strings.TrimSpace(key)
				if oldVal, found := oldValues[strings.ToLower(keyTrimmed)]; found && oldVal != strings.TrimSpace(val) {
					b.WriteString(keyTrimmed)
					b.WriteString(" = ")
					b.WriteString(oldVal)
					b.WriteString("\n")
					changed++
					continue
				}
			}
		}
		b.WriteString(raw)
	}

	if changed > 0 {
		if err := os.WriteFile(newPath, []byte(b.String()), 0o644); err != nil {
			return 0, errors.Wrap(err, "write merged settings file")
		}
	}
	return changed, nil
}
