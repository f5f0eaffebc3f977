package nexus

import (
	"regexp"
	"strconv"
	"strings"
)

var versionPrefixRe = regexp.MustCompile(`^v?(\d+(?:\.\d+)*)`)

// normalize extracts the leading dotted-numeric part of a version string.
// "v1.7.8 beta" becomes "1.7.8"; a string with no numeric prefix yields "".
func normalize(v string) string {
	m := versionPrefixRe.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return ""
	}
	return m[1]
}

// Compare orders two version strings numerically component by component,
// padding the shorter one with zeros. It returns -1, 0, or 1, and false when
// either side has no recognizable version number.
func Compare(a, b string) (int, bool) {
	na, nb := normalize(a), normalize(b)
	if na == "" || nb == "" {
		return 0, false
	}

	pa := strings.Split(na, ".")
	pb := strings.Split(nb, ".")
	for len(pa) < len(pb) {
		pa = append(pa, "0")
	}
	for len(pb) < len(pa) {
		pb = append(pb, "0")
	}

	for i := range pa {
		x, _ := strconv.Atoi(pa[i])
		y, _ := strconv.Atoi(pb[i])
		if x < y {
			return -1, true
		}
		if x > y {
			return 1, true
		}
	}
	return 0, true
}

// HasUpdate reports whether latest is newer than installed. An installed
// version that cannot be determined counts as outdated so the user is
// prompted to update.
func HasUpdate(installed, latest string) bool {
	if normalize(latest) == "" {
		return false
	}
	if normalize(installed) == "" {
		return true
	}
	cmp, ok := Compare(installed, latest)
	return ok && cmp < 0
}
