package ini

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	optStartRe    = regexp.MustCompile(`(\d+)\s*=\s*`)
	pipeSplitRe   = regexp.MustCompile(`\s*\|\s*`)
	optPartRe     = regexp.MustCompile(`^(\d+)\s*=\s*(.+)`)
	spacedOptsRe  = regexp.MustCompile(`(\d+)\s*=\s*([A-Za-z][A-Za-z_ ()\-]*?)(?:\s{2,}|\s*$)`)
	wordRangeRe   = regexp.MustCompile(`(?i)(?:between|from)\s+(\d+)\s+(?:and|to)\s+(\d+)`)
	pipeRangeRe   = regexp.MustCompile(`\((\d+)\s*=\s*\w+\s*\|\s*(\d+)\s*=\s*\w+`)
	boolHintRe    = regexp.MustCompile(`(?i)(if enabled|if set to 1|0\s*=\s*false)`)
	defaultHintRe = regexp.MustCompile(`(?i)\bdefault[:\s]+(\d+)`)
)

// ParseFile parses an INI file into sections with inferred metadata.
// The defaults map supplies factory values by key; a "Default: N" hint in a
// setting's comment is used when the map has no entry.
func ParseFile(path string, defaults map[string]string) ([]Section, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open settings file")
	}
	defer f.Close()
	return Parse(f, defaults)
}

// Parse reads INI content from r. Comment lines (;) directly above a setting
// become its description; a blank line breaks the association.
func Parse(r io.Reader, defaults map[string]string) ([]Section, error) {
	var (
		sections      []Section
		current       *Section
		commentBuffer []string
	)

	sc := bufio.NewScanner(r)
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		stripped := strings.TrimSpace(line)

		switch {
		case stripped == "":
			commentBuffer = nil

		case strings.HasPrefix(stripped, "[") && strings.HasSuffix(stripped, "]"):
			sections = append(sections, Section{Name: stripped[1 : len(stripped)-1]})
			current = &sections[len(sections)-1]
			commentBuffer = nil

		case strings.HasPrefix(stripped, ";"):
			commentBuffer = append(commentBuffer, strings.TrimSpace(strings.TrimLeft(stripped, "; ")))

		case strings.Contains(stripped, "=") && current != nil:
			key, val, _ := strings.Cut(stripped, "=")
			key = strings.TrimSpace(key)
			val = strings.TrimSpace(val)
			description := strings.TrimSpace(strings.Join(commentBuffer, " "))
			commentBuffer = nil

			s := inferSetting(key, val, description)
			if def, ok := defaults[key]; ok {
				s.Default = def
			} else if description != "" {
				if m := defaultHintRe.FindStringSubmatch(description); m != nil {
					s.Default = m[1]
				}
			}
			current.Settings = append(current.Settings, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "scan settings file")
	}
	return sections, nil
}

// inferSetting classifies a setting as select/number/text from its comment.
func inferSetting(key, value, description string) Setting {
	s := Setting{Key: key, Value: value, Description: description, Type: "text"}

	if description != "" {
		if opts := extractOptions(description); opts != nil {
			s.Type = "select"
			s.Options = opts
			return s
		}
		// Boolean phrasing plus a 0/1 value reads as an on/off switch.
		v := strings.TrimSpace(value)
		if (v == "0" || v == "1") && boolHintRe.MatchString(description) {
			s.Type = "select"
			s.Options = []Option{{Value: "0", Label: "Disabled"}, {Value: "1", Label: "Enabled"}}
			return s
		}
	}

	if isInteger(value) {
		s.Type = "number"
		if description != "" {
			s.Min, s.Max = extractRange(description)
		}
		return s
	}
	return s
}

// extractOptions pulls selectable options out of comment text. It understands
//
//	0 = Disabled | 1 = Enabled (no lock-on) | 2 = Enabled (with lock-on)
//	0=FALSE  1=TRUE
//
// and returns nil when the text does not describe an enumeration.
func extractOptions(text string) []Option {
	// Pipe-separated list, starting from the first "N =" occurrence.
	if loc := optStartRe.FindStringIndex(text); loc != nil {
		parts := pipeSplitRe.Split(text[loc[0]:], -1)
		if len(parts) >= 2 {
			var opts []Option
			for _, part := range parts {
				m := optPartRe.FindStringSubmatch(strings.TrimSpace(part))
				if m == nil {
					continue
				}
				label := strings.TrimSpace(m[2])
				// Drop a trailing close-paren only when it is unmatched.
				if strings.HasSuffix(label, ")") && !strings.Contains(label, "(") {
					label = strings.TrimRight(label, ")")
				}
				opts = append(opts, Option{Value: m[1], Label: label})
			}
			if len(opts) >= 3 {
				return opts
			}
			if len(opts) == 2 {
				// Two close values (0/1) are an enum; a wide span (0/10) is a
				// range hint, not a select.
				vals := optionValues(opts)
				if vals[len(vals)-1]-vals[0] <= 2 {
					return opts
				}
			}
		}
	}

	// Double-space separated "0=FALSE  1=TRUE" style.
	matches := spacedOptsRe.FindAllStringSubmatch(text, -1)
	if len(matches) >= 2 {
		vals := make([]int, 0, len(matches))
		for _, m := range matches {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return nil
			}
			vals = append(vals, n)
		}
		sort.Ints(vals)
		if vals[len(vals)-1]-vals[0] <= len(matches) {
			opts := make([]Option, 0, len(matches))
			for _, m := range matches {
				opts = append(opts, Option{Value: m[1], Label: strings.TrimSpace(m[2])})
			}
			return opts
		}
	}
	return nil
}

// extractRange pulls min/max bounds from comment text.
func extractRange(text string) (*int, *int) {
	if m := wordRangeRe.FindStringSubmatch(text); m != nil {
		low, _ := strconv.Atoi(m[1])
		high, _ := strconv.Atoi(m[2])
		return &low, &high
	}
	// "(0 = Mute | 10 = max)" style; only a wide span counts as a range.
	if m := pipeRangeRe.FindStringSubmatch(text); m != nil {
		low, _ := strconv.Atoi(m[1])
		high, _ := strconv.Atoi(m[2])
		if high-low > 2 {
			return &low, &high
		}
	}
	return nil, nil
}

func optionValues(opts []Option) []int {
	vals := make([]int, 0, len(opts))
	for _, o := range opts {
		n, _ := strconv.Atoi(o.Value)
		vals = append(vals, n)
	}
	sort.Ints(vals)
	return vals
}

func isInteger(s string) bool {
	s = strings.TrimPrefix(strings.TrimSpace(s), "-")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
