package docblock

import (
	"regexp"
	"strings"
)

var (
	blockRE     = regexp.MustCompile(`^\s*(/\*\*[\s\S]*?\*/)`)
	lineStripRE = regexp.MustCompile(`(?m)^\s*\*+\s?`)
	directiveRE = regexp.MustCompile(`^@(\S+)\s*(.*)$`)
)

// providesModuleKey declares a legacy, globally-named module identifier.
const providesModuleKey = "providesModule"

// Directive is one parsed @key value annotation.
type Directive struct {
	Key   string
	Value string
}

// Extract returns the raw docblock at the top of source, or "" when the
// file does not start with one.
func Extract(source string) string {
	m := blockRE.FindStringSubmatch(source)
	if m == nil {
		return ""
	}

	return m[1]
}

// Parse returns the docblock's directives in order of appearance.
func Parse(source string) []Directive {
	block := Extract(source)
	if block == "" {
		return nil
	}

	body := strings.TrimSuffix(strings.TrimPrefix(block, "/**"), "*/")
	body = lineStripRE.ReplaceAllString(body, "")

	var out []Directive
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if m := directiveRE.FindStringSubmatch(line); m != nil {
			out = append(out, Directive{Key: m[1], Value: m[2]})
		} else if line != "" && len(out) > 0 {
			// Non-directive lines continue the previous value.
			last := &out[len(out)-1]
			if last.Value == "" {
				last.Value = line
			} else {
				last.Value += " " + line
			}
		}
	}

	return out
}

// Directives flattens Parse into a key/value set. Repeated keys keep the
// last value.
func Directives(source string) map[string]string {
	parsed := Parse(source)
	if parsed == nil {
		return nil
	}

	out := make(map[string]string, len(parsed))
	for _, d := range parsed {
		out[d.Key] = d.Value
	}

	return out
}

// ProvidesModule returns the legacy module identifier declared by the first
// @providesModule directive, or "" when the file declares none.
func ProvidesModule(source string) string {
	for _, d := range Parse(source) {
		if d.Key == providesModuleKey {
			if fields := strings.Fields(d.Value); len(fields) > 0 {
				return fields[0]
			}
			return ""
		}
	}

	return ""
}
