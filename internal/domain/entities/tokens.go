package entities

import "regexp"

// Token syntax of the originating strings format: `{name}` placeholder slots
// filled by the host at render time, and whole-value `[%key:a::b::c%]`
// indirection references pointing at shared text.
var (
	placeholderPattern = regexp.MustCompile(`\{([a-z][a-z0-9_]*)\}`)
	indirectionPattern = regexp.MustCompile(`^\[%key:([a-z][a-z0-9_]*(?:::[a-z][a-z0-9_]*)+)%\]$`)
)

// Placeholders returns the placeholder tokens in s with their number of
// occurrences, e.g. {"entity": 2, "info": 2}. An empty map means the string
// is literal text.
func Placeholders(s string) map[string]int {
	counts := map[string]int{}
	for _, match := range placeholderPattern.FindAllStringSubmatch(s, -1) {
		counts[match[1]]++
	}
	return counts
}

// IndirectionRef reports whether s is an indirection reference, and if so
// returns the double-colon-delimited reference path.
func IndirectionRef(s string) (string, bool) {
	match := indirectionPattern.FindStringSubmatch(s)
	if match == nil {
		return "", false
	}
	return match[1], true
}
