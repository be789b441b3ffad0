// Where: internal/scad/sanitize.go
// What: Filesystem-safe names derived from display names.
// Why: Script and model files are named after the person on the tag.
package scad

import (
	"strings"
	"unicode"
)

// SafeName maps a display name to a filesystem-safe base name: every rune
// that is not a letter, digit, space, hyphen, or underscore becomes an
// underscore, then the result is trimmed and internal spaces become
// underscores. Distinct names can sanitize to the same base name; the
// later request overwrites the earlier one's output.
func SafeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return strings.ReplaceAll(strings.TrimSpace(b.String()), " ", "_")
}
