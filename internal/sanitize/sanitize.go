// Package sanitize neutralises user-supplied listing text before it is
// stored: values are HTML-escaped and capped to a per-field length.
package sanitize

import "html"

const (
	MaxName        = 100
	MaxDescription = 500
	MaxCategory    = 50
	MaxImage       = 200
)

// Clean escapes s and truncates the escaped form to max runes.
func Clean(s string, max int) string {
	escaped := []rune(html.EscapeString(s))
	if len(escaped) > max {
		escaped = escaped[:max]
	}
	return string(escaped)
}
