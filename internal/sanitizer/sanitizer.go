// Package sanitizer strips markup and unsafe characters from raw form input
// before it is validated or stored.
package sanitizer

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	tagPattern    = regexp.MustCompile(`<[^>]*>`)
	unsafePattern = regexp.MustCompile(`[<>"'&]`)
)

// Sanitize removes every tag-like `<...>` span, then every remaining
// `<`, `>`, `"`, `'` and `&`, then trims surrounding whitespace.
// It is total and idempotent.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	text = tagPattern.ReplaceAllString(text, "")
	text = unsafePattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// Normalize composes decomposed Unicode sequences (NFC), so "a" followed by a
// combining acute accent becomes a single "á".
func Normalize(text string) string {
	return norm.NFC.String(text)
}

// Clean is Sanitize followed by Normalize. This is what the intake pipeline
// applies to every field.
func Clean(text string) string {
	return Normalize(Sanitize(text))
}
