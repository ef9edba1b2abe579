// Package slug derives URL-safe route segments from post titles.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Make converts a title into a URL-safe slug: lowercase, accents stripped to
// their base letter, anything outside [a-z0-9] dropped, and runs of
// whitespace or hyphens collapsed into a single interior hyphen. A title with
// no letters or digits yields the empty string; callers decide whether that is
// an error.
func Make(title string) string {
	s := strings.ToLower(title)

	// Decompose accented characters and drop the combining marks, so
	// "café" becomes "cafe" rather than losing the letter entirely.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(t, s); err == nil {
		s = stripped
	}

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			pendingSep = true
		}
		// Any other character is punctuation or symbol noise and is dropped
		// without acting as a separator.
	}
	return b.String()
}
