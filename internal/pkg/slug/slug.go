package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonWord = regexp.MustCompile(`[^a-z0-9]+`)

// stripMarks decomposes characters and drops combining marks, turning
// "é" into "e" and "ç" into "c".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives a URL-safe identifier from a human title: lower-case,
// diacritics stripped, runs of anything else collapsed to a single hyphen,
// leading and trailing hyphens trimmed. Idempotent.
func Slugify(title string) string {
	s, _, err := transform.String(stripMarks, title)
	if err != nil {
		s = title
	}
	s = strings.ToLower(s)
	s = nonWord.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Assign picks the slug for a record: a manual override wins, otherwise the
// slug derives from the title. Generation is pure and never checks the
// store; uniqueness is enforced only at the repository create/update
// boundary, which rejects duplicates with a conflict.
func Assign(title, override string) string {
	if s := strings.TrimSpace(override); s != "" {
		return Slugify(s)
	}
	return Slugify(title)
}
