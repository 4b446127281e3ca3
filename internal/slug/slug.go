// Package slug derives URL-safe lookup keys for listings.
//
// New listings use the current listing count as the slug base, existing
// listings keep their row id when the title changes. The properties table
// has a unique index on slug; callers retry with WithSuffix on conflict.
package slug

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make builds the slug for a numeric base and title,
// e.g. Make(3, "Nice House") == "3-nice-house".
func Make(base int64, title string) string {
	return Slugify(strconv.FormatInt(base, 10) + " " + title)
}

// Slugify lowercases the input, folds accented characters to their ASCII
// base and collapses every non-alphanumeric run into a single hyphen.
func Slugify(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		// Diacritic folding is best effort; fall back to the raw input.
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	lastHyphen := true // leading separators are dropped
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// WithSuffix appends a short random suffix, used to resolve slug
// collisions under concurrent creation.
func WithSuffix(s string) string {
	buf := make([]byte, 3)
	_, _ = rand.Read(buf)
	return s + "-" + hex.EncodeToString(buf)
}
