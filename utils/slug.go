// Package utils holds small helpers shared across handlers.
package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars    = regexp.MustCompile(`[^a-z0-9-]+`)
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a URL-safe slug from a title: accents are stripped,
// the result is lower-cased, spaces become hyphens, and anything else
// non-alphanumeric is dropped. The derivation is deterministic, so the
// same title always yields the same slug.
func Slugify(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	slug, _, _ := transform.String(t, title)

	slug = strings.ToLower(slug)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = nonSlugChars.ReplaceAllString(slug, "")
	slug = multipleHyphens.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}
