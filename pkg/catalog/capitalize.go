package catalog

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first letter of every space-separated word.
// Hyphens are not word boundaries; use Humanize for slug-like input.
func Capitalize(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 || r == utf8.RuneError {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// Spaced replaces every hyphen in a slug fragment with a space.
func Spaced(s string) string {
	return strings.ReplaceAll(s, "-", " ")
}

// Humanize turns a slug fragment into display text: "real-estate" becomes "Real Estate".
func Humanize(s string) string {
	return Capitalize(Spaced(s))
}
