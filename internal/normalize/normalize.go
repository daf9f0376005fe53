// Package normalize provides utilities for normalizing free-text input.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// letterReplacements maps the Latvian diacritic letters to their base letter.
// Other accented letters are not folded and are dropped by NameLetters.
//
//nolint:gochecknoglobals // Static lookup table for name normalization
var letterReplacements = map[rune]rune{
	'ā': 'a',
	'č': 'c',
	'ē': 'e',
	'ģ': 'g',
	'ī': 'i',
	'ķ': 'k',
	'ļ': 'l',
	'ņ': 'n',
	'š': 's',
	'ū': 'u',
	'ž': 'z',
}

// NameLetters reduces a free-text name to its ordered lowercase a-z letters.
// "Jānis Bērziņš" -> "janisberzins".
// "O'Brien-Smith" -> "obriensmith".
// An empty result means no usable name was supplied.
func NameLetters(name string) string {
	lower := cases.Lower(language.Und).String(name)

	var b strings.Builder
	b.Grow(len(lower))

	for _, r := range lower {
		if base, ok := letterReplacements[r]; ok {
			r = base
		}
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

