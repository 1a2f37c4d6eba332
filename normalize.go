package pronouns

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers keep state between calls, so each helper builds its own.

// TitleCase upper-cases the first letter of every word in s using English
// casing rules, e.g. "they" -> "They".
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// NormalizeWord trims and lower-cases s. The loader applies it to every
// dataset form and ParseKey to every URL segment, so "She" finds "she".
// Lower-casing keeps letters such as "ß" intact where full case folding
// would rewrite them.
func NormalizeWord(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}
