package util

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Compose returns text in Unicode normalization form C, so that a letter followed by
// a combining mark is turned into the single precomposed character the accent tables map.
func Compose(text string) string {
	return norm.NFC.String(text)
}

// NormalizeText builds a search key: text is composed, passed through removeDiacritics,
// lowercased, stripped of everything except letters and digits and its whitespace is
// collapsed into single spaces.
func NormalizeText(text string, removeDiacritics func(string) string) string {
	text = removeDiacritics(Compose(text))
	text = cases.Lower(language.Und).String(text)
	result := make([]rune, 0, len(text))
	for _, r := range text {
		// replace all space characters with ' '
		if unicode.IsSpace(r) {
			if len(result) == 0 || result[len(result)-1] != ' ' {
				result = append(result, ' ')
			}
			continue
		}
		// discard non letter/digit characters
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		result = append(result, r)
	}
	return string(result)
}
