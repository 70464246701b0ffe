package validation

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CapitalizeWords trims value, splits it on whitespace runs, upper-cases the
// first character of each word using tag's casing rules, and joins the words
// with single spaces. The rest of each word is left untouched.
func CapitalizeWords(value string, tag language.Tag) string {
	words := strings.Fields(value)
	if len(words) == 0 {
		return ""
	}
	upper := cases.Upper(tag)
	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		if first == utf8.RuneError && size <= 1 {
			continue
		}
		words[i] = upper.String(string(first)) + word[size:]
	}
	return strings.Join(words, " ")
}
