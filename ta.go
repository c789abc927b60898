package coursetab

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// taTokens are matched as whole words, case-insensitively. A word is a run
// of Latin letters and digits, so "王小明TA" contains the word "ta".
var taTokens = []string{"ta"}

// taTerms are matched anywhere in the name.
var taTerms = []string{"助教", "教學助理"}

// IsTA reports whether a teacher cell names a teaching assistant.
func IsTA(name string) bool {
	name = strings.ToLower(width.Fold.String(strings.TrimSpace(name)))
	if name == "" {
		return false
	}
	for _, term := range taTerms {
		if strings.Contains(name, term) {
			return true
		}
	}
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.Is(unicode.Latin, r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		for _, tok := range taTokens {
			if w == tok {
				return true
			}
		}
	}
	return false
}
