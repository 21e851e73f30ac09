package gotable

import (
	"strings"
	"unicode"
)

// knownAbbreviations maps lowercase abbreviations to their Go-conventional
// uppercase forms.
var knownAbbreviations = map[string]string{
	"id":   "ID",
	"ids":  "IDs",
	"dxcc": "DXCC",
	"cq":   "CQ",
	"itu":  "ITU",
	"iso":  "ISO",
	"us":   "US",
	"uk":   "UK",
	"sql":  "SQL",
}

// ToGoName converts a table name (e.g. "states_provinces") into an
// exported Go identifier (e.g. "StatesProvinces"). It handles snake_case,
// kebab-case, dot-separated, and camelCase input.
func ToGoName(name string) string {
	var b strings.Builder
	for _, w := range splitWords(name) {
		if upper, ok := knownAbbreviations[strings.ToLower(w)]; ok {
			b.WriteString(upper)
		} else {
			b.WriteString(capitalize(w))
		}
	}
	return b.String()
}

// splitWords breaks an identifier into its component words.
func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == '.':
			flush()
		case unicode.IsUpper(r):
			// "dxccEntity" splits before 'E'; "DXCCEntity" splits before
			// the 'E' that starts a lowercase run.
			if current.Len() > 0 && i > 0 && unicode.IsLower(runes[i-1]) {
				flush()
			} else if current.Len() > 1 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				flush()
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return words
}

// capitalize returns s with its first rune uppercased and the rest lowercased.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
