package enumeration

import (
	"regexp"
	"strings"
	"unicode"
)

// Section is the grouping context opened by a header line. All data lines
// that follow belong to it until the next header.
type Section struct {
	// Entity is the DXCC entity (country) code taken from the header.
	Entity int
}

// Subdivision is a single state, province, or similar region parsed from a
// data line.
type Subdivision struct {
	Entity int    // DXCC entity code of the enclosing section.
	Code   string // Subdivision code (e.g. "AK").
	Name   string // Display name.

	// Type is reserved. The enumeration format carries no type column so it
	// is always nil.
	Type *string

	// CQZone and ITUZone hold the cleaned zone text, or nil when absent.
	// They are kept as text because cleaned tokens may still carry
	// non-numeric characters such as "1,2" or "(3)".
	CQZone  *string
	ITUZone *string
}

// minFields is the number of tokens a data line needs (code and name).
const minFields = 2

var multiSpace = regexp.MustCompile(`\s{2,}`)

// Tokenize splits a data line into trimmed, non-empty columns. A line that
// contains a tab is split on tabs only. Otherwise it is split on runs of two
// or more whitespace characters, so single spaces inside a name are kept.
func Tokenize(line string) []string {
	var parts []string
	if strings.Contains(line, "\t") {
		parts = strings.Split(line, "\t")
	} else {
		parts = multiSpace.Split(line, -1)
	}

	tokens := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// ParseRow parses a data line belonging to the given entity. It returns
// false when the line has fewer than two columns.
func ParseRow(entity int, line string) (Subdivision, bool) {
	tokens := Tokenize(line)
	if len(tokens) < minFields {
		return Subdivision{}, false
	}

	cq, itu := ExtractZones(tokens[minFields:])
	return Subdivision{
		Entity:  entity,
		Code:    tokens[0],
		Name:    tokens[1],
		CQZone:  cq,
		ITUZone: itu,
	}, true
}

// ExtractZones scans the candidate columns from right to left. The first
// column containing a digit becomes the CQ zone and the next one the ITU
// zone. Other columns are ignored. A lone zone column is always reported as
// the CQ zone since columns carry no labels.
func ExtractZones(candidates []string) (cq, itu *string) {
	var haveCQ, haveITU bool
	for i := len(candidates) - 1; i >= 0 && !(haveCQ && haveITU); i-- {
		tok := candidates[i]
		if !hasDigit(tok) {
			continue
		}
		if !haveCQ {
			cq, haveCQ = CleanZone(tok), true
			continue
		}
		itu, haveITU = CleanZone(tok), true
	}
	return cq, itu
}

// CleanZone strips ASCII letters and '=' from a zone column, so "S=16" and
// "T17" both become "16" and "17". It returns nil if nothing is left.
func CleanZone(tok string) *string {
	s := strings.Map(func(r rune) rune {
		if r == '=' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			return -1
		}
		return r
	}, strings.TrimSpace(tok))

	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}
