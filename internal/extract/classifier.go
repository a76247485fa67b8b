// Package extract recovers (name, price) pairs from decoded menu or
// price-list text. Five stateless strategies run in fixed priority
// order over immutable input: inline patterns, multi-line pairs,
// column tables, and a last-resort proximity fallback, merged through
// a first-strategy-wins key set.
package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// Name plausibility bounds for a single line of text.
const (
	minLineNameLength = 3
	maxLineNameLength = 60
	maxAllCapsLength  = 15
)

var digitRunRe = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

// IsLikelyItemName reports whether a line of text is a plausible item
// name: length within [3, 60], starts with a letter, not shouting
// beyond 15 characters, and less than a third digits. It gates the
// multi-line and fallback strategies so stray numeric or symbol lines
// are never promoted to names.
func IsLikelyItemName(line string) bool {
	s := strings.TrimSpace(line)
	runes := []rune(s)
	if len(runes) < minLineNameLength || len(runes) > maxLineNameLength {
		return false
	}
	if !unicode.IsLetter(runes[0]) {
		return false
	}
	if len(runes) > maxAllCapsLength && isAllUpper(s) {
		return false
	}
	digits := 0
	for _, r := range runes {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits*3 < len(runes)
}

// ContainsPrice reports whether the line holds at least one run of
// digits, optionally with one decimal separator.
func ContainsPrice(line string) bool {
	return digitRunRe.MatchString(line)
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}
