package menu

import (
	"regexp"
	"strings"

	"golang.org/x/text/currency"
)

// DefaultCurrency is used when no currency marker is found anywhere
// in the document.
const DefaultCurrency = "$"

// currencyLexicon lists the recognized currency markers in tie-break
// order: symbols first, then codes. The dominant marker of a document
// seeds the default currency for items without their own marker.
var currencyLexicon = []string{"$", "₹", "€", "£", "¥", "AED", "USD", "INR", "EUR", "GBP", "Rs"}

var (
	codeTokenRe = regexp.MustCompile(`\b[A-Z]{3}\b`)
	wordBreakRe = regexp.MustCompile(`[A-Za-z]`)
)

// DetectCurrency scans raw text and returns the dominant currency
// marker. Symbols are counted by plain occurrence; codes are counted
// at word boundaries only, so "Rs" inside "Hours" does not count.
// Ties break by lexicon order; no marker at all yields DefaultCurrency.
func DetectCurrency(text string) string {
	if strings.TrimSpace(text) == "" {
		return DefaultCurrency
	}

	counts := make(map[string]int, len(currencyLexicon))
	for _, marker := range currencyLexicon {
		if wordBreakRe.MatchString(marker) {
			counts[marker] = countWordOccurrences(text, marker)
		} else {
			counts[marker] = strings.Count(text, marker)
		}
	}

	// Any further well-formed ISO-4217 code present in the text also
	// participates, validated through x/text so arbitrary uppercase
	// triples ("THE", "FRI") are not mistaken for currencies.
	var extra []string
	for _, tok := range codeTokenRe.FindAllString(text, -1) {
		if _, inLexicon := counts[tok]; inLexicon {
			continue
		}
		if _, err := currency.ParseISO(tok); err != nil {
			continue
		}
		extra = append(extra, tok)
	}
	for _, tok := range extra {
		counts[tok] = countWordOccurrences(text, tok)
	}

	best := ""
	bestCount := 0
	for _, marker := range append(append([]string{}, currencyLexicon...), extra...) {
		if counts[marker] > bestCount {
			best = marker
			bestCount = counts[marker]
		}
	}
	if bestCount == 0 {
		return DefaultCurrency
	}
	return best
}

// countWordOccurrences counts occurrences of marker that are not part
// of a longer alphabetic token.
func countWordOccurrences(text, marker string) int {
	count := 0
	for start := 0; ; {
		i := strings.Index(text[start:], marker)
		if i < 0 {
			break
		}
		pos := start + i
		end := pos + len(marker)
		beforeOK := pos == 0 || !isWordByte(text[pos-1])
		afterOK := end >= len(text) || !isWordByte(text[end])
		// "Rs." and "Rs " both count; "Rsx" does not.
		if beforeOK && afterOK {
			count++
		}
		start = end
	}
	return count
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
