package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/plateaulabs/menuscan/internal/menu"
)

// Per-strategy confidence scores. Structured imports (spreadsheet,
// CSV) are trusted at 100 by the pipeline and never pass through
// these strategies.
const (
	ConfidenceInline    = 85
	ConfidenceTable     = 80
	ConfidenceMultiLine = 70
	ConfidenceFallback  = 50
)

// currencyAlt is the regex alternation of recognized currency
// markers, longest-first so "Rs." wins over "Rs".
const currencyAlt = `\$|₹|€|£|¥|Rs\.?|AED|USD|INR|EUR|GBP`

// priceGroup captures a price: up to six integer digits and an
// optional one- or two-digit decimal part with either separator.
const priceGroup = `\d{1,6}(?:[.,]\d{1,2})?`

// linePattern is one entry of the ordered inline pattern bank.
type linePattern struct {
	name string
	re   *regexp.Regexp
	// group indices within the match: name, currency, price
	nameIdx, currIdx, priceIdx int
}

// inlinePatterns is the priority-ordered bank of single-line
// templates. Every pattern is tried against every line; candidates
// are appended in bank order so deduplication keeps the highest-
// priority phrasing.
var inlinePatterns = []linePattern{
	{
		// "Chicken Biryani 250", "Margherita ... $ 12.50"
		name:     "name_first",
		re:       regexp.MustCompile(`^(.+?)[\s.\-:]*(` + currencyAlt + `)?\s*(` + priceGroup + `)$`),
		nameIdx:  1,
		currIdx:  2,
		priceIdx: 3,
	},
	{
		// "250 Chicken Biryani", "$12 Margherita"
		name:     "price_first",
		re:       regexp.MustCompile(`^(` + currencyAlt + `)?\s*(` + priceGroup + `)\s+(.+)$`),
		nameIdx:  3,
		currIdx:  1,
		priceIdx: 2,
	},
	{
		// "Chicken Biryani | 250", "Naan: 45", "Samosa - 30"
		name:     "separator",
		re:       regexp.MustCompile(`^(.+?)\s*[|:–—\-]\s*(` + currencyAlt + `)?\s*(` + priceGroup + `)\s*$`),
		nameIdx:  1,
		currIdx:  2,
		priceIdx: 3,
	},
	{
		// column-like spacing: "Chicken Biryani    250"
		name:     "columns",
		re:       regexp.MustCompile(`^(.+?)\s{2,}(` + currencyAlt + `)?\s*(` + priceGroup + `)\s*$`),
		nameIdx:  1,
		currIdx:  2,
		priceIdx: 3,
	},
	{
		// dot-fill leaders: "Chicken Biryani .......... 250"
		name:     "dot_leaders",
		re:       regexp.MustCompile(`^(.+?)\s*\.{2,}\s*(` + currencyAlt + `)?\s*(` + priceGroup + `)\s*$`),
		nameIdx:  1,
		currIdx:  2,
		priceIdx: 3,
	},
}

// ExtractInline applies the ordered pattern bank to every line of
// text and returns all candidate items at ConfidenceInline. Candidates
// appear in (line, pattern) order; downstream deduplication keeps the
// first phrasing of each (name, price) key.
func ExtractInline(text, defaultCurrency string) []menu.Item {
	var items []menu.Item
	for _, line := range SplitLines(text) {
		for _, p := range inlinePatterns {
			m := p.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			it, ok := extractFromMatch(m[p.nameIdx], m[p.currIdx], m[p.priceIdx], defaultCurrency)
			if !ok {
				continue
			}
			it.Confidence = ConfidenceInline
			it.Source = menu.SourceInline
			items = append(items, it)
		}
	}
	return items
}

// extractFromMatch builds an item from raw captured groups. A match
// is discarded unless it yields both a non-empty cleaned name and a
// positive price.
func extractFromMatch(rawName, rawCurrency, rawPrice, defaultCurrency string) (menu.Item, bool) {
	name := menu.CleanName(rawName)
	if name == "" || !startsWithLetter(name) {
		return menu.Item{}, false
	}
	price, ok := ParsePrice(rawPrice)
	if !ok || price <= 0 {
		return menu.Item{}, false
	}
	curr := strings.TrimSuffix(strings.TrimSpace(rawCurrency), ".")
	if curr == "" {
		curr = defaultCurrency
	}
	return menu.Item{Name: name, Price: price, Currency: curr}, true
}

// ParsePrice converts a captured price token to a float, normalizing
// locale decimals: a comma used as the sole separator is treated as
// the decimal point; with both separators present, commas are
// thousands markers and dropped.
func ParsePrice(tok string) (float64, bool) {
	s := strings.TrimSpace(tok)
	if s == "" {
		return 0, false
	}
	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		s = strings.ReplaceAll(s, ",", "")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// SplitLines breaks raw text into trimmed, non-empty lines.
func SplitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}

func startsWithLetter(s string) bool {
	for _, r := range s {
		return unicode.IsLetter(r)
	}
	return false
}
