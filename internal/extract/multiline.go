package extract

import (
	"regexp"

	"github.com/plateaulabs/menuscan/internal/menu"
)

// priceOnlyRe matches a line holding nothing but an optional currency
// marker and one price token.
var priceOnlyRe = regexp.MustCompile(`^\s*(` + currencyAlt + `)?\s*(` + priceGroup + `)\s*$`)

// ExtractMultiLine recovers pairs split across two adjacent lines: a
// plausible name line followed by a price-only line. The price line
// is consumed and never reused by a later iteration.
func ExtractMultiLine(text, defaultCurrency string) []menu.Item {
	lines := SplitLines(text)
	var items []menu.Item
	for i := 0; i < len(lines)-1; i++ {
		if ContainsPrice(lines[i]) {
			continue
		}
		if !IsLikelyItemName(lines[i]) {
			continue
		}
		m := priceOnlyRe.FindStringSubmatch(lines[i+1])
		if m == nil {
			continue
		}
		it, ok := extractFromMatch(lines[i], m[1], m[2], defaultCurrency)
		if !ok {
			continue
		}
		it.Confidence = ConfidenceMultiLine
		it.Source = menu.SourceMultiLine
		items = append(items, it)
		i++ // price line consumed
	}
	return items
}
