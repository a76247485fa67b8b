package extract

import (
	"regexp"
	"strings"

	"github.com/plateaulabs/menuscan/internal/menu"
)

// columnSplitRe splits a table-like line on tab characters or runs of
// three or more spaces.
var columnSplitRe = regexp.MustCompile(`\t+|\s{3,}`)

// ExtractTable recovers pairs from column-aligned or tab-delimited
// text: the last column must be a price, the remaining columns joined
// must read like an item name.
func ExtractTable(text, defaultCurrency string) []menu.Item {
	var items []menu.Item
	for _, line := range SplitLines(text) {
		cols := columnSplitRe.Split(line, -1)
		if len(cols) < 2 {
			continue
		}
		last := strings.TrimSpace(cols[len(cols)-1])
		m := priceOnlyRe.FindStringSubmatch(last)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(strings.Join(cols[:len(cols)-1], " "))
		if !IsLikelyItemName(name) {
			continue
		}
		it, ok := extractFromMatch(name, m[1], m[2], defaultCurrency)
		if !ok {
			continue
		}
		it.Confidence = ConfidenceTable
		it.Source = menu.SourceTable
		items = append(items, it)
	}
	return items
}
