package extract

import (
	"github.com/plateaulabs/menuscan/internal/menu"
)

// strategy is a stateless extraction function over immutable text.
type strategy func(text, defaultCurrency string) []menu.Item

// structuredStrategies run in fixed priority order. The fallback
// strategy is not part of this list: it fires only when these three
// produce zero valid items.
var structuredStrategies = []strategy{ExtractInline, ExtractMultiLine, ExtractTable}

// Run executes the full text-extraction stage: currency detection,
// the structured strategies in priority order, the fallback on total
// miss, then validation, deduplication, category inference, and ID
// assignment. The returned slice is empty (not nil error) when the
// document yields nothing.
func Run(text string) []menu.Item {
	defaultCurrency := menu.DetectCurrency(text)

	var candidates []menu.Item
	for _, s := range structuredStrategies {
		candidates = append(candidates, s(text, defaultCurrency)...)
	}
	if len(merge(candidates)) == 0 {
		candidates = ExtractFallback(text, defaultCurrency)
	}
	items := merge(candidates)

	for i := range items {
		items[i].ID = i + 1
		items[i].Category = menu.InferCategory(items[i].Name)
		items[i].RegionIndex = -1 // no image until spatial matching runs
	}
	return items
}

// merge validates candidates and collapses duplicates through the
// (name, price) key set. Candidates arrive in strategy priority
// order, so the first occurrence of a key wins; this is an ordering
// contract, not an insertion side effect.
func merge(candidates []menu.Item) []menu.Item {
	seen := make(map[string]struct{}, len(candidates))
	items := make([]menu.Item, 0, len(candidates))
	for _, it := range candidates {
		if !menu.IsValid(it) {
			continue
		}
		key := menu.Key(it.Name, it.Price)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		items = append(items, it)
	}
	return items
}

// OverallConfidence is the mean item confidence, zero for an empty
// set.
func OverallConfidence(items []menu.Item) int {
	if len(items) == 0 {
		return 0
	}
	sum := 0
	for _, it := range items {
		sum += it.Confidence
	}
	return sum / len(items)
}
