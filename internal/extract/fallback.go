package extract

import (
	"regexp"
	"strings"

	"github.com/plateaulabs/menuscan/internal/menu"
)

const (
	fallbackWindow    = 100 // characters preceding a price token
	fallbackMaxWords  = 5
	fallbackMinRuneLn = 3 // words shorter than this are dropped
)

var priceTokenRe = regexp.MustCompile(priceGroup)

// ExtractFallback is the last-resort proximity strategy, invoked only
// when the structured strategies together yield nothing. It scans the
// whole text for price-like tokens and promotes the last few words
// preceding each one to a name candidate. High recall, low precision:
// it exists so a malformed document still yields something for manual
// correction, never silence.
func ExtractFallback(text, defaultCurrency string) []menu.Item {
	var items []menu.Item
	for _, loc := range priceTokenRe.FindAllStringIndex(text, -1) {
		price, ok := ParsePrice(text[loc[0]:loc[1]])
		if !ok || price <= 0 {
			continue
		}
		start := loc[0] - fallbackWindow
		if start < 0 {
			start = 0
		}
		name := nameFromWindow(text[start:loc[0]])
		if name == "" || !IsLikelyItemName(name) {
			continue
		}
		items = append(items, menu.Item{
			Name:       menu.CleanName(name),
			Price:      price,
			Currency:   defaultCurrency,
			Confidence: ConfidenceFallback,
			Source:     menu.SourceFallback,
		})
	}
	return items
}

// nameFromWindow takes the trailing words of a text window, dropping
// short fragments and keeping at most fallbackMaxWords.
func nameFromWindow(window string) string {
	words := strings.Fields(window)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) >= fallbackMinRuneLn {
			kept = append(kept, w)
		}
	}
	if len(kept) > fallbackMaxWords {
		kept = kept[len(kept)-fallbackMaxWords:]
	}
	return strings.Join(kept, " ")
}
