// Package menu holds the domain model for extracted menu/catalog items:
// the item type itself, validation and deduplication rules, currency
// detection, and category inference.
package menu

import (
	"fmt"
	"image"
	"strings"
)

// Validation bounds for extracted items.
const (
	MinNameLength = 3
	MaxNameLength = 100
	MaxPrice      = 100000.0
)

// Item is the unit of extraction output: one recovered (name, price)
// pair with its provenance and, for photographic input, an optional
// matched sub-image.
type Item struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Currency   string  `json:"currency"`
	Category   string  `json:"category"`
	Confidence int     `json:"confidence"`
	Source     string  `json:"source"`

	// NeedsReview is set when the item's confidence falls below the
	// caller-defined floor. It is an annotation, never an error.
	NeedsReview bool `json:"needs_review,omitempty"`

	// Image holds the cropped pixel data of the matched photo region,
	// if spatial matching assigned one. Not serialized; RegionIndex
	// identifies the region within the extraction result instead,
	// -1 when unmatched.
	Image       image.Image `json:"-"`
	RegionIndex int         `json:"region_index"`
}

// Extraction source labels carried on Item.Source.
const (
	SourceInline    = "inline"
	SourceMultiLine = "multiline"
	SourceTable     = "table"
	SourceFallback  = "fallback"
	SourceImport    = "import"
)

// stoplist contains names that look like items but are document
// chrome (totals, page markers) and must never be promoted.
var stoplist = map[string]struct{}{
	"total":    {},
	"subtotal": {},
	"tax":      {},
	"tip":      {},
	"discount": {},
	"page":     {},
	"menu":     {},
	"price":    {},
	"amount":   {},
}

// IsValid reports whether an item passes the plausibility filter:
// name length within [MinNameLength, MaxNameLength], price within
// (0, MaxPrice], and the name not on the stoplist.
func IsValid(it Item) bool {
	n := len(it.Name)
	if n < MinNameLength || n > MaxNameLength {
		return false
	}
	if it.Price <= 0 || it.Price > MaxPrice {
		return false
	}
	if _, stopped := stoplist[strings.ToLower(strings.TrimSpace(it.Name))]; stopped {
		return false
	}
	return true
}

// Key builds the deduplication key for a (name, price) pair: the
// lowercased name with all whitespace removed, joined with the price
// formatted to two decimals. Two phrasings of the same item collapse
// to the same key.
func Key(name string, price float64) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r != ' ' && r != '\t' {
			b.WriteRune(r)
		}
	}
	return fmt.Sprintf("%s|%.2f", b.String(), price)
}

// CleanName normalizes a raw captured name: trims whitespace and
// leader punctuation, collapses internal runs of whitespace.
//
// Trailing digits are kept ("Naan 2" stays "Naan 2"): a digit glued
// to a name is as likely a size or variant code as noise, and keeping
// it preserves information for the human review step.
func CleanName(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, ".-–—:|*•·")
	s = strings.TrimSpace(s)
	return strings.Join(strings.Fields(s), " ")
}
