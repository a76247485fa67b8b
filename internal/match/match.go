// Package match assigns extracted items to detected photo regions by
// spatial proximity between the item's OCR word positions and the
// region centers.
package match

import (
	"strings"

	"github.com/plateaulabs/menuscan/internal/menu"
	"github.com/plateaulabs/menuscan/internal/ocr"
	"github.com/plateaulabs/menuscan/internal/regions"
	"github.com/plateaulabs/menuscan/internal/utils"
)

// DefaultMaxDistance is the proximity threshold in pixels beyond
// which no region is assigned.
const DefaultMaxDistance = 300.0

// Matcher pairs items with regions using greedy nearest-neighbor
// assignment. Assignment is intentionally not one-to-one: a single
// dish photo may caption several line items (combo variants), and
// many items legitimately have no photo at all.
type Matcher struct {
	MaxDistance float64
}

// NewMatcher creates a matcher; a non-positive threshold falls back
// to DefaultMaxDistance.
func NewMatcher(maxDistance float64) *Matcher {
	if maxDistance <= 0 {
		maxDistance = DefaultMaxDistance
	}
	return &Matcher{MaxDistance: maxDistance}
}

// Assign mutates items in place, setting Image and RegionIndex for
// every item whose word centroid lies within MaxDistance of the
// nearest region center. Items without locatable words stay
// unmatched.
func (m *Matcher) Assign(items []menu.Item, words []ocr.Word, regs []regions.Region) {
	if len(regs) == 0 {
		return
	}
	for i := range items {
		centroid, ok := itemCentroid(items[i].Name, words)
		if !ok {
			continue
		}
		best, dist := nearestRegion(centroid, regs)
		if best < 0 || dist >= m.MaxDistance {
			continue
		}
		items[i].RegionIndex = best
		items[i].Image = regs[best].Pixels
	}
}

// itemCentroid locates the OCR words belonging to an item name, by
// case-insensitive substring match in either direction, and returns
// the centroid of their bounding boxes.
func itemCentroid(name string, words []ocr.Word) (utils.Point, bool) {
	lowerName := strings.ToLower(name)
	var centers []utils.Point
	for _, w := range words {
		lw := strings.ToLower(strings.TrimSpace(w.Text))
		if lw == "" {
			continue
		}
		if strings.Contains(lowerName, lw) || strings.Contains(lw, lowerName) {
			centers = append(centers, w.Box.Centroid())
		}
	}
	if len(centers) == 0 {
		return utils.Point{}, false
	}
	return utils.Centroid(centers), true
}

// nearestRegion returns the index and distance of the region whose
// centroid is closest to p, or (-1, 0) for an empty slice.
func nearestRegion(p utils.Point, regs []regions.Region) (int, float64) {
	best := -1
	bestDist := 0.0
	for i, r := range regs {
		d := p.Distance(r.Centroid())
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, bestDist
}
