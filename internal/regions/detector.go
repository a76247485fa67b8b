package regions

import (
	"image"

	"github.com/plateaulabs/menuscan/internal/utils"
)

// Region is one candidate photograph area on the source page.
type Region struct {
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Score  float64 `json:"score"`

	// Pixels is the cropped sub-image; arena-scoped to one extraction
	// call, never persisted.
	Pixels image.Image `json:"-"`
}

// Box returns the region rectangle as a float box.
func (r Region) Box() utils.Box {
	return utils.NewBox(float64(r.X), float64(r.Y), float64(r.X+r.Width), float64(r.Y+r.Height))
}

// Centroid returns the center of the region rectangle.
func (r Region) Centroid() utils.Point { return r.Box().Centroid() }

// Config holds detector tuning parameters.
type Config struct {
	CellSize      int     // grid cell side in pixels
	CellThreshold float64 // minimum score for a cell to count as image-like
	EdgeThreshold float64 // combined RGB delta for an edge pair
	MergeFactor   float64 // merge radius as a multiple of cell width
	MinSide       int     // minimum region width and height in pixels
	MinAreaFrac   float64 // minimum region area as fraction of page area
	MaxAreaFrac   float64 // maximum region area as fraction of page area
}

// DefaultConfig returns the detector defaults.
func DefaultConfig() Config {
	return Config{
		CellSize:      50,
		CellThreshold: 0.3,
		EdgeThreshold: 100,
		MergeFactor:   1.5,
		MinSide:       80,
		MinAreaFrac:   0.01,
		MaxAreaFrac:   0.40,
	}
}

// Detector finds photograph-like regions in a page bitmap.
type Detector struct {
	cfg Config
}

// NewDetector creates a detector; zero or negative config fields fall
// back to defaults.
func NewDetector(cfg Config) *Detector {
	def := DefaultConfig()
	if cfg.CellSize <= 0 {
		cfg.CellSize = def.CellSize
	}
	if cfg.CellThreshold <= 0 {
		cfg.CellThreshold = def.CellThreshold
	}
	if cfg.EdgeThreshold <= 0 {
		cfg.EdgeThreshold = def.EdgeThreshold
	}
	if cfg.MergeFactor <= 0 {
		cfg.MergeFactor = def.MergeFactor
	}
	if cfg.MinSide <= 0 {
		cfg.MinSide = def.MinSide
	}
	if cfg.MinAreaFrac <= 0 {
		cfg.MinAreaFrac = def.MinAreaFrac
	}
	if cfg.MaxAreaFrac <= 0 {
		cfg.MaxAreaFrac = def.MaxAreaFrac
	}
	return &Detector{cfg: cfg}
}

// Detect segments the bitmap and returns the filtered candidate
// regions with cropped pixel data. A page with no photograph yields
// an empty slice, not an error.
func (d *Detector) Detect(img image.Image) []Region {
	if img == nil {
		return nil
	}
	bounds := img.Bounds()
	pageArea := float64(bounds.Dx() * bounds.Dy())
	if pageArea == 0 {
		return nil
	}

	cells := cellGrid(img, d.cfg.CellSize, d.cfg.EdgeThreshold)
	marked := make([]cell, 0, len(cells))
	for _, c := range cells {
		if c.score > d.cfg.CellThreshold {
			marked = append(marked, c)
		}
	}
	if len(marked) == 0 {
		return nil
	}

	mergeRadius := d.cfg.MergeFactor * float64(d.cfg.CellSize)
	var out []Region
	for _, cluster := range mergeCells(marked, d.cfg.CellSize, mergeRadius) {
		box := clusterBox(cluster, d.cfg.CellSize)
		rect := box.ToRect(bounds)
		if !d.accept(rect, pageArea) {
			continue
		}
		out = append(out, Region{
			X:      rect.Min.X,
			Y:      rect.Min.Y,
			Width:  rect.Dx(),
			Height: rect.Dy(),
			Score:  clusterScore(cluster),
			Pixels: utils.CropImageRect(img, rect),
		})
	}
	return out
}

// accept applies the size and area band: regions below it are noise,
// above it background.
func (d *Detector) accept(rect image.Rectangle, pageArea float64) bool {
	if rect.Dx() < d.cfg.MinSide || rect.Dy() < d.cfg.MinSide {
		return false
	}
	frac := float64(rect.Dx()*rect.Dy()) / pageArea
	return frac >= d.cfg.MinAreaFrac && frac <= d.cfg.MaxAreaFrac
}
