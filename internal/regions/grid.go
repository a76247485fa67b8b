// Package regions segments a raster page into rectangular areas
// likely to contain a photograph rather than text. It partitions the
// bitmap into fixed-size cells, scores each cell by color variance
// and edge density, and merges neighboring image-like cells into
// candidate regions.
package regions

import (
	"image"
)

// cell is one grid square with its image-likelihood score.
type cell struct {
	col, row int
	score    float64
}

// cellGrid computes scores for every grid cell of the image.
// Score = (variance / varianceNorm) * edgeDensity. Text cells show
// low variance and sparse strong edges at the area scale of a cell;
// photographs show high variance with diffuse edges throughout, so
// the product separates the two without a trained model.
func cellGrid(img image.Image, cellSize int, edgeThreshold float64) []cell {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 || cellSize <= 0 {
		return nil
	}
	cols := (w + cellSize - 1) / cellSize
	rows := (h + cellSize - 1) / cellSize

	cells := make([]cell, 0, cols*rows)
	for row := range rows {
		for col := range cols {
			x0 := bounds.Min.X + col*cellSize
			y0 := bounds.Min.Y + row*cellSize
			x1 := min(x0+cellSize, bounds.Max.X)
			y1 := min(y0+cellSize, bounds.Max.Y)
			cells = append(cells, cell{
				col:   col,
				row:   row,
				score: scoreCell(img, x0, y0, x1, y1, edgeThreshold),
			})
		}
	}
	return cells
}

// varianceNorm maps raw per-channel 8-bit variance into a usable
// 0..~1 score range for typical photographs.
const varianceNorm = 2000.0

// scoreCell computes the image-likelihood score of one cell.
func scoreCell(img image.Image, x0, y0, x1, y1 int, edgeThreshold float64) float64 {
	n := (x1 - x0) * (y1 - y0)
	if n <= 0 {
		return 0
	}

	var sumR, sumG, sumB float64
	var sumR2, sumG2, sumB2 float64
	edges := 0
	pairs := 0

	prevValid := false
	var prevR, prevG, prevB float64
	for y := y0; y < y1; y++ {
		prevValid = false
		for x := x0; x < x1; x++ {
			r, g, b := rgb8(img, x, y)
			sumR += r
			sumG += g
			sumB += b
			sumR2 += r * r
			sumG2 += g * g
			sumB2 += b * b
			if prevValid {
				pairs++
				delta := abs(r-prevR) + abs(g-prevG) + abs(b-prevB)
				if delta > edgeThreshold {
					edges++
				}
			}
			prevR, prevG, prevB = r, g, b
			prevValid = true
		}
	}

	fn := float64(n)
	variance := (sumR2/fn - sq(sumR/fn)) + (sumG2/fn - sq(sumG/fn)) + (sumB2/fn - sq(sumB/fn))
	variance /= 3

	edgeDensity := 0.0
	if pairs > 0 {
		edgeDensity = float64(edges) / float64(pairs)
	}
	return (variance / varianceNorm) * edgeDensity
}

func rgb8(img image.Image, x, y int) (float64, float64, float64) {
	r, g, b, _ := img.At(x, y).RGBA()
	return float64(r >> 8), float64(g >> 8), float64(b >> 8)
}

func sq(v float64) float64 { return v * v }

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
