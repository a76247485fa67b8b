// Package testutil provides synthetic image helpers shared by the
// region detection and pipeline tests.
package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewUniformImage returns a width x height image filled with a single
// color. Uniform areas carry no variance and no edges, so region
// detection must ignore them.
func NewUniformImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

// PaintTexturedBlock fills the given rectangle with a fine
// checkerboard of strongly contrasting colors. The pattern has both
// high per-channel variance and dense horizontal edges, which pushes
// every covered grid cell above the detection threshold.
func PaintTexturedBlock(img *image.RGBA, rect image.Rectangle) {
	dark := color.RGBA{10, 10, 10, 255}
	light := color.RGBA{245, 120, 30, 255}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, dark)
			} else {
				img.Set(x, y, light)
			}
		}
	}
}

// NewPhotoLikeImage returns a uniform background with one textured
// block at the given rectangle, mimicking a single dish photo on a
// plain menu page.
func NewPhotoLikeImage(width, height int, block image.Rectangle) *image.RGBA {
	img := NewUniformImage(width, height, color.White)
	PaintTexturedBlock(img, block)
	return img
}

// EncodePNG serializes an image to PNG bytes for feeding raw upload
// paths in tests.
func EncodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
