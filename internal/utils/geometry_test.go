package utils

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Point{0, 0}.Distance(Point{3, 4}), 0.001)
	assert.InDelta(t, 0.0, Point{7, 7}.Distance(Point{7, 7}), 0.001)
}

func TestNewBoxOrdersCoordinates(t *testing.T) {
	b := NewBox(10, 20, 2, 4)
	assert.Equal(t, Box{MinX: 2, MinY: 4, MaxX: 10, MaxY: 20}, b)
	assert.InDelta(t, 8.0, b.Width(), 0.001)
	assert.InDelta(t, 16.0, b.Height(), 0.001)
	assert.InDelta(t, 128.0, b.Area(), 0.001)
	assert.Equal(t, Point{6, 12}, b.Centroid())
}

func TestBoxUnion(t *testing.T) {
	u := NewBox(0, 0, 10, 10).Union(NewBox(5, 5, 20, 8))
	assert.Equal(t, Box{MinX: 0, MinY: 0, MaxX: 20, MaxY: 10}, u)
}

func TestBoxToRectClamps(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 100)
	r := NewBox(-10, 50.2, 150, 80.9).ToRect(bounds)
	assert.Equal(t, image.Rect(0, 50, 100, 81), r)
}

func TestBoundingBoxAndCentroid(t *testing.T) {
	pts := []Point{{1, 2}, {5, 0}, {3, 8}}
	assert.Equal(t, Box{MinX: 1, MinY: 0, MaxX: 5, MaxY: 8}, BoundingBox(pts))
	c := Centroid(pts)
	assert.InDelta(t, 3.0, c.X, 0.001)
	assert.InDelta(t, 10.0/3.0, c.Y, 0.001)

	assert.Equal(t, Box{}, BoundingBox(nil))
	assert.Equal(t, Point{}, Centroid(nil))
}

func TestCropImageRect(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	cropped := CropImageRect(img, image.Rect(10, 10, 30, 25))
	require.NotNil(t, cropped)
	assert.Equal(t, 20, cropped.Bounds().Dx())
	assert.Equal(t, 15, cropped.Bounds().Dy())
}

func TestCropImageRectOutsideBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	cropped := CropImageRect(img, image.Rect(50, 50, 60, 60))
	assert.True(t, cropped.Bounds().Empty())
}
