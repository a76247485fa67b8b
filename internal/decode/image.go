package decode

import (
	"bytes"
	"fmt"
	"image"

	// register decoders for the formats accepted as image uploads
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image decodes raster bytes into an image using the registered
// codecs (PNG, JPEG, GIF, BMP, TIFF, WebP).
func Image(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}
