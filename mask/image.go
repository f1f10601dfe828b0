package mask

import (
	"image"
	"image/color"

	"github.com/nfnt/resize"
)

// Image renders the bitmap as a grayscale image: foreground pixels are
// white (255), background black (0).
// Complexity: O(W·H) time and memory.
func (b *Bitmap) Image() (*image.Gray, error) {
	if b == nil {
		return nil, ErrNilBitmap
	}
	img := image.NewGray(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.pix[y*b.width+x] != 0 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}

	return img, nil
}

// Thumbnail renders the bitmap and downscales it to width×height using
// nearest-neighbor interpolation, which keeps the mask binary — no gray
// halo around ship boundaries.
// Complexity: O(W·H) time.
func (b *Bitmap) Thumbnail(width, height uint) (image.Image, error) {
	img, err := b.Image()
	if err != nil {
		return nil, err
	}

	return resize.Resize(width, height, img, resize.NearestNeighbor), nil
}
