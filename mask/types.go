// Package mask defines core types, constants, and sentinel errors
// for the mask subpackage of github.com/katalvlaran/shipseg.
package mask

import (
	"errors"
)

// Dataset geometry: every image in the collection is 768×768 pixels.
const (
	// Side is the width and height, in pixels, of every dataset image.
	Side = 768
	// PixelsPerImage is the pixel count of one dataset image.
	PixelsPerImage = Side * Side
)

// Sentinel errors for mask operations.
var (
	// ErrOddRunLength indicates an encoding with an odd number of tokens,
	// i.e. a start offset without its run length.
	ErrOddRunLength = errors.New("mask: encoding must hold (start, length) pairs")
	// ErrBadToken indicates a token that is not a positive integer.
	ErrBadToken = errors.New("mask: encoding token is not a positive integer")
	// ErrRunOutOfRange indicates a run extending outside the pixel grid.
	ErrRunOutOfRange = errors.New("mask: run lies outside the pixel grid")
	// ErrBadDimensions indicates non-positive bitmap dimensions.
	ErrBadDimensions = errors.New("mask: dimensions must be > 0")
	// ErrNilBitmap indicates a nil *Bitmap receiver or argument.
	ErrNilBitmap = errors.New("mask: nil bitmap")
)

// Connectivity selects neighbor connectivity for ship extraction:
// orthogonal only (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns the neighbor offset table for the connectivity.
// Unknown values fall back to Conn4.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// Bitmap is a binary pixel grid. It stores one byte per pixel in
// row-major order; the run-length codec translates between this layout
// and the dataset's column-major flattening.
type Bitmap struct {
	width, height int
	pix           []uint8 // row-major, 0 background / 1 foreground
}

// NewBitmap creates an all-background bitmap.
// Returns ErrBadDimensions if width or height is not positive.
// Complexity: O(W·H) time and memory.
func NewBitmap(width, height int) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}

	return &Bitmap{width: width, height: height, pix: make([]uint8, width*height)}, nil
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.height }

// InBounds reports whether (x,y) lies within the bitmap.
// Complexity: O(1).
func (b *Bitmap) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At reports whether the pixel at (x,y) is foreground.
// Out-of-bounds coordinates are background.
// Complexity: O(1).
func (b *Bitmap) At(x, y int) bool {
	if !b.InBounds(x, y) {
		return false
	}

	return b.pix[y*b.width+x] != 0
}

// Set marks the pixel at (x,y) as foreground (on=true) or background.
// Out-of-bounds coordinates are ignored.
// Complexity: O(1).
func (b *Bitmap) Set(x, y int, on bool) {
	if !b.InBounds(x, y) {
		return
	}
	if on {
		b.pix[y*b.width+x] = 1
	} else {
		b.pix[y*b.width+x] = 0
	}
}

// Foreground returns the number of foreground pixels.
// Complexity: O(W·H).
func (b *Bitmap) Foreground() int64 {
	var n int64
	for _, p := range b.pix {
		if p != 0 {
			n++
		}
	}

	return n
}

// Coordinate converts a row-major pixel index (as returned by Ships)
// back to (x, y).
// Complexity: O(1).
func (b *Bitmap) Coordinate(idx int) (x, y int) {
	return idx % b.width, idx / b.width
}
