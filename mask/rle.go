package mask

import (
	"fmt"
	"strconv"
	"strings"
)

// ForegroundPixels sums the run lengths of an encoding without building
// a grid: tokens at odd positions (1, 3, 5, …) are run lengths, tokens
// at even positions are start offsets and are ignored here.
//
// An empty or all-whitespace encoding counts zero pixels. A missing run
// length (odd token count) returns ErrOddRunLength; a token that is not
// a positive integer returns ErrBadToken. Nothing is truncated: any
// malformed token aborts the whole count.
//
// Complexity: O(tokens) time.
func ForegroundPixels(encoding string) (int64, error) {
	tokens := strings.Fields(encoding)
	if len(tokens)%2 != 0 {
		return 0, fmt.Errorf("ForegroundPixels: %d tokens: %w", len(tokens), ErrOddRunLength)
	}
	var total int64
	for i := 1; i < len(tokens); i += 2 {
		run, err := parseToken(tokens[i])
		if err != nil {
			return 0, fmt.Errorf("ForegroundPixels: token %d: %w", i, err)
		}
		total += run
	}

	return total, nil
}

// Decode expands an encoding into a width×height Bitmap. Runs cover the
// column-major flattening of the grid (top-to-bottom, then
// left-to-right) with 1-based start offsets.
//
// Returns ErrBadDimensions, ErrOddRunLength, ErrBadToken, or
// ErrRunOutOfRange for a run extending past width·height pixels.
// Complexity: O(W·H + foreground) time, O(W·H) memory.
func Decode(encoding string, width, height int) (*Bitmap, error) {
	b, err := NewBitmap(width, height)
	if err != nil {
		return nil, err
	}
	tokens := strings.Fields(encoding)
	if len(tokens)%2 != 0 {
		return nil, fmt.Errorf("Decode: %d tokens: %w", len(tokens), ErrOddRunLength)
	}
	total := int64(width) * int64(height)
	for i := 0; i < len(tokens); i += 2 {
		start, err := parseToken(tokens[i])
		if err != nil {
			return nil, fmt.Errorf("Decode: token %d: %w", i, err)
		}
		run, err := parseToken(tokens[i+1])
		if err != nil {
			return nil, fmt.Errorf("Decode: token %d: %w", i+1, err)
		}
		if start+run-1 > total {
			return nil, fmt.Errorf("Decode: start %d length %d over %d pixels: %w",
				start, run, total, ErrRunOutOfRange)
		}
		// 1-based column-major offset → (x, y)
		for f := start - 1; f < start-1+run; f++ {
			x, y := int(f)/height, int(f)%height
			b.pix[y*width+x] = 1
		}
	}

	return b, nil
}

// DecodeImage decodes an encoding over the fixed 768×768 dataset grid.
func DecodeImage(encoding string) (*Bitmap, error) {
	return Decode(encoding, Side, Side)
}

// Encode produces the canonical encoding of a bitmap: runs scanned in
// column-major order, 1-based starts, maximal (non-adjacent) runs. An
// all-background bitmap encodes to the empty string.
//
// Encode inverts Decode for any bitmap, and Decode inverts Encode for
// canonical encodings.
// Complexity: O(W·H) time.
func Encode(b *Bitmap) (string, error) {
	if b == nil {
		return "", ErrNilBitmap
	}
	var sb strings.Builder
	runStart, runLen := 0, 0
	flush := func() {
		if runLen == 0 {
			return
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(runStart))
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(runLen))
		runLen = 0
	}
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			if b.pix[y*b.width+x] != 0 {
				if runLen == 0 {
					runStart = x*b.height + y + 1
				}
				runLen++
			} else {
				flush()
			}
		}
	}
	flush()

	return sb.String(), nil
}

// parseToken parses a single positive integer token.
func parseToken(tok string) (int64, error) {
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%q: %w", tok, ErrBadToken)
	}

	return v, nil
}
