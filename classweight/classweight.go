package classweight

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/shipseg/dataset"
	"github.com/katalvlaran/shipseg/mask"
)

// DefaultSmoothing is the conventional ENet smoothing constant c.
const DefaultSmoothing = 1.02

// Sentinel errors for class weighting.
var (
	// ErrNoImages indicates statistics over zero images.
	ErrNoImages = errors.New("classweight: dataset holds no images")
	// ErrBadSmoothing indicates an ENet smoothing constant c <= 1, for
	// which ln(c + propensity) may vanish or go negative.
	ErrBadSmoothing = errors.New("classweight: smoothing constant must be > 1")
	// ErrZeroFrequency indicates a class with zero pixel frequency in
	// median-frequency balancing. It is non-fatal: the weight vector,
	// containing +Inf for that class, is returned alongside it.
	ErrZeroFrequency = errors.New("classweight: class frequency is zero")
)

// Stats aggregates the dataset quantities both weighting schemes need.
type Stats struct {
	// TotalImages is the number of unique image identifiers.
	TotalImages int
	// ImagesWithShips is the number of unique images having at least one
	// non-null encoding.
	ImagesWithShips int
	// ForegroundPixels is the total run-length sum across all records.
	ForegroundPixels int64
}

// TotalPixels returns 768·768·TotalImages, the pixel count of the whole
// dataset at the fixed per-image resolution.
func (s Stats) TotalPixels() int64 {
	return int64(mask.PixelsPerImage) * int64(s.TotalImages)
}

// Weights is an ordered (background, foreground) weight pair; the rarer
// class carries the higher weight.
type Weights struct {
	Background float64
	Foreground float64
}

// Collect runs one deterministic pass over the records: it counts unique
// images, unique images with any ship, and total foreground pixels via
// mask.ForegroundPixels. Records sharing an ImageID (one row per ship)
// contribute one image and the sum of their runs.
//
// Any malformed encoding aborts the whole pass with the mask package's
// decoding error — no partial statistics are returned.
// Complexity: O(records + tokens) time, O(unique images) memory.
func Collect(records []dataset.Record) (Stats, error) {
	var s Stats
	withShips := make(map[string]bool, len(records))
	for i, rec := range records {
		prior, seen := withShips[rec.ImageID]
		if !seen {
			s.TotalImages++
			withShips[rec.ImageID] = false
		}
		if !rec.EncodedPixels.Valid {
			continue
		}
		n, err := mask.ForegroundPixels(rec.EncodedPixels.String)
		if err != nil {
			return Stats{}, fmt.Errorf("classweight: record %d (%s): %w", i, rec.ImageID, err)
		}
		s.ForegroundPixels += n
		if !prior {
			withShips[rec.ImageID] = true
			s.ImagesWithShips++
		}
	}

	return s, nil
}

// ENetWeights computes the ENet-style log weights
//
//	w_k = 1 / ln(c + propensity_k)
//
// where propensity is each class's share of all dataset pixels. Pass
// DefaultSmoothing for the conventional c = 1.02. A class with
// near-zero propensity approaches the bound 1/ln(c) instead of
// diverging.
//
// Returns ErrNoImages for an empty dataset and ErrBadSmoothing for
// c <= 1.
func ENetWeights(s Stats, smoothing float64) (Weights, error) {
	if s.TotalImages <= 0 {
		return Weights{}, ErrNoImages
	}
	if smoothing <= 1 {
		return Weights{}, ErrBadSmoothing
	}
	total := float64(s.TotalPixels())
	fg := float64(s.ForegroundPixels)

	return Weights{
		Background: 1 / math.Log(smoothing+(total-fg)/total),
		Foreground: 1 / math.Log(smoothing+fg/total),
	}, nil
}

// MedianFrequencyWeights computes median-frequency-balanced weights
//
//	w_k = median(freq) / freq_k
//
// with deliberately asymmetric denominators: the background frequency is
// taken over every dataset pixel, while the foreground frequency divides
// only by the pixels of images that contain any ship. The median of the
// two-element frequency vector is their mean.
//
// A zero frequency makes the corresponding weight +Inf; the vector is
// still returned, together with the non-fatal ErrZeroFrequency, so the
// caller decides how to treat the degenerate input.
func MedianFrequencyWeights(s Stats) (Weights, error) {
	if s.TotalImages <= 0 {
		return Weights{}, ErrNoImages
	}
	total := float64(s.TotalPixels())
	fg := float64(s.ForegroundPixels)

	freqBg := (total - fg) / total
	freqFg := 0.0
	if s.ImagesWithShips > 0 {
		freqFg = fg / (float64(mask.PixelsPerImage) * float64(s.ImagesWithShips))
	}
	median := (freqBg + freqFg) / 2

	w := Weights{Background: median / freqBg, Foreground: median / freqFg}
	if freqBg == 0 || freqFg == 0 {
		return w, ErrZeroFrequency
	}

	return w, nil
}
