package dice

import (
	"fmt"

	"github.com/katalvlaran/shipseg/tensor"
)

// classAxis is the axis holding mutually exclusive class scores; targets
// are one-hot expanded along it and every other axis is reduced away.
const classAxis = 1

// MultiClassLoss — soft Dice loss over softmax probabilities for C
// mutually exclusive classes.
//
// Description:
//
//	Accepted shapes: logits (batch, C) with target (batch), or logits
//	(batch, C, H, W) with target (batch, H, W). Targets hold integer
//	class indices in [0, C). Then
//	  probs  = softmax(logits) along the class axis
//	  onehot = one-hot(target) along the class axis
//	  num    = Σ onehot⊙probs   (every axis except the class axis)
//	  den_t  = Σ onehot          (ditto)
//	  den_p  = Σ probs           (ditto)
//	  loss_c = −2·num_c / (den_t_c + den_p_c + eps)
//	and the per-class vector collapses per the configured reduction:
//	ReduceNone keeps all C values, ReduceMean / ReduceSum return a
//	single-element slice.
//
// Errors:
//   - ErrNilInput   — nil logits or target.
//   - ErrBadRank    — any dimensionality combination other than the two
//     above; the message names the expected target rank.
//   - ErrShapeMismatch    — batch or spatial extents differ.
//   - tensor.ErrClassIndex — a target value that is not a valid class index.
type MultiClassLoss struct {
	opts Options
}

// NewMultiClassLoss validates opts once and captures them immutably.
// Returns ErrBadOptions for an unknown reduction or negative eps.
func NewMultiClassLoss(opts Options) (*MultiClassLoss, error) {
	norm, err := opts.normalize()
	if err != nil {
		return nil, fmt.Errorf("NewMultiClassLoss: %w", err)
	}

	return &MultiClassLoss{opts: norm}, nil
}

// Forward computes the per-class Dice losses and applies the reduction.
// Stage 1 (Validate): nil inputs, rank combination, extent agreement.
// Stage 2 (Execute): one-hot, softmax, three per-class reductions.
// Stage 3 (Finalize): reduce the C-vector per the configured mode.
// Complexity: O(n·C) time (dominated by the one-hot expansion).
func (l *MultiClassLoss) Forward(logits, target *tensor.Dense) ([]float64, error) {
	if logits == nil || target == nil {
		return nil, ErrNilInput
	}
	if err := checkRanks(logits, target); err != nil {
		return nil, err
	}

	classes, err := logits.Dim(classAxis)
	if err != nil {
		return nil, err
	}
	hot, err := tensor.OneHot(target, classes)
	if err != nil {
		return nil, err
	}
	// OneHot inserts the class axis at position 1, so a rank-matched
	// target expands to exactly the logits' shape.
	if !hot.SameShape(logits) {
		return nil, fmt.Errorf("Forward: logits %v vs target %v: %w",
			logits.Shape(), target.Shape(), ErrShapeMismatch)
	}

	probs, err := tensor.Softmax(logits, classAxis)
	if err != nil {
		return nil, err
	}
	overlap, err := tensor.Mul(hot, probs)
	if err != nil {
		return nil, err
	}

	num, err := tensor.SumExcept(overlap, classAxis)
	if err != nil {
		return nil, err
	}
	denT, err := tensor.SumExcept(hot, classAxis)
	if err != nil {
		return nil, err
	}
	denP, err := tensor.SumExcept(probs, classAxis)
	if err != nil {
		return nil, err
	}

	perClass := make([]float64, classes)
	for c := range perClass {
		perClass[c] = -2 * num[c] / (denT[c] + denP[c] + l.opts.Eps)
	}

	return l.reduce(perClass), nil
}

// reduce collapses the per-class vector per the configured mode.
func (l *MultiClassLoss) reduce(perClass []float64) []float64 {
	switch l.opts.Reduction {
	case ReduceNone:
		return perClass
	case ReduceSum:
		s := 0.0
		for _, v := range perClass {
			s += v
		}

		return []float64{s}
	default: // ReduceMean
		s := 0.0
		for _, v := range perClass {
			s += v
		}

		return []float64{s / float64(len(perClass))}
	}
}

// checkRanks enforces the two supported shape pairings and extent
// agreement between logits and target.
func checkRanks(logits, target *tensor.Dense) error {
	ls, ts := logits.Shape(), target.Shape()
	switch len(ls) {
	case 2:
		if len(ts) != 1 {
			return fmt.Errorf("Forward: rank-2 logits expect a rank-1 target, got rank %d: %w",
				len(ts), ErrBadRank)
		}
	case 4:
		if len(ts) != 3 {
			return fmt.Errorf("Forward: rank-4 logits expect a rank-3 target, got rank %d: %w",
				len(ts), ErrBadRank)
		}
		if ls[2] != ts[1] || ls[3] != ts[2] {
			return fmt.Errorf("Forward: spatial extents %v vs %v: %w",
				ls[2:], ts[1:], ErrShapeMismatch)
		}
	default:
		return fmt.Errorf("Forward: logits must be rank 2 or 4, got rank %d: %w",
			len(ls), ErrBadRank)
	}
	if ls[0] != ts[0] {
		return fmt.Errorf("Forward: batch %d vs %d: %w", ls[0], ts[0], ErrShapeMismatch)
	}

	return nil
}
