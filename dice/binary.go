package dice

import (
	"fmt"

	"github.com/katalvlaran/shipseg/tensor"
)

// BinaryLoss — soft Dice loss over sigmoid probabilities.
//
// Description:
//
//	Given logits L and a {0,1} target T of the same shape, both are
//	flattened and
//	  p    = sigmoid(L)
//	  loss = −2·Σ(T⊙p) / (ΣT + Σp + eps)
//	The result lies in (−1, 0]: −1 means perfect overlap as eps→0, 0
//	means no overlap or degenerate empty sets.
//
// The whole flattened input produces one aggregate scalar per call, so
// the configured reduction is a no-op here; it is validated anyway so a
// BinaryLoss and a MultiClassLoss can share one Options value.
//
// Errors:
//   - ErrNilInput        — nil logits or target.
//   - ErrShapeMismatch   — logits and target shapes differ.
//   - ErrNonBinaryTarget — a target value outside {0, 1}.
type BinaryLoss struct {
	opts Options
}

// NewBinaryLoss validates opts once and captures them immutably.
// Returns ErrBadOptions for an unknown reduction or negative eps.
func NewBinaryLoss(opts Options) (*BinaryLoss, error) {
	norm, err := opts.normalize()
	if err != nil {
		return nil, fmt.Errorf("NewBinaryLoss: %w", err)
	}

	return &BinaryLoss{opts: norm}, nil
}

// Forward computes the loss for one (logits, target) pair.
// Stage 1 (Validate): nil inputs, identical shapes, {0,1} targets.
// Stage 2 (Execute): sigmoid, three sums, one division.
// Complexity: O(n) time.
func (l *BinaryLoss) Forward(logits, target *tensor.Dense) (float64, error) {
	if logits == nil || target == nil {
		return 0, ErrNilInput
	}
	if !logits.SameShape(target) {
		return 0, fmt.Errorf("Forward: logits %v vs target %v: %w",
			logits.Shape(), target.Shape(), ErrShapeMismatch)
	}
	for i, v := range target.Data() {
		if v != 0 && v != 1 {
			return 0, fmt.Errorf("Forward: value %v at offset %d: %w", v, i, ErrNonBinaryTarget)
		}
	}

	probs, err := tensor.Sigmoid(logits)
	if err != nil {
		return 0, err
	}

	// Flat accumulation: shapes are identical, so the flattened views
	// are elementwise aligned.
	var num, denT, denP float64
	tData, pData := target.Data(), probs.Data()
	for i := range pData {
		num += tData[i] * pData[i]
		denT += tData[i]
		denP += pData[i]
	}

	return -2 * num / (denT + denP + l.opts.Eps), nil
}
