package dice_test

import (
	"testing"

	"github.com/katalvlaran/shipseg/dice"
	"github.com/katalvlaran/shipseg/tensor"
	"github.com/stretchr/testify/assert"
)

// TestBinaryLoss_PerfectOverlap verifies loss → −1 for saturated logits
// matching the target exactly.
func TestBinaryLoss_PerfectOverlap(t *testing.T) {
	l, err := dice.NewBinaryLoss(dice.DefaultOptions())
	assert.NoError(t, err)

	logits, _ := tensor.FromSlice([]float64{100, -100}, 2)
	target, _ := tensor.FromSlice([]float64{1, 0}, 2)

	loss, err := l.Forward(logits, target)
	assert.NoError(t, err)
	assert.InDelta(t, -1.0, loss, 1e-6, "perfect overlap approaches −1 as eps → 0")
}

// TestBinaryLoss_ReferenceValue pins the loss for a small mixed input.
func TestBinaryLoss_ReferenceValue(t *testing.T) {
	l, err := dice.NewBinaryLoss(dice.DefaultOptions())
	assert.NoError(t, err)

	logits, _ := tensor.FromSlice([]float64{-5, -2.5, -6, -10, -2}, 5)
	target, _ := tensor.FromSlice([]float64{1, 0, 0, 0, 1}, 5)

	loss, err := l.Forward(logits, target)
	assert.NoError(t, err)
	assert.InDelta(t, -0.1142, loss, 1e-4)
}

// TestBinaryLoss_NoOverlap verifies loss ≈ 0 when predicted mass and
// target regions are disjoint.
func TestBinaryLoss_NoOverlap(t *testing.T) {
	l, err := dice.NewBinaryLoss(dice.DefaultOptions())
	assert.NoError(t, err)

	logits, _ := tensor.FromSlice([]float64{-100, 100}, 2)
	target, _ := tensor.FromSlice([]float64{1, 0}, 2)

	loss, err := l.Forward(logits, target)
	assert.NoError(t, err)
	assert.InDelta(t, 0.0, loss, 1e-6)
}

// TestBinaryLoss_FlattensAnyShape verifies that a (batch, H, W) input
// equals its flattened counterpart: one aggregate scalar per call.
func TestBinaryLoss_FlattensAnyShape(t *testing.T) {
	l, err := dice.NewBinaryLoss(dice.DefaultOptions())
	assert.NoError(t, err)

	flatL, _ := tensor.FromSlice([]float64{1, -1, 2, -2}, 4)
	flatT, _ := tensor.FromSlice([]float64{1, 0, 1, 0}, 4)
	gridL, _ := tensor.FromSlice([]float64{1, -1, 2, -2}, 1, 2, 2)
	gridT, _ := tensor.FromSlice([]float64{1, 0, 1, 0}, 1, 2, 2)

	flat, err := l.Forward(flatL, flatT)
	assert.NoError(t, err)
	grid, err := l.Forward(gridL, gridT)
	assert.NoError(t, err)
	assert.Equal(t, flat, grid)
}

// TestBinaryLoss_Validation verifies shape and target-value checks.
func TestBinaryLoss_Validation(t *testing.T) {
	l, err := dice.NewBinaryLoss(dice.DefaultOptions())
	assert.NoError(t, err)

	logits, _ := tensor.FromSlice([]float64{1, 2}, 2)
	short, _ := tensor.FromSlice([]float64{1}, 1)
	_, err = l.Forward(logits, short)
	assert.ErrorIs(t, err, dice.ErrShapeMismatch)

	bad, _ := tensor.FromSlice([]float64{1, 2}, 2)
	_, err = l.Forward(logits, bad)
	assert.ErrorIs(t, err, dice.ErrNonBinaryTarget, "target value 2 must be rejected")

	_, err = l.Forward(nil, logits)
	assert.ErrorIs(t, err, dice.ErrNilInput)
}

// TestNewBinaryLoss_BadOptions verifies construction-time validation.
func TestNewBinaryLoss_BadOptions(t *testing.T) {
	_, err := dice.NewBinaryLoss(dice.Options{Reduction: dice.Reduction(42)})
	assert.ErrorIs(t, err, dice.ErrBadOptions, "unknown reduction must fail at construction")

	_, err = dice.NewBinaryLoss(dice.Options{Reduction: dice.ReduceMean, Eps: -1})
	assert.ErrorIs(t, err, dice.ErrBadOptions, "negative eps must fail at construction")
}
