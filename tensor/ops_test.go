package tensor_test

import (
	"testing"

	"github.com/katalvlaran/shipseg/tensor"
	"github.com/stretchr/testify/assert"
)

const floatTol = 1e-9

// TestSigmoid_KnownValues verifies the logistic function at 0 and at
// saturated logits.
func TestSigmoid_KnownValues(t *testing.T) {
	in, err := tensor.FromSlice([]float64{0, 100, -100}, 3)
	assert.NoError(t, err)

	out, err := tensor.Sigmoid(in)
	assert.NoError(t, err)
	assert.InDelta(t, 0.5, out.Data()[0], floatTol, "sigmoid(0) = 0.5")
	assert.InDelta(t, 1.0, out.Data()[1], floatTol, "sigmoid(+100) saturates to 1")
	assert.InDelta(t, 0.0, out.Data()[2], floatTol, "sigmoid(-100) saturates to 0")
}

// TestSigmoid_DoesNotMutateInput verifies that the input tensor is untouched.
func TestSigmoid_DoesNotMutateInput(t *testing.T) {
	in, err := tensor.FromSlice([]float64{2, -2}, 2)
	assert.NoError(t, err)

	_, err = tensor.Sigmoid(in)
	assert.NoError(t, err)
	assert.Equal(t, []float64{2, -2}, in.Data(), "Sigmoid must return a new tensor")
}

// TestMul_Hadamard verifies elementwise multiplication and shape checking.
func TestMul_Hadamard(t *testing.T) {
	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	b, _ := tensor.FromSlice([]float64{10, 0, -1, 0.5}, 2, 2)

	out, err := tensor.Mul(a, b)
	assert.NoError(t, err)
	assert.Equal(t, []float64{10, 0, -3, 2}, out.Data())

	c, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, 4)
	_, err = tensor.Mul(a, c)
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch, "shape mismatch must error")
}

// TestSoftmax_AxisSlicesSumToOne verifies normalization along the class
// axis of a (batch, C, H, W) tensor.
func TestSoftmax_AxisSlicesSumToOne(t *testing.T) {
	in, err := tensor.FromSlice([]float64{
		// batch 0, 2 classes, 2×2 spatial
		1, 2, 3, 4,
		4, 3, 2, 1,
	}, 1, 2, 2, 2)
	assert.NoError(t, err)

	out, err := tensor.Softmax(in, 1)
	assert.NoError(t, err)
	for in2 := 0; in2 < 4; in2++ {
		sum := out.Data()[in2] + out.Data()[4+in2]
		assert.InDelta(t, 1.0, sum, floatTol, "each class slice must sum to 1")
	}
}

// TestSoftmax_SaturatedLogits verifies numerical stability: extreme
// logits yield exact-looking 0/1 probabilities, no NaN or Inf.
func TestSoftmax_SaturatedLogits(t *testing.T) {
	in, err := tensor.FromSlice([]float64{-100, 100, -100, -50}, 1, 4)
	assert.NoError(t, err)

	out, err := tensor.Softmax(in, 1)
	assert.NoError(t, err)
	assert.InDelta(t, 0.0, out.Data()[0], floatTol)
	assert.InDelta(t, 1.0, out.Data()[1], floatTol)
	assert.InDelta(t, 0.0, out.Data()[2], floatTol)
	assert.InDelta(t, 0.0, out.Data()[3], floatTol)
}

// TestSoftmax_BadAxis verifies axis validation.
func TestSoftmax_BadAxis(t *testing.T) {
	in, _ := tensor.FromSlice([]float64{1, 2}, 2)

	_, err := tensor.Softmax(in, 1)
	assert.ErrorIs(t, err, tensor.ErrAxisOutOfRange)

	_, err = tensor.Softmax(in, -1)
	assert.ErrorIs(t, err, tensor.ErrAxisOutOfRange)
}
