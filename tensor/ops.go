// SPDX-License-Identifier: MIT
// Package tensor: elementwise kernels and activations.
//
// Purpose:
//   - Provide the elementwise primitives the Dice losses compose:
//     sigmoid, Hadamard product, and an axis-wise stable softmax.
//
// Determinism & Performance:
//   - Fixed flat 0..n-1 (or outer→inner) loop orders.
//   - Every kernel operates directly on the flat row-major buffer.
//   - No hidden allocations beyond the output Dense; O(n) time and space.

package tensor

import "math"

// Sigmoid returns a new tensor with the logistic function applied
// elementwise: out[i] = 1 / (1 + exp(-t[i])).
// Complexity: O(n) time and memory.
func Sigmoid(t *Dense) (*Dense, error) {
	if t == nil {
		return nil, ErrNilTensor
	}
	out := t.Clone()
	for i, v := range out.data {
		out.data[i] = 1.0 / (1.0 + math.Exp(-v))
	}

	return out, nil
}

// Mul returns the elementwise (Hadamard) product of a and b.
// Returns ErrDimensionMismatch when shapes differ.
// Complexity: O(n) time and memory.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilTensor
	}
	if !a.SameShape(b) {
		return nil, ErrDimensionMismatch
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] *= b.data[i]
	}

	return out, nil
}

// Softmax returns a new tensor with softmax applied along the given axis:
// out[..., k, ...] = exp(t[..., k, ...]) / Σ_j exp(t[..., j, ...]).
//
// The implementation is numerically stable: the per-slice maximum is
// subtracted before exponentiation, so saturated logits (±100 and beyond)
// produce clean 0/1 probabilities instead of overflow.
//
// Stage 1 (Validate): nil tensor, axis bounds.
// Stage 2 (Execute): for each (outer, inner) position, one max pass, one
// exp-and-sum pass, one normalize pass along the axis.
// Complexity: O(n) time, O(n) memory for the output.
func Softmax(t *Dense, axis int) (*Dense, error) {
	if t == nil {
		return nil, ErrNilTensor
	}
	if axis < 0 || axis >= len(t.shape) {
		return nil, ErrAxisOutOfRange
	}
	out := t.Clone()

	k := t.shape[axis] // extent of the softmax axis
	inner := t.stride(axis)
	outer := len(t.data) / (k * inner)

	for o := 0; o < outer; o++ {
		base := o * k * inner
		for in := 0; in < inner; in++ {
			// max over the axis slice
			maxV := math.Inf(-1)
			for j := 0; j < k; j++ {
				if v := out.data[base+j*inner+in]; v > maxV {
					maxV = v
				}
			}
			// exponentiate shifted values and accumulate the normalizer
			sum := 0.0
			for j := 0; j < k; j++ {
				e := math.Exp(out.data[base+j*inner+in] - maxV)
				out.data[base+j*inner+in] = e
				sum += e
			}
			// normalize
			for j := 0; j < k; j++ {
				out.data[base+j*inner+in] /= sum
			}
		}
	}

	return out, nil
}
