// SPDX-License-Identifier: MIT
// Package tensor: reductions.
//
// Purpose:
//   - Provide the two reductions the Dice losses need: a full sum and a
//     "sum over every axis except one" that yields a per-slot vector.
//
// Determinism & Performance:
//   - Single deterministic pass over the flat buffer in both cases.
//   - Axis coordinates are recovered arithmetically from flat offsets, so
//     the reduction is independent of how many axes surround the kept one.

package tensor

// Sum returns the sum of all elements.
// Complexity: O(n) time, O(1) memory.
func Sum(t *Dense) (float64, error) {
	if t == nil {
		return 0, ErrNilTensor
	}
	s := 0.0
	for _, v := range t.data {
		s += v
	}

	return s, nil
}

// SumExcept sums over every axis except the given one, producing a
// vector of length shape[axis]: out[j] = Σ of all elements whose
// coordinate along axis equals j.
//
// For a (batch, C, H, W) tensor with axis=1 this reduces over batch,
// height and width at once, regardless of memory layout.
//
// Stage 1 (Validate): nil tensor, axis bounds.
// Stage 2 (Execute): one flat pass; the axis coordinate of flat offset i
// is (i / stride(axis)) % shape[axis].
// Complexity: O(n) time, O(shape[axis]) memory.
func SumExcept(t *Dense, axis int) ([]float64, error) {
	if t == nil {
		return nil, ErrNilTensor
	}
	if axis < 0 || axis >= len(t.shape) {
		return nil, ErrAxisOutOfRange
	}
	k := t.shape[axis]
	inner := t.stride(axis)
	out := make([]float64, k)
	for i, v := range t.data {
		out[(i/inner)%k] += v
	}

	return out, nil
}
