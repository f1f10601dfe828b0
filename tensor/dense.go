// SPDX-License-Identifier: MIT
// Package tensor: Dense — the concrete n-dimensional array.
// Dense stores elements in a single flat row-major slice for performance
// and cache friendliness; shape metadata maps n-D coordinates onto it.

package tensor

import "fmt"

// Dense is a row-major n-dimensional tensor of float64 values.
// shape holds the extent of each axis; data holds the product of all
// extents in row-major (last axis fastest) order.
type Dense struct {
	shape []int     // per-axis extents, all > 0
	data  []float64 // flat backing storage, length == product(shape)
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, err error) error {
	return fmt.Errorf("Dense.%s: %w", method, err)
}

// checkShape validates that shape is non-empty with all extents > 0 and
// returns the element count.
func checkShape(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrBadShape
	}
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, ErrBadShape
		}
		n *= d
	}

	return n, nil
}

// NewDense creates a zero-initialized tensor with the given shape.
// Stage 1 (Validate): every extent must be > 0.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): return the new Dense or ErrBadShape.
// Complexity: O(n) time and memory, n = product(shape).
func NewDense(shape ...int) (*Dense, error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	s := make([]int, len(shape))
	copy(s, shape)

	return &Dense{shape: s, data: make([]float64, n)}, nil
}

// FromSlice creates a tensor over a copy of data with the given shape.
// Returns ErrBadShape for an invalid shape and ErrDimensionMismatch when
// len(data) differs from the shape's element count.
// Complexity: O(n) time and memory.
func FromSlice(data []float64, shape ...int) (*Dense, error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, ErrDimensionMismatch
	}
	s := make([]int, len(shape))
	copy(s, shape)
	d := make([]float64, n)
	copy(d, data)

	return &Dense{shape: s, data: d}, nil
}

// Shape returns a copy of the tensor's per-axis extents.
// Complexity: O(rank).
func (t *Dense) Shape() []int {
	s := make([]int, len(t.shape))
	copy(s, t.shape)

	return s
}

// Rank returns the number of axes.
// Complexity: O(1).
func (t *Dense) Rank() int {
	return len(t.shape)
}

// Size returns the total number of elements.
// Complexity: O(1).
func (t *Dense) Size() int {
	return len(t.data)
}

// Dim returns the extent of a single axis, or ErrAxisOutOfRange.
// Complexity: O(1).
func (t *Dense) Dim(axis int) (int, error) {
	if axis < 0 || axis >= len(t.shape) {
		return 0, denseErrorf("Dim", ErrAxisOutOfRange)
	}

	return t.shape[axis], nil
}

// Data returns the flat row-major backing slice. The slice is shared
// with the tensor: callers must treat it as read-only.
// Complexity: O(1).
func (t *Dense) Data() []float64 {
	return t.data
}

// indexOf computes the flat offset for an n-D coordinate, validating
// both the coordinate count and every per-axis bound.
// Complexity: O(rank).
func (t *Dense) indexOf(idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, ErrDimensionMismatch
	}
	flat := 0
	for axis, i := range idx {
		if i < 0 || i >= t.shape[axis] {
			return 0, ErrOutOfRange
		}
		flat = flat*t.shape[axis] + i
	}

	return flat, nil
}

// At retrieves the element at the given n-D coordinate.
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from the flat slice.
// Complexity: O(rank).
func (t *Dense) At(idx ...int) (float64, error) {
	flat, err := t.indexOf(idx)
	if err != nil {
		return 0, denseErrorf("At", err)
	}

	return t.data[flat], nil
}

// Set assigns v at the given n-D coordinate.
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into the flat slice.
// Complexity: O(rank).
func (t *Dense) Set(v float64, idx ...int) error {
	flat, err := t.indexOf(idx)
	if err != nil {
		return denseErrorf("Set", err)
	}
	t.data[flat] = v

	return nil
}

// Clone returns a deep copy of the tensor.
// Complexity: O(n) time and memory.
func (t *Dense) Clone() *Dense {
	s := make([]int, len(t.shape))
	copy(s, t.shape)
	d := make([]float64, len(t.data))
	copy(d, t.data)

	return &Dense{shape: s, data: d}
}

// SameShape reports whether t and o have identical shapes.
// Complexity: O(rank).
func (t *Dense) SameShape(o *Dense) bool {
	if len(t.shape) != len(o.shape) {
		return false
	}
	for i, d := range t.shape {
		if o.shape[i] != d {
			return false
		}
	}

	return true
}

// stride returns the row-major stride of the given axis, i.e. the flat
// distance between consecutive elements along it. Assumes axis is valid.
func (t *Dense) stride(axis int) int {
	s := 1
	for a := axis + 1; a < len(t.shape); a++ {
		s *= t.shape[a]
	}

	return s
}
