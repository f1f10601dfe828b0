// SPDX-License-Identifier: MIT
// Package tensor: one-hot encoding and its argmax inverse.

package tensor

import "fmt"

// OneHot expands a tensor of class indices into an indicator tensor,
// inserting the class axis at position 1. A (batch,) input becomes
// (batch, numClasses); a (batch, H, W) input becomes
// (batch, numClasses, H, W). For every element exactly one class slot is
// set to 1, the rest to 0.
//
// Every input value must be an exact integer in [0, numClasses);
// anything else returns ErrClassIndex naming the offending value.
// Complexity: O(n·numClasses) time and memory for the output.
func OneHot(t *Dense, numClasses int) (*Dense, error) {
	if t == nil {
		return nil, ErrNilTensor
	}
	if numClasses <= 0 {
		return nil, ErrBadShape
	}

	// Output shape: leading axis, class axis, then the remaining axes.
	outShape := make([]int, 0, len(t.shape)+1)
	outShape = append(outShape, t.shape[0], numClasses)
	outShape = append(outShape, t.shape[1:]...)
	out, err := NewDense(outShape...)
	if err != nil {
		return nil, err
	}

	rest := 1 // elements per leading-axis slot
	for _, d := range t.shape[1:] {
		rest *= d
	}

	for i, v := range t.data {
		cls := int(v)
		if float64(cls) != v || cls < 0 || cls >= numClasses {
			return nil, fmt.Errorf("OneHot: value %v at offset %d with %d classes: %w",
				v, i, numClasses, ErrClassIndex)
		}
		outer, in := i/rest, i%rest
		out.data[(outer*numClasses+cls)*rest+in] = 1
	}

	return out, nil
}

// Argmax removes the given axis, keeping for each remaining position the
// index of the largest value along it (first occurrence wins on ties).
// Applied along axis 1 of a OneHot result it recovers the original class
// indices. For a rank-1 input the result is a single-element tensor.
// Complexity: O(n) time.
func Argmax(t *Dense, axis int) (*Dense, error) {
	if t == nil {
		return nil, ErrNilTensor
	}
	if axis < 0 || axis >= len(t.shape) {
		return nil, ErrAxisOutOfRange
	}

	outShape := make([]int, 0, len(t.shape)-1)
	outShape = append(outShape, t.shape[:axis]...)
	outShape = append(outShape, t.shape[axis+1:]...)
	if len(outShape) == 0 {
		outShape = []int{1}
	}
	out, err := NewDense(outShape...)
	if err != nil {
		return nil, err
	}

	k := t.shape[axis]
	inner := t.stride(axis)
	outer := len(t.data) / (k * inner)

	for o := 0; o < outer; o++ {
		base := o * k * inner
		for in := 0; in < inner; in++ {
			best, bestV := 0, t.data[base+in]
			for j := 1; j < k; j++ {
				if v := t.data[base+j*inner+in]; v > bestV {
					best, bestV = j, v
				}
			}
			out.data[o*inner+in] = float64(best)
		}
	}

	return out, nil
}
