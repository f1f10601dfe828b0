// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// tensor package. All operations return these sentinels and tests check
// them via errors.Is. No operation panics on user-triggered conditions.

package tensor

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "tensor: ..." for consistency and easy
// grepping across logs. Sentinels are not %w-wrapped when returned
// directly; where call-site context helps, they are wrapped once with
// fmt.Errorf("Op: %w", ErrX) — callers still match with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (no dimensions, or any dimension <= 0).
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Mul over tensors of different shapes, or FromSlice with a data
	// length that does not match the shape product.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrOutOfRange indicates an element index outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrAxisOutOfRange indicates an axis argument outside [0, Rank).
	ErrAxisOutOfRange = errors.New("tensor: axis out of range")

	// ErrClassIndex indicates a one-hot input value that is not an integer
	// in [0, numClasses).
	ErrClassIndex = errors.New("tensor: value is not a valid class index")

	// ErrNilTensor indicates that a nil *Dense was passed where a tensor
	// is required.
	ErrNilTensor = errors.New("tensor: nil tensor")
)
