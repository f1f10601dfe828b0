// Package tensor provides a dense n-dimensional float64 array — flat
// row-major storage behind shape metadata — together with the handful of
// primitives a loss formula needs: elementwise ops, axis reductions,
// sigmoid/softmax, one-hot encoding and argmax.
//
// 🚀 What is tensor?
//
//	The explicit array abstraction backing the shipseg losses:
//	  • Dense        — shape + flat []float64, O(1) indexing
//	  • Sigmoid, Mul — elementwise kernels over the flat buffer
//	  • Sum, SumExcept — reductions over all axes, or all but one
//	  • Softmax      — numerically stable, along any axis
//	  • OneHot / Argmax — class-index ↔ indicator round-trip
//
// ✨ Design notes:
//
//   - Deterministic – fixed flat 0..n-1 traversal in every kernel
//   - No hidden allocations beyond the output Dense
//   - No gradient support – backpropagation is a training-framework
//     concern, not part of this package's contract
//
// All functions validate first and compute second; user-triggered error
// conditions return sentinel errors (see errors.go), never panic.
package tensor
