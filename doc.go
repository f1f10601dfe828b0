// Package shipseg is a small numeric toolbox for ship-segmentation
// experiments — run-length-encoded mask statistics and Sørensen–Dice
// losses, reimplemented as plain, dependency-light Go.
//
// 🚀 What is shipseg?
//
//	A pure, stateless library that brings together:
//		• tensor/      — dense n-dimensional arrays: elementwise ops, axis
//		                 reductions, sigmoid/softmax, one-hot & argmax
//		• mask/        — run-length codec for 768×768 column-major ship
//		                 masks, connected-ship extraction, rendering
//		• dataset/     — (ImageId, EncodedPixels) CSV ingestion with an
//		                 explicit null marker for empty masks
//		• classweight/ — per-class loss weights: ENet log-weighting and
//		                 median-frequency balancing
//		• dice/        — binary & multi-class Dice loss with logits,
//		                 reduction as a validated enum
//
// ✨ Why choose shipseg?
//
//   - Deterministic – every call is a pure function of its inputs
//   - Honest errors – sentinel errors matched with errors.Is, no panics
//     on user input, no silent clamping of degenerate values
//   - Pure Go – no cgo, no autodiff framework required
//
// Everything is synchronous and single-threaded: no shared state, no I/O
// during computation, no goroutines. The library computes numbers; a
// training loop elsewhere consumes them.
//
//	go get github.com/katalvlaran/shipseg
package shipseg
