// Package dice implements the Sørensen–Dice loss with logits for binary
// and multi-class segmentation.
//
// 🚀 What is the Dice loss?
//
//	The Dice coefficient 2|X∩Y| / (|X|+|Y|) measures overlap between two
//	sets; its soft, differentiable negation is minimized during training
//	to maximize overlap between predicted probability mass and target
//	regions:
//	  • BinaryLoss     — sigmoid probabilities vs {0,1} targets, one
//	    aggregate scalar over the flattened input, range (−1, 0]
//	  • MultiClassLoss — softmax probabilities vs one-hot targets, one
//	    value per class reduced over every other axis, then ReduceNone /
//	    ReduceMean / ReduceSum across classes
//
// ✨ Design notes:
//
//   - Reduction is a fixed enum validated once at construction, not a
//     string dispatched per call
//   - A loss value is a pure function of (logits, target); the loss
//     object is an immutable configuration capture
//   - No gradients: backpropagation belongs to the training framework
//
// Both losses validate shapes and target values first and return
// sentinel errors (see errors.go); no partial result accompanies an
// error.
package dice
