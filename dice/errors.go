package dice

import "errors"

// Sentinel errors for Dice loss construction and evaluation.
var (
	// ErrBadOptions indicates an unknown reduction mode or a negative
	// eps at construction time.
	ErrBadOptions = errors.New("dice: invalid options")
	// ErrNilInput indicates a nil logits or target tensor.
	ErrNilInput = errors.New("dice: nil input tensor")
	// ErrShapeMismatch indicates logits and target of different shapes
	// in the binary loss.
	ErrShapeMismatch = errors.New("dice: logits and target shapes differ")
	// ErrNonBinaryTarget indicates a binary-loss target value outside {0, 1}.
	ErrNonBinaryTarget = errors.New("dice: target values must be 0 or 1")
	// ErrBadRank indicates an unsupported logits/target dimensionality
	// combination in the multi-class loss.
	ErrBadRank = errors.New("dice: unsupported logits/target dimensionality")
)
