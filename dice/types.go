// Package dice defines the reduction enum and options shared by the
// binary and multi-class losses.
package dice

// DefaultEps is the default denominator stability constant.
const DefaultEps = 1e-6

// Reduction selects how the multi-class per-class loss vector collapses.
//
//   - ReduceMean — arithmetic mean over classes (the conventional default)
//   - ReduceSum  — sum over classes
//   - ReduceNone — keep the full per-class vector
type Reduction int

const (
	// ReduceMean averages the per-class losses.
	ReduceMean Reduction = iota
	// ReduceSum sums the per-class losses.
	ReduceSum
	// ReduceNone returns the per-class losses unreduced.
	ReduceNone
)

// String returns the reduction's conventional lowercase name.
func (r Reduction) String() string {
	switch r {
	case ReduceMean:
		return "mean"
	case ReduceSum:
		return "sum"
	case ReduceNone:
		return "none"
	default:
		return "unknown"
	}
}

// valid reports whether r is one of the declared variants.
func (r Reduction) valid() bool {
	return r == ReduceMean || r == ReduceSum || r == ReduceNone
}

// Options configures a Dice loss.
//
// Fields:
//   - Reduction — how per-class losses collapse (multi-class only; the
//     binary loss produces a single aggregate scalar regardless).
//   - Eps — stability constant added to the denominator. Zero selects
//     DefaultEps; a negative value is rejected at construction.
type Options struct {
	Reduction Reduction
	Eps       float64
}

// DefaultOptions returns Options with ReduceMean and DefaultEps.
func DefaultOptions() Options {
	return Options{Reduction: ReduceMean, Eps: DefaultEps}
}

// normalize validates opts once and fills defaults. Both constructors
// call it so a malformed reduction or eps never reaches Forward.
func (o Options) normalize() (Options, error) {
	if !o.Reduction.valid() || o.Eps < 0 {
		return Options{}, ErrBadOptions
	}
	if o.Eps == 0 {
		o.Eps = DefaultEps
	}

	return o, nil
}
