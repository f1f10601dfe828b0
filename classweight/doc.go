// Package classweight derives per-class loss weights from a
// run-length-encoded mask dataset. Two schemes, both over the same
// two-class (background, foreground) split:
//
//   - ENet log-weighting: w = 1 / ln(c + propensity). The smoothing
//     constant c bounds the weight of a near-empty class by 1/ln(c),
//     unlike raw inverse frequency which explodes.
//   - Median-frequency balancing: w = median(freq) / freq, where the
//     foreground frequency is taken only over images that contain any
//     foreground — the background denominator covers every image. The
//     two-element median is the mean of the two frequencies.
//
// Statistics are collected in one pass over dataset records; both
// weighting functions are then pure arithmetic over the collected
// Stats. A zero-frequency class yields an infinite weight, surfaced via
// the non-fatal ErrZeroFrequency alongside the computed vector rather
// than being clamped.
package classweight
