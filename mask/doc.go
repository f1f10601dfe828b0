// Package mask provides the run-length codec and bitmap grid for ship
// segmentation masks. It supports:
//
//   - Foreground pixel counting straight from an encoding (no grid build)
//   - Decoding an encoding into a Bitmap and encoding a Bitmap back
//   - Four- or eight-connectivity extraction of individual ships
//   - Rendering a Bitmap to an image.Gray, with thumbnail downscaling
//
// The encoding is the dataset's documented format: whitespace-separated
// (start, length) integer pairs over the column-major flattening of a
// 768×768 image, starts 1-based. A pixel is foreground iff it is covered
// by some run.
//
// Decode and Encode are exact inverses for any valid Bitmap, so
// Encode(must(Decode(s))) == s holds for canonical encodings (sorted,
// non-adjacent runs), which is what the dataset ships.
package mask
