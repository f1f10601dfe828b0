// Package dataset ingests the segmentation dataset's mask table: a CSV
// with an ImageId column and an EncodedPixels column, one row per ship.
//
// An image without ships appears as a row whose EncodedPixels cell is
// empty; that absence is preserved as an explicit null (null.String),
// never conflated with an empty encoding string by downstream code.
//
// The same image identifier may appear on several rows (one per ship);
// deduplication is the statistics layer's concern, not the reader's.
package dataset
