package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/guregu/null.v4"
)

// Expected header column names.
const (
	ColumnImageID       = "ImageId"
	ColumnEncodedPixels = "EncodedPixels"
)

// Sentinel errors for dataset ingestion.
var (
	// ErrNoHeader indicates an empty input with no header row.
	ErrNoHeader = errors.New("dataset: missing header row")
	// ErrMissingColumn indicates a header without a required column.
	ErrMissingColumn = errors.New("dataset: required column not found")
)

// Record is one row of the mask table. EncodedPixels is null for an
// image with no foreground pixels.
type Record struct {
	ImageID       string
	EncodedPixels null.String
}

// ReadCSV parses mask records from r. The header must name the ImageId
// and EncodedPixels columns; their order is free and extra columns are
// ignored. An empty EncodedPixels cell yields a null value.
//
// Stage 1 (Validate): locate both columns in the header or fail with
// ErrMissingColumn / ErrNoHeader.
// Stage 2 (Execute): read all rows into memory.
// Complexity: O(rows) time and memory.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}

	idCol, encCol := -1, -1
	for i, name := range header {
		switch name {
		case ColumnImageID:
			idCol = i
		case ColumnEncodedPixels:
			encCol = i
		}
	}
	if idCol < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnImageID)
	}
	if encCol < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnEncodedPixels)
	}

	var records []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read row: %w", err)
		}
		rec := Record{ImageID: row[idCol]}
		if enc := row[encCol]; enc != "" {
			rec.EncodedPixels = null.StringFrom(enc)
		}
		records = append(records, rec)
	}

	return records, nil
}

// Load reads mask records from the CSV file at path.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(f)
}
