// Package gridcsv loads potential grids from header-less numeric CSV files,
// the exchange format produced by lab data-acquisition spreadsheets.
//
// What:
//
//   - Read parses row-major CSV from any io.Reader into a potential.Grid.
//   - ReadFile is the path-based convenience wrapper.
//   - Every cell must parse as a float64; surrounding whitespace is ignored.
//   - Ragged records are rejected by the CSV reader itself; the resulting
//     grid is always rectangular, non-empty and finite, ready for
//     field.Compute without further validation.
//
// Why:
//
//   - Keeps parsing concerns out of the numerical core: field and smooth
//     assume pre-validated grids and never see I/O failures.
//
// Errors:
//
//   - ErrNoData: the input contains no records.
//   - ErrBadCell: a cell failed to parse as a number (wrapped with its
//     row/column position and raw text).
//   - CSV-level failures (ragged rows, I/O errors) are wrapped and returned
//     as-is from encoding/csv.
package gridcsv
