package gridcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/seanozalpasan/PhysicsPotentialLab/potential"
)

// Sentinel errors for CSV ingestion.
var (
	// ErrNoData indicates the input contains no records at all.
	ErrNoData = errors.New("gridcsv: input contains no data")
	// ErrBadCell indicates a cell that does not parse as a number.
	ErrBadCell = errors.New("gridcsv: cell is not numeric")
)

// Read parses header-less, row-major numeric CSV from r into a Grid.
// Returns ErrNoData on empty input and ErrBadCell (wrapped with position)
// on non-numeric cells; ragged records surface as csv.ErrFieldCount.
// Complexity: O(rows×cols) time and memory.
func Read(r io.Reader) (*potential.Grid, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("gridcsv: read: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}

	values := make([][]float64, len(records))
	for i, record := range records {
		values[i] = make([]float64, len(record))
		for j, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("gridcsv: row %d, col %d: %q: %w", i, j, cell, ErrBadCell)
			}
			values[i][j] = v
		}
	}

	// potential.New re-validates shape and finiteness; a NaN spelled out in
	// the CSV ("nan") is rejected here, not silently carried forward.
	return potential.New(values)
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string) (*potential.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridcsv: open: %w", err)
	}
	defer f.Close()

	return Read(f)
}
