package potential

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// New constructs a Grid from a non-empty, rectangular 2-D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrNonFinite (wrapped with the offending coordinate) on NaN or ±Inf.
// Complexity: O(rows×cols) time and memory.
func New(values [][]float64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy into flat row-major storage, rejecting non-finite samples.
	data := make([]float64, rows*cols)
	for i, row := range values {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, ErrNonFinite)
			}
			data[i*cols+j] = v
		}
	}

	return &Grid{rows: rows, cols: cols, data: mat.NewDense(rows, cols, data)}, nil
}

// FromDense constructs a Grid by copying an existing dense matrix.
// Returns ErrEmptyGrid on a nil or zero-sized matrix and ErrNonFinite
// (wrapped with the offending coordinate) on NaN or ±Inf entries.
// Complexity: O(rows×cols) time and memory.
func FromDense(d *mat.Dense) (*Grid, error) {
	if d == nil {
		return nil, ErrEmptyGrid
	}
	rows, cols := d.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyGrid
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := d.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, ErrNonFinite)
			}
		}
	}

	return &Grid{rows: rows, cols: cols, data: mat.DenseCopyOf(d)}, nil
}

// Dims returns (rows, cols).
// Complexity: O(1).
func (g *Grid) Dims() (rows, cols int) {
	return g.rows, g.cols
}

// Rows returns the number of rows.
// Complexity: O(1).
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
// Complexity: O(1).
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (i,j) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.rows && j >= 0 && j < g.cols
}

// At returns the sample at row i, column j.
// Panics if (i,j) is out of bounds, matching gonum/mat access semantics;
// use InBounds to guard dynamic indices.
func (g *Grid) At(i, j int) float64 {
	return g.data.At(i, j)
}

// Min returns the smallest sample in the grid.
// Complexity: O(rows×cols).
func (g *Grid) Min() float64 {
	return floats.Min(g.data.RawMatrix().Data)
}

// Max returns the largest sample in the grid.
// Complexity: O(rows×cols).
func (g *Grid) Max() float64 {
	return floats.Max(g.data.RawMatrix().Data)
}

// Values returns a fresh [][]float64 copy of the samples, row-major.
// Mutating the result does not affect the Grid.
// Complexity: O(rows×cols) time and memory.
func (g *Grid) Values() [][]float64 {
	out := make([][]float64, g.rows)
	for i := 0; i < g.rows; i++ {
		out[i] = make([]float64, g.cols)
		for j := 0; j < g.cols; j++ {
			out[i][j] = g.data.At(i, j)
		}
	}

	return out
}

// Dense returns a fresh dense-matrix copy of the samples for callers that
// want to hand the grid to generic gonum/mat routines.
// Complexity: O(rows×cols) time and memory.
func (g *Grid) Dense() *mat.Dense {
	return mat.DenseCopyOf(g.data)
}

// Clone returns an independent copy of the grid.
// Complexity: O(rows×cols) time and memory.
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, data: mat.DenseCopyOf(g.data)}
}
