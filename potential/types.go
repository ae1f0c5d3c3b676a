// Package potential defines the Grid type and sentinel errors for the
// potential subpackage of github.com/seanozalpasan/PhysicsPotentialLab.
package potential

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("potential: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("potential: all rows must have the same length")
	// ErrNonFinite indicates a NaN or ±Inf entry in the input.
	ErrNonFinite = errors.New("potential: grid values must be finite")
)

// Grid is an immutable 2-D scalar potential sampled on a uniform lattice.
// rows and cols define dimensions; data holds the samples row-major.
// Construct via New or FromDense; the zero value is not usable.
type Grid struct {
	rows, cols int
	data       *mat.Dense
}
