package field

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// VectorField holds the x- and y-components of a 2-D vector field sampled
// on the same lattice as its source potential grid. Fx and Fy always share
// shape. Construct via Compute or NewVectorField; both deep-copy, so a
// VectorField never aliases caller-owned storage. Treat the component
// matrices as read-only.
type VectorField struct {
	Fx, Fy *mat.Dense
}

// NewVectorField constructs a VectorField from two same-shape component
// matrices, deep-copying both.
// Returns ErrEmptyComponents on nil or zero-sized input,
// ErrShapeMismatch if the shapes differ.
// Complexity: O(rows×cols) time and memory.
func NewVectorField(fx, fy *mat.Dense) (*VectorField, error) {
	if fx == nil || fy == nil {
		return nil, ErrEmptyComponents
	}
	xr, xc := fx.Dims()
	yr, yc := fy.Dims()
	if xr == 0 || xc == 0 {
		return nil, ErrEmptyComponents
	}
	if xr != yr || xc != yc {
		return nil, ErrShapeMismatch
	}

	return &VectorField{Fx: mat.DenseCopyOf(fx), Fy: mat.DenseCopyOf(fy)}, nil
}

// Dims returns (rows, cols).
// Complexity: O(1).
func (f *VectorField) Dims() (rows, cols int) {
	return f.Fx.Dims()
}

// At returns the vector (fx, fy) at row i, column j.
// Panics if (i,j) is out of bounds, matching gonum/mat access semantics.
func (f *VectorField) At(i, j int) (fx, fy float64) {
	return f.Fx.At(i, j), f.Fy.At(i, j)
}

// Magnitude returns sqrt(Fx²+Fy²) at row i, column j.
// Complexity: O(1).
func (f *VectorField) Magnitude(i, j int) float64 {
	return math.Hypot(f.Fx.At(i, j), f.Fy.At(i, j))
}

// MagnitudeGrid returns a fresh matrix of per-point magnitudes.
// Complexity: O(rows×cols) time and memory.
func (f *VectorField) MagnitudeGrid() *mat.Dense {
	rows, cols := f.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, f.Magnitude(i, j))
		}
	}

	return out
}

// Normalize returns a new field whose vectors are scaled toward unit
// magnitude: each component is divided by sqrt(Fx²+Fy²)+epsilon. Where the
// source magnitude is far above epsilon the result has magnitude ≈ 1; at
// true zero-field points the result degrades to a near-zero vector instead
// of NaN or a division fault. Direction is always preserved.
//
// epsilon ≤ 0 selects DefaultEpsilon. The receiver is never mutated.
// Complexity: O(rows×cols) time and memory.
func (f *VectorField) Normalize(epsilon float64) *VectorField {
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	rows, cols := f.Dims()
	fx := mat.NewDense(rows, cols, nil)
	fy := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			div := f.Magnitude(i, j) + epsilon
			fx.Set(i, j, f.Fx.At(i, j)/div)
			fy.Set(i, j, f.Fy.At(i, j)/div)
		}
	}

	return &VectorField{Fx: fx, Fy: fy}
}
