package field

import (
	"gonum.org/v1/gonum/mat"

	"github.com/seanozalpasan/PhysicsPotentialLab/potential"
	"github.com/seanozalpasan/PhysicsPotentialLab/smooth"
)

// Compute — scalar potential to vector field
//
// Description:
//
//	Compute derives the vector field F = -∇V from a potential grid V,
//	consistent with the physical relation between an electric field and
//	its potential: vectors point from high potential toward low.
//
// Algorithm Outline:
//  1. Validate: grid non-nil, DX > 0, DY > 0, Sigma ≥ 0.
//  2. If Sigma > 0, replace V with smooth.Gaussian(V, Sigma). Smoothing
//     happens exactly once and always before differentiation.
//  3. Per-axis discrete gradient with standard numerical-gradient
//     boundary policy:
//     interior:  (V[k+1] - V[k-1]) / (2h)
//     low edge:  (V[1]   - V[0])   / h
//     high edge: (V[n-1] - V[n-2]) / h
//     where h is the spacing along that axis. An axis of length 1 has no
//     variation to difference; its gradient component is 0, preserving the
//     output-shape guarantee for single-row and single-column grids.
//  4. Negate both components: Fx = -∂V/∂x (along columns, spacing DX),
//     Fy = -∂V/∂y (along rows, spacing DY).
//
// Guarantees:
//
//   - Output shape equals input shape.
//   - Constant grids yield an all-zero field.
//   - Pure: the input grid is never mutated; identical inputs give
//     identical outputs.
//
// Complexity:
//
//	Time   = O(rows×cols) (+ O(rows×cols×radius) when smoothing)
//	Memory = O(rows×cols)
//
// Errors:
//   - ErrNilGrid            — g is nil.
//   - ErrNonPositiveSpacing — DX or DY ≤ 0.
//   - ErrNegativeSigma      — Sigma < 0.
func Compute(g *potential.Grid, opts Options) (*VectorField, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if opts.DX <= 0 || opts.DY <= 0 {
		return nil, ErrNonPositiveSpacing
	}
	if opts.Sigma < 0 {
		return nil, ErrNegativeSigma
	}

	src := g
	if opts.Sigma > 0 {
		var err error
		if src, err = smooth.Gaussian(g, opts.Sigma); err != nil {
			return nil, err
		}
	}

	rows, cols := src.Dims()
	fx := mat.NewDense(rows, cols, nil)
	fy := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			fx.Set(i, j, -gradAlongX(src, i, j, opts.DX))
			fy.Set(i, j, -gradAlongY(src, i, j, opts.DY))
		}
	}

	return &VectorField{Fx: fx, Fy: fy}, nil
}

// gradAlongX returns ∂V/∂x at (i,j): the finite difference across columns.
func gradAlongX(g *potential.Grid, i, j int, dx float64) float64 {
	cols := g.Cols()
	switch {
	case cols == 1:
		return 0
	case j == 0:
		return (g.At(i, 1) - g.At(i, 0)) / dx
	case j == cols-1:
		return (g.At(i, cols-1) - g.At(i, cols-2)) / dx
	default:
		return (g.At(i, j+1) - g.At(i, j-1)) / (2 * dx)
	}
}

// gradAlongY returns ∂V/∂y at (i,j): the finite difference across rows.
func gradAlongY(g *potential.Grid, i, j int, dy float64) float64 {
	rows := g.Rows()
	switch {
	case rows == 1:
		return 0
	case i == 0:
		return (g.At(1, j) - g.At(0, j)) / dy
	case i == rows-1:
		return (g.At(rows-1, j) - g.At(rows-2, j)) / dy
	default:
		return (g.At(i+1, j) - g.At(i-1, j)) / (2 * dy)
	}
}
