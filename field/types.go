// Package field defines options and sentinel errors for field computation.
package field

import (
	"errors"

	"github.com/seanozalpasan/PhysicsPotentialLab/smooth"
)

// Sentinel errors for field operations.
var (
	// ErrNilGrid indicates a nil input grid.
	ErrNilGrid = errors.New("field: grid must be non-nil")
	// ErrNonPositiveSpacing indicates DX or DY ≤ 0.
	ErrNonPositiveSpacing = errors.New("field: lattice spacing must be > 0")
	// ErrNegativeSigma indicates a negative smoothing sigma.
	ErrNegativeSigma = errors.New("field: sigma must be ≥ 0 (0 disables smoothing)")
	// ErrShapeMismatch indicates component matrices of differing shapes.
	ErrShapeMismatch = errors.New("field: Fx and Fy must share shape")
	// ErrEmptyComponents indicates nil or zero-sized component matrices.
	ErrEmptyComponents = errors.New("field: components must be non-empty")
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultSpacing is the lattice spacing used when none is given:
	// samples one physical unit apart along both axes.
	DefaultSpacing = 1.0

	// DefaultEpsilon is the magnitude floor added before division during
	// normalization; keeps zero-field points finite instead of NaN.
	DefaultEpsilon = 1e-10

	// DefaultSigma is the recommended pre-smoothing strength for measured
	// grids. Options.Sigma is 0 (off) by default; set it to DefaultSigma
	// (re-exported from smooth) to de-noise before differentiation.
	DefaultSigma = smooth.DefaultSigma
)

// Options configures Compute.
//
// Fields:
//   - DX, DY  — physical distance between adjacent columns (DX) and rows
//     (DY); must be strictly positive.
//   - Sigma   — standard deviation of the Gaussian pre-smoothing applied to
//     the potential before differentiation. 0 disables smoothing; negative
//     values are rejected. Smoothing runs at most once, never after the
//     gradient.
//
// Example:
//
//	opts := field.DefaultOptions()
//	opts.DX, opts.DY = 0.01, 0.01 // 1 cm probe lattice
//	opts.Sigma = field.DefaultSigma
//
//	vf, err := field.Compute(grid, opts)
type Options struct {
	DX, DY float64
	Sigma  float64
}

// DefaultOptions returns Options with unit spacing and smoothing disabled.
func DefaultOptions() Options {
	return Options{
		DX:    DefaultSpacing,
		DY:    DefaultSpacing,
		Sigma: 0,
	}
}
