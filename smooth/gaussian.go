package smooth

import (
	"errors"
	"math"

	"github.com/seanozalpasan/PhysicsPotentialLab/potential"
)

// Sentinel errors for smoothing operations.
var (
	// ErrNilGrid indicates a nil input grid.
	ErrNilGrid = errors.New("smooth: grid must be non-nil")
	// ErrNonPositiveSigma indicates sigma ≤ 0.
	ErrNonPositiveSigma = errors.New("smooth: sigma must be > 0")
)

// DefaultSigma is the standard deviation used to de-noise measured lab
// grids; large enough to damp single-sample spikes, small enough to keep
// equipotential structure intact.
const DefaultSigma = 0.5

// truncate bounds the kernel support at truncate·sigma on each side.
const truncate = 4.0

// Gaussian returns a blurred copy of g using a separable Gaussian kernel
// with the given standard deviation (in lattice units).
//
// Stage 1 (Validate): reject nil grids and non-positive sigma.
// Stage 2 (Prepare): build the normalized 1-D kernel, radius = round(4σ).
// Stage 3 (Execute): convolve along rows, then along columns, reflecting
// at boundaries.
//
// The input grid is never mutated. Output shape equals input shape.
// Complexity: O(rows×cols×radius) time, O(rows×cols) memory.
func Gaussian(g *potential.Grid, sigma float64) (*potential.Grid, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if sigma <= 0 {
		return nil, ErrNonPositiveSigma
	}

	kernel := kernel1D(sigma)
	radius := (len(kernel) - 1) / 2
	rows, cols := g.Dims()

	// Horizontal pass: blur each row into an intermediate buffer.
	tmp := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		tmp[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			var acc float64
			for k := -radius; k <= radius; k++ {
				acc += kernel[k+radius] * g.At(i, reflect(j+k, cols))
			}
			tmp[i][j] = acc
		}
	}

	// Vertical pass: blur each column of the intermediate buffer.
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			var acc float64
			for k := -radius; k <= radius; k++ {
				acc += kernel[k+radius] * tmp[reflect(i+k, rows)][j]
			}
			out[i][j] = acc
		}
	}

	return potential.New(out)
}

// kernel1D builds a normalized Gaussian kernel of radius round(truncate·sigma).
// The weights sum to exactly 1, so convolution preserves constant grids.
func kernel1D(sigma float64) []float64 {
	radius := int(truncate*sigma + 0.5)
	kernel := make([]float64, 2*radius+1)
	var sum float64
	for k := -radius; k <= radius; k++ {
		w := math.Exp(-float64(k*k) / (2 * sigma * sigma))
		kernel[k+radius] = w
		sum += w
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	return kernel
}

// reflect maps an out-of-range index into [0,n) by half-sample reflection:
// ... 1 0 | 0 1 ... n-1 | n-1 n-2 ...
func reflect(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i - 1
		}
		if i >= n {
			i = 2*n - i - 1
		}
	}

	return i
}
