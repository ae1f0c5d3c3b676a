package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seanozalpasan/PhysicsPotentialLab/field"
	"github.com/seanozalpasan/PhysicsPotentialLab/potential"
)

// mustGrid builds a grid or fails the test.
func mustGrid(t *testing.T, values [][]float64) *potential.Grid {
	t.Helper()
	g, err := potential.New(values)
	require.NoError(t, err, "test grid must be valid")

	return g
}

// TestCompute_InputErrors verifies nil-grid, bad-spacing and bad-sigma rejection.
func TestCompute_InputErrors(t *testing.T) {
	g := mustGrid(t, [][]float64{{1, 2}, {3, 4}})

	_, err := field.Compute(nil, field.DefaultOptions())
	assert.ErrorIs(t, err, field.ErrNilGrid, "nil grid must error")

	opts := field.DefaultOptions()
	opts.DX = 0
	_, err = field.Compute(g, opts)
	assert.ErrorIs(t, err, field.ErrNonPositiveSpacing, "DX=0 must error")

	opts = field.DefaultOptions()
	opts.DY = -1
	_, err = field.Compute(g, opts)
	assert.ErrorIs(t, err, field.ErrNonPositiveSpacing, "DY<0 must error")

	opts = field.DefaultOptions()
	opts.Sigma = -0.5
	_, err = field.Compute(g, opts)
	assert.ErrorIs(t, err, field.ErrNegativeSigma, "Sigma<0 must error")
}

// TestCompute_ShapeMatchesInput checks the shape guarantee across geometries,
// including single-row and single-column grids.
func TestCompute_ShapeMatchesInput(t *testing.T) {
	cases := [][]int{{1, 1}, {1, 6}, {6, 1}, {3, 3}, {4, 7}}
	for _, shape := range cases {
		rows, cols := shape[0], shape[1]
		values := make([][]float64, rows)
		for i := range values {
			values[i] = make([]float64, cols)
			for j := range values[i] {
				values[i][j] = float64(i + j*j)
			}
		}
		g := mustGrid(t, values)

		vf, err := field.Compute(g, field.DefaultOptions())
		require.NoError(t, err)
		r, c := vf.Dims()
		assert.Equal(t, rows, r, "Fx/Fy row count must equal grid rows")
		assert.Equal(t, cols, c, "Fx/Fy column count must equal grid cols")
	}
}

// TestCompute_ConstantGridZeroField checks that the gradient of a constant is zero.
func TestCompute_ConstantGridZeroField(t *testing.T) {
	g := mustGrid(t, [][]float64{
		{7, 7, 7, 7},
		{7, 7, 7, 7},
		{7, 7, 7, 7},
	})

	vf, err := field.Compute(g, field.DefaultOptions())
	require.NoError(t, err)
	rows, cols := vf.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			fx, fy := vf.At(i, j)
			assert.InDelta(t, 0, fx, 1e-15, "Fx must vanish on constant grid at (%d,%d)", i, j)
			assert.InDelta(t, 0, fy, 1e-15, "Fy must vanish on constant grid at (%d,%d)", i, j)
		}
	}
}

// TestCompute_RampAlongColumns checks a linear ramp: potential rises along
// columns, so the field is uniform, negative in x, and zero in y — pointing
// from high potential to low.
func TestCompute_RampAlongColumns(t *testing.T) {
	g := mustGrid(t, [][]float64{
		{1, 2, 3},
		{1, 2, 3},
		{1, 2, 3},
	})

	vf, err := field.Compute(g, field.DefaultOptions())
	require.NoError(t, err)
	rows, cols := vf.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			fx, fy := vf.At(i, j)
			assert.InDelta(t, -1.0, fx, 1e-12, "Fx must be uniform -1 at (%d,%d)", i, j)
			assert.InDelta(t, 0.0, fy, 1e-12, "Fy must vanish at (%d,%d)", i, j)
		}
	}
}

// TestCompute_PeakPointsOutward checks that field vectors point away from a
// positive potential peak, consistent with E = -∇V.
func TestCompute_PeakPointsOutward(t *testing.T) {
	g := mustGrid(t, [][]float64{
		{0, 0, 0},
		{0, 10, 0},
		{0, 0, 0},
	})

	vf, err := field.Compute(g, field.DefaultOptions())
	require.NoError(t, err)

	// Left of the peak: field points further left (negative x).
	fx, _ := vf.At(1, 0)
	assert.Negative(t, fx, "field left of peak must point -x")
	// Right of the peak: positive x.
	fx, _ = vf.At(1, 2)
	assert.Positive(t, fx, "field right of peak must point +x")
	// Above the peak: negative y (row index decreases away from peak).
	_, fy := vf.At(0, 1)
	assert.Negative(t, fy, "field above peak must point -y")
	// Below the peak: positive y.
	_, fy = vf.At(2, 1)
	assert.Positive(t, fy, "field below peak must point +y")
	// At the peak itself both centered differences cancel.
	fx, fy = vf.At(1, 1)
	assert.InDelta(t, 0, fx, 1e-15, "Fx at peak must cancel")
	assert.InDelta(t, 0, fy, 1e-15, "Fy at peak must cancel")
}

// TestCompute_SpacingScalesGradient checks that doubling the spacing halves
// the corresponding component (finite differences divide by spacing).
func TestCompute_SpacingScalesGradient(t *testing.T) {
	g := mustGrid(t, [][]float64{
		{0, 1, 2},
		{2, 3, 4},
		{4, 5, 6},
	})

	unit, err := field.Compute(g, field.DefaultOptions())
	require.NoError(t, err)

	opts := field.DefaultOptions()
	opts.DX = 2
	wide, err := field.Compute(g, opts)
	require.NoError(t, err)

	rows, cols := unit.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			uFx, uFy := unit.At(i, j)
			wFx, wFy := wide.At(i, j)
			assert.InDelta(t, uFx/2, wFx, 1e-12, "Fx must halve with DX=2 at (%d,%d)", i, j)
			assert.InDelta(t, uFy, wFy, 1e-12, "Fy must not change with DX at (%d,%d)", i, j)
		}
	}
}

// TestCompute_WithSmoothing checks that pre-smoothing keeps the shape and
// the zero-field property on constants, while damping sharp features.
func TestCompute_WithSmoothing(t *testing.T) {
	opts := field.DefaultOptions()
	opts.Sigma = field.DefaultSigma

	flat := mustGrid(t, [][]float64{{3, 3, 3}, {3, 3, 3}})
	vf, err := field.Compute(flat, opts)
	require.NoError(t, err)
	fx, fy := vf.At(0, 1)
	assert.InDelta(t, 0, fx, 1e-12, "smoothed constant grid still has zero field")
	assert.InDelta(t, 0, fy, 1e-12, "smoothed constant grid still has zero field")

	peak := mustGrid(t, [][]float64{
		{0, 0, 0},
		{0, 10, 0},
		{0, 0, 0},
	})
	sharp, err := field.Compute(peak, field.DefaultOptions())
	require.NoError(t, err)
	soft, err := field.Compute(peak, opts)
	require.NoError(t, err)

	r1, c1 := sharp.Dims()
	r2, c2 := soft.Dims()
	assert.Equal(t, r1, r2, "smoothing must not change shape")
	assert.Equal(t, c1, c2, "smoothing must not change shape")

	sharpFx, _ := sharp.At(1, 0)
	softFx, _ := soft.At(1, 0)
	assert.Negative(t, softFx, "smoothed field keeps its outward direction")
	assert.Less(t, sharpFx, softFx, "smoothing must damp the steepest slope")
	// Compute must never mutate the caller's grid.
	assert.Equal(t, 10.0, peak.At(1, 1), "input grid must survive smoothing untouched")
}
