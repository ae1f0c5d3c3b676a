// Package smooth applies separable Gaussian smoothing to potential grids,
// suppressing sampling noise before differentiation.
//
// What:
//
//   - Gaussian blurs a potential.Grid with a normalized 1-D kernel applied
//     first along rows, then along columns (separability of the 2-D kernel).
//   - Kernel radius is round(4σ); boundaries use half-sample reflection
//     (index -1 maps to 0, index n to n-1).
//   - Output shape always equals input shape, and every output sample is a
//     convex combination of input samples, so values never leave the input's
//     [min, max] range beyond floating-point rounding.
//
// Why:
//
//   - Measured lab grids carry probe noise; a small blur (sigma ≈ 0.5)
//     keeps finite differences from amplifying it.
//   - Smoothing is applied at most once, before field computation — never
//     after, since blurring computed vectors would distort directions.
//
// Complexity:
//
//   - Gaussian: O(rows×cols×radius) time, O(rows×cols) memory.
//
// Errors:
//
//   - ErrNilGrid: input grid is nil.
//   - ErrNonPositiveSigma: sigma ≤ 0.
package smooth
