// Package field derives a 2-D vector field from a scalar potential grid,
// following the physical relation E = -∇V, with optional pre-smoothing and
// unit-vector normalization.
//
// 🚀 What is field computation?
//
//	Given voltages sampled on a uniform lattice, the electric field at each
//	point is the negative gradient of the potential.  The discrete gradient
//	uses centered differences at interior points and one-sided differences
//	at boundaries, divided by the lattice spacing.  Widely used for:
//	  • Electrostatics labs: field lines from measured voltage grids
//	  • Any conservative field recovered from its scalar potential
//	  • Downstream streamline / quiver rendering
//
// ✨ Key features:
//   - numpy.gradient-compatible boundary policy (one-sided at edges)
//   - explicit positive lattice spacing (DX, DY), default 1.0
//   - optional separable Gaussian pre-smoothing (Sigma > 0), applied at most
//     once, always before differentiation
//   - epsilon-floor normalization: unit vectors everywhere the field is
//     non-zero, graceful near-zero output at true zero-field points
//
// ⚙️ Usage:
//
//	import "github.com/seanozalpasan/PhysicsPotentialLab/field"
//
//	opts := field.DefaultOptions() // DX=1, DY=1, no smoothing
//	opts.Sigma = field.DefaultSigma
//
//	vf, err := field.Compute(grid, opts)
//	unit := vf.Normalize(field.DefaultEpsilon)
//
// Performance:
//
//   - Time:   O(rows×cols) (plus O(rows×cols×radius) when smoothing)
//   - Memory: O(rows×cols)
//
// Errors:
//
//   - ErrNilGrid            — input grid is nil.
//   - ErrNonPositiveSpacing — DX or DY ≤ 0.
//   - ErrNegativeSigma      — Sigma < 0 (0 disables smoothing).
//   - ErrShapeMismatch      — component matrices of differing shapes.
package field
