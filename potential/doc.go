// Package potential models a 2-D scalar potential sampled on a uniform
// lattice, e.g. voltage measurements taken on a grid of probe positions.
//
// What:
//
//   - Grid wraps a rectangular rows×cols array of float64 samples.
//   - Row index increases downward, column index rightward (display
//     convention, matching row-major CSV input).
//   - Grids are immutable: constructors deep-copy their input, and every
//     accessor that exposes bulk data returns a fresh copy.
//
// Why:
//
//   - Field computation: a Grid is the sole input of field.Compute.
//   - Pre-smoothing: smooth.Gaussian consumes one Grid and produces another.
//   - Safe sharing: immutability makes Grids freely shareable across
//     goroutines with no coordination.
//
// Complexity:
//
//   - New / FromDense / Clone / Values / Dense: O(rows×cols) time & memory.
//   - At / Dims / InBounds / Min / Max: O(1), except Min/Max at O(rows×cols).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNonFinite: an entry is NaN or ±Inf.
package potential
