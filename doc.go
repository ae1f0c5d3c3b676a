// Package physicspotentiallab turns 2-D scalar potential measurements
// (e.g. voltage grids from an electrostatics lab) into vector fields.
//
// 🚀 What is PhysicsPotentialLab?
//
//	A small, deterministic library that brings together:
//		• potential/ — immutable rectangular grids of scalar samples
//		• field/     — negative-gradient field computation & normalization
//		• smooth/    — separable Gaussian pre-smoothing for noisy data
//		• gridcsv/   — header-less numeric CSV ingestion
//
// ✨ Why choose it?
//
//   - Physics-faithful – E = -∇V with standard centered/one-sided
//     finite differences and explicit lattice spacing
//   - Rock-solid guarantees – inputs validated up front, outputs always
//     share the source grid's shape, zero-field points never divide by zero
//   - Pure functions – no global state, no mutation of inputs, safe to
//     call from any number of goroutines without coordination
//
// Typical pipeline:
//
//	grid, _ := gridcsv.ReadFile("labdata.csv")
//	vf, _ := field.Compute(grid, field.Options{DX: 1, DY: 1, Sigma: field.DefaultSigma})
//	unit := vf.Normalize(field.DefaultEpsilon)
//
// The resulting (Fx, Fy) arrays are ready for a renderer to overlay as
// streamlines or quivers; rendering itself is out of scope.
//
//	go get github.com/seanozalpasan/PhysicsPotentialLab
package physicspotentiallab
