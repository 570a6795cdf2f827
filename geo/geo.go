// Package geo is the geometry kernel: the signed-area predicate and the
// segment–segment intersection routine the sweep engine subdivides
// edges with. Every function here is pure and stateless — no package
// state, no I/O, no panics on well-formed input.
//
// Coordinates are IEEE-754 float64s throughout; this package does not
// use generics, since the numeric contract is fixed.
package geo

// DefaultEpsilon is the reference tolerance for the parallel-discriminant
// test in Intersect.
const DefaultEpsilon = 1e-7

// DefaultSnapTolerance is the reference per-coordinate distance within
// which a computed intersection point is snapped onto an existing
// segment endpoint.
const DefaultSnapTolerance = 1e-8
