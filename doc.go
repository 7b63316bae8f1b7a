// Package lvlpoly is a small toolkit for multivariate polynomial
// interpolation on scattered points — from exponent enumeration to the
// cardinal (Lagrange) basis itself.
//
// 🚀 What is lvlpoly?
//
//	A pure-Go library that brings together:
//		• mindex/   — graded / reverse-lexicographic multi-index enumeration
//		• poly/     — a sparse multivariate polynomial type with exact term
//		              merging, evaluation and deterministic printing
//		• lagrange/ — generalized Lagrange (cardinal) polynomials for
//		              arbitrary point sets in any dimension
//
// ✨ Why choose lvlpoly?
//
//   - Deterministic – fixed monomial orders, no global state, no randomness
//   - Rock-solid guarantees – sentinel errors, fail-fast validation
//   - Dense linear algebra delegated to gonum (mat.Det / mat.Inverse)
//   - Extensible – swap sort orders, switch the solver regime per call
//
// Quick taste:
//
//	ps, err := lagrange.Lagrange1D([]float64{-1, 0, 1}, nil)
//	// ps[0] = 0.5*q0**2-0.5*q0, ps[1] = -q0**2+1, ps[2] = 0.5*q0**2+0.5*q0
//
// Each polynomial evaluates to 1 at its own node and to 0 at every other
// node — the Kronecker-delta interpolation property.
//
//	go get github.com/katalvlaran/lvlpoly/lagrange
package lvlpoly
