// SPDX-License-Identifier: MIT

// Package lagrange: options and sentinel errors.
package lagrange

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyAbscissas is returned when the input holds no points at all
	// (no coordinate rows, or rows of length zero).
	ErrEmptyAbscissas = errors.New("lagrange: empty abscissas")

	// ErrRaggedAbscissas is returned when the coordinate rows disagree on
	// the number of points (the input is not a dense (dim, size) array).
	ErrRaggedAbscissas = errors.New("lagrange: ragged abscissas")

	// ErrNonFiniteAbscissa is returned when a coordinate is NaN or ±Inf.
	ErrNonFiniteAbscissa = errors.New("lagrange: non-finite abscissa")

	// ErrSingularAbscissas is returned when the Vandermonde determinant is
	// exactly zero: duplicate points, or a configuration the chosen monomial
	// basis cannot separate. Structural property of the input — not retried,
	// no partial result.
	ErrSingularAbscissas = errors.New("lagrange: abscissas yield a singular Vandermonde matrix")
)

// Options configures the interpolation pipeline.
//
// Fields:
//   - Graded  — degree-major monomial ordering (see mindex.Options).
//   - Reverse — reverse-lexicographic tie-breaking.
//   - Sort    — legacy sort token; when non-empty, the presence of the
//     letters 'G' and 'R' overrides Graded and Reverse. Forwarded verbatim
//     to both the exponent enumerator and the monomial basis so the two
//     can never disagree on order.
//   - DirectSolveFrom — when > 0 and size >= this threshold, the n ≥ 3
//     regime computes the coefficient matrix with gonum's dense inverse
//     instead of the cofactor expansion. 0 disables the switch. The output
//     contract (delta property) is identical; only rounding differs.
//
// Whatever the flags, the returned polynomials satisfy the delta property;
// the flags only choose the internal monomial basis and its order.
type Options struct {
	Graded          bool
	Reverse         bool
	Sort            string
	DirectSolveFrom int
}

// DefaultOptions returns the canonical configuration: graded reverse-lex
// monomial order, cofactor solver for every size.
func DefaultOptions() Options {
	return Options{Graded: true, Reverse: true}
}

// effective resolves a caller-supplied *Options (nil means defaults) and
// applies the legacy Sort token.
func effective(opts *Options) Options {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if cfg.Sort != "" {
		cfg.Graded = strings.ContainsRune(cfg.Sort, 'G')
		cfg.Reverse = strings.ContainsRune(cfg.Sort, 'R')
	}

	return cfg
}
