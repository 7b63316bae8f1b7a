// SPDX-License-Identifier: MIT

// Package poly: polynomial representation and sentinel errors.
package poly

import "errors"

var (
	// ErrBadDimensions is returned when a constructor receives dims < 1
	// (or an empty exponent tuple).
	ErrBadDimensions = errors.New("poly: dimensions must be >= 1")

	// ErrBadExponent is returned when a monomial exponent is negative.
	ErrBadExponent = errors.New("poly: exponents must be non-negative")

	// ErrDimsMismatch is returned when two polynomials (or a polynomial and
	// an evaluation point) disagree on the number of indeterminates.
	ErrDimsMismatch = errors.New("poly: dimension mismatch")

	// ErrEmptySum is returned by Sum on an empty slice: the dimensionality
	// of the result would be undefined.
	ErrEmptySum = errors.New("poly: empty sum")
)

// term is a single coefficient·monomial pair. The exponent slice is owned
// by the term and never aliased to caller memory.
type term struct {
	coeff float64
	exps  []int
}

// Poly is a sparse multivariate polynomial in dims indeterminates.
// Terms are kept strictly ascending in the canonical graded reverse-lex
// order, with unique exponent tuples and no zero coefficients; the zero
// polynomial has no terms. The zero value of Poly is not usable — obtain
// instances from the package constructors.
type Poly struct {
	dims  int
	terms []term
}
