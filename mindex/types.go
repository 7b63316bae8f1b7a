// SPDX-License-Identifier: MIT

// Package mindex: options and sentinel errors.
package mindex

import "errors"

var (
	// ErrBadDimensions is returned when the number of dimensions is < 1.
	ErrBadDimensions = errors.New("mindex: dimensions must be >= 1")

	// ErrBadDegreeRange is returned when lower < 0 or upper <= lower.
	ErrBadDegreeRange = errors.New("mindex: invalid degree range")
)

// Options selects the total order used by Enumerate and Less.
//
// Fields:
//   - Graded  — degree-major sorting: indices are compared by exponent sum
//     first, so (2,2,2) sorts after every index of sum 5.
//   - Reverse — reverse-lexicographic tie-breaking: the last axis is the
//     most significant, so (1,3) sorts after (3,1).
//
// The zero value is plain lexicographic order (first axis most
// significant); DefaultOptions returns the graded reverse-lex order used
// by the polynomial packages.
type Options struct {
	Graded  bool
	Reverse bool
}

// DefaultOptions returns the canonical order: graded + reverse-lex.
func DefaultOptions() Options {
	return Options{Graded: true, Reverse: true}
}
