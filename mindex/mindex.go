package mindex

import "sort"

// Less reports whether multi-index a sorts strictly before b under opts.
// Both slices must have equal length; Less on unequal lengths is a
// programmer error and compares only the shared prefix.
//
// Order:
//  1. Graded: smaller exponent sum first.
//  2. Tie-break (or the whole comparison when not graded): lexicographic,
//     first axis most significant — or last axis most significant when
//     Reverse is set.
//
// Complexity: O(dims).
func Less(a, b []int, opts Options) bool {
	if opts.Graded {
		if da, db := degree(a), degree(b); da != db {
			return da < db
		}
	}
	if opts.Reverse {
		for i := len(a) - 1; i >= 0; i-- {
			if a[i] != b[i] {
				return a[i] < b[i]
			}
		}
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Count returns the number of monomials of total degree <= degree in dims
// variables, i.e. the binomial coefficient C(degree+dims, dims).
// Count(degree, dims) is strictly increasing in degree, which guarantees
// termination of minimal-order searches built on top of it.
// Negative degree yields 0.
//
// Complexity: O(dims).
func Count(degree, dims int) int {
	if degree < 0 {
		return 0
	}
	// C(n, k) via the product formula; exact at every step because the
	// running value is itself a binomial coefficient.
	n, c := degree+dims, 1
	for i := 1; i <= dims; i++ {
		c = c * (n - dims + i) / i
	}
	return c
}

// Enumerate returns every multi-index of dims non-negative integers whose
// total degree lies in [lower, upper), sorted ascending under opts.
//
// The result is freshly allocated and safe to retain or truncate; under
// the graded order a truncation to n elements is exactly the n smallest
// indices of any wider degree range.
//
// Errors:
//   - ErrBadDimensions — dims < 1.
//   - ErrBadDegreeRange — lower < 0 or upper <= lower.
//
// Complexity: O(T·dims + T·log T) for T = Count(upper-1, dims) indices.
func Enumerate(lower, upper, dims int, opts Options) ([][]int, error) {
	if dims < 1 {
		return nil, ErrBadDimensions
	}
	if lower < 0 || upper <= lower {
		return nil, ErrBadDegreeRange
	}

	out := make([][]int, 0, Count(upper-1, dims))
	cur := make([]int, dims)
	collect(cur, 0, upper-1, lower, &out)

	sort.Slice(out, func(i, j int) bool { return Less(out[i], out[j], opts) })

	return out, nil
}

// collect appends to out every completion of cur[:axis] whose total degree
// stays <= budget+used, keeping only indices of total degree >= lower.
func collect(cur []int, axis, budget, lower int, out *[][]int) {
	if axis == len(cur)-1 {
		// Last axis: one entry per remaining degree.
		for e := 0; e <= budget; e++ {
			cur[axis] = e
			if degree(cur) >= lower {
				idx := make([]int, len(cur))
				copy(idx, cur)
				*out = append(*out, idx)
			}
		}
		cur[axis] = 0

		return
	}
	for e := 0; e <= budget; e++ {
		cur[axis] = e
		collect(cur, axis+1, budget-e, lower, out)
	}
	cur[axis] = 0
}

// degree returns the exponent sum of a multi-index.
func degree(idx []int) int {
	var d int
	for _, e := range idx {
		d += e
	}

	return d
}
