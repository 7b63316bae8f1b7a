package mindex_test

import (
	"testing"

	"github.com/katalvlaran/lvlpoly/mindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnumerate_BadDimensions verifies that dims < 1 is rejected.
func TestEnumerate_BadDimensions(t *testing.T) {
	_, err := mindex.Enumerate(0, 2, 0, mindex.DefaultOptions())
	assert.ErrorIs(t, err, mindex.ErrBadDimensions, "dims=0 must be rejected")

	_, err = mindex.Enumerate(0, 2, -3, mindex.DefaultOptions())
	assert.ErrorIs(t, err, mindex.ErrBadDimensions, "negative dims must be rejected")
}

// TestEnumerate_BadDegreeRange verifies the [lower, upper) validation.
func TestEnumerate_BadDegreeRange(t *testing.T) {
	_, err := mindex.Enumerate(-1, 2, 1, mindex.DefaultOptions())
	assert.ErrorIs(t, err, mindex.ErrBadDegreeRange, "negative lower must be rejected")

	_, err = mindex.Enumerate(2, 2, 1, mindex.DefaultOptions())
	assert.ErrorIs(t, err, mindex.ErrBadDegreeRange, "upper == lower must be rejected")

	_, err = mindex.Enumerate(3, 1, 1, mindex.DefaultOptions())
	assert.ErrorIs(t, err, mindex.ErrBadDegreeRange, "upper < lower must be rejected")
}

// TestEnumerate_OneDimension checks the trivial 1-D order 0,1,2,...
func TestEnumerate_OneDimension(t *testing.T) {
	idx, err := mindex.Enumerate(0, 4, 1, mindex.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {1}, {2}, {3}}, idx)
}

// TestEnumerate_GradedReverse checks the canonical graded reverse-lex order
// in two dimensions: degree-major, last axis most significant inside a degree.
func TestEnumerate_GradedReverse(t *testing.T) {
	idx, err := mindex.Enumerate(0, 3, 2, mindex.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0}, {1, 0}, {0, 1}, {2, 0}, {1, 1}, {0, 2}}, idx)
}

// TestEnumerate_GradedPlainLex checks graded order with plain lexicographic
// tie-breaking (first axis most significant).
func TestEnumerate_GradedPlainLex(t *testing.T) {
	idx, err := mindex.Enumerate(0, 3, 2, mindex.Options{Graded: true})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {0, 2}, {1, 1}, {2, 0}}, idx)
}

// TestEnumerate_PlainLex checks ungraded lexicographic order.
func TestEnumerate_PlainLex(t *testing.T) {
	idx, err := mindex.Enumerate(0, 3, 2, mindex.Options{})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 0}}, idx)
}

// TestEnumerate_ReverseLex checks ungraded reverse-lexicographic order.
func TestEnumerate_ReverseLex(t *testing.T) {
	idx, err := mindex.Enumerate(0, 3, 2, mindex.Options{Reverse: true})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {0, 2}}, idx)
}

// TestEnumerate_LowerBound verifies that indices below the lower degree
// bound are excluded.
func TestEnumerate_LowerBound(t *testing.T) {
	idx, err := mindex.Enumerate(1, 3, 2, mindex.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 0}, {0, 1}, {2, 0}, {1, 1}, {0, 2}}, idx)
}

// TestEnumerate_MatchesCount verifies that the enumeration size equals the
// closed-form monomial count for several shapes.
func TestEnumerate_MatchesCount(t *testing.T) {
	for _, tc := range []struct{ order, dims int }{
		{1, 1}, {4, 1}, {2, 2}, {3, 3}, {5, 2}, {2, 4},
	} {
		idx, err := mindex.Enumerate(0, tc.order+1, tc.dims, mindex.DefaultOptions())
		require.NoError(t, err)
		assert.Len(t, idx, mindex.Count(tc.order, tc.dims),
			"order=%d dims=%d", tc.order, tc.dims)
	}
}

// TestEnumerate_PrefixStable verifies that, under the graded order, a wider
// degree range starts with exactly the narrower enumeration.
func TestEnumerate_PrefixStable(t *testing.T) {
	narrow, err := mindex.Enumerate(0, 3, 3, mindex.DefaultOptions())
	require.NoError(t, err)
	wide, err := mindex.Enumerate(0, 5, 3, mindex.DefaultOptions())
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(wide), len(narrow))
	assert.Equal(t, narrow, wide[:len(narrow)], "graded order must be prefix-stable")
}

// TestEnumerate_NoDuplicates checks uniqueness of the produced indices.
func TestEnumerate_NoDuplicates(t *testing.T) {
	idx, err := mindex.Enumerate(0, 5, 3, mindex.DefaultOptions())
	require.NoError(t, err)

	seen := make(map[[3]int]bool, len(idx))
	for _, e := range idx {
		key := [3]int{e[0], e[1], e[2]}
		assert.False(t, seen[key], "duplicate index %v", e)
		seen[key] = true
	}
}

// TestCount checks the binomial monomial count against hand values.
func TestCount(t *testing.T) {
	assert.Equal(t, 1, mindex.Count(0, 1))
	assert.Equal(t, 2, mindex.Count(1, 1))
	assert.Equal(t, 3, mindex.Count(2, 1))
	assert.Equal(t, 3, mindex.Count(1, 2))
	assert.Equal(t, 6, mindex.Count(2, 2))
	assert.Equal(t, 10, mindex.Count(2, 3))
	assert.Equal(t, 20, mindex.Count(3, 3))
	assert.Equal(t, 0, mindex.Count(-1, 2))
}

// TestLess spot-checks the comparator on the documented reverse example:
// q0*q1**3 (1,3) sorts after q0**3*q1 (3,1) under reverse, before it under
// plain lex.
func TestLess(t *testing.T) {
	a, b := []int{1, 3}, []int{3, 1}

	assert.True(t, mindex.Less(b, a, mindex.Options{Reverse: true}))
	assert.False(t, mindex.Less(a, b, mindex.Options{Reverse: true}))

	assert.True(t, mindex.Less(a, b, mindex.Options{}))
	assert.False(t, mindex.Less(b, a, mindex.Options{}))

	// Graded beats lexicographic: (0,3) has a larger sum than (2,0).
	assert.True(t, mindex.Less([]int{2, 0}, []int{0, 3}, mindex.DefaultOptions()))

	// Equal indices are not less than themselves.
	assert.False(t, mindex.Less(a, a, mindex.DefaultOptions()))
}
