package poly

import "github.com/katalvlaran/lvlpoly/mindex"

// Basis returns the monomial basis for all total degrees in
// [lower, upper] (upper inclusive) in dims indeterminates, ordered by
// mindex.Enumerate under the same opts. Because both sides share one
// comparator, a basis produced here is always order-compatible with the
// exponent sets produced by mindex — truncating both to n elements keeps
// them aligned entry by entry.
//
// Errors: those of mindex.Enumerate (bad dimensions / degree range).
//
// Complexity: O(T·dims + T·log T) for T = Count(upper, dims) monomials.
func Basis(lower, upper, dims int, opts mindex.Options) ([]Poly, error) {
	idx, err := mindex.Enumerate(lower, upper+1, dims, opts)
	if err != nil {
		return nil, err
	}
	out := make([]Poly, len(idx))
	for i, e := range idx {
		if out[i], err = Monomial(1, e); err != nil {
			return nil, err
		}
	}

	return out, nil
}
