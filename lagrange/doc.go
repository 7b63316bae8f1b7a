// Package lagrange constructs multivariate Lagrange (cardinal) polynomial
// bases on arbitrary scattered point sets.
//
// 🚀 What is a Lagrange basis?
//
//	Given n sample points ("abscissas") in d-dimensional space, the
//	Lagrange basis is one polynomial per point such that P[i] evaluates to
//	1 at point i and to 0 at every other point — the Kronecker-delta
//	interpolation property.  Any function sampled at the points is then
//	interpolated by Σ f(x_i)·P[i].
//
// ✨ Key features:
//   - Works for any dimension and any point count (1-D input auto-promoted)
//   - Minimal total degree: the smallest order whose monomial count covers
//     the points, with the exponent set truncated from the graded order
//   - Determinant-gated: degenerate point sets fail fast with
//     ErrSingularAbscissas instead of returning garbage
//   - Cofactor solver via cyclic rolls for n ≥ 3, closed-form inverse for
//     n = 2; optional switch to a direct dense solve (DirectSolveFrom)
//   - Dense linear algebra from gonum (mat.Det / mat.Inverse)
//
// ⚙️ Usage:
//
//	ps, err := lagrange.Lagrange1D([]float64{-1, 0, 1}, nil)
//	// ps[0] = 0.5*q0**2-0.5*q0
//	// ps[1] = -q0**2+1
//	// ps[2] = 0.5*q0**2+0.5*q0
//
// Multidimensional points are passed coordinate-major, shape [dim][size]:
//
//	ps, err := lagrange.Lagrange([][]float64{{1, 0, 1}, {0, 1, 2}}, nil)
//
// Performance:
//
//	The cofactor path evaluates size² determinants of (size−1)×(size−1)
//	minors — O(size⁵) with an O(n³) determinant.  For large point counts
//	set Options.DirectSolveFrom to switch to a direct O(size³) inverse;
//	the delta property of the output is unchanged.
//
// The whole pipeline is a pure function: no global state, no concurrency,
// no I/O; all intermediates are local and discarded.
package lagrange
