package lagrange

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlpoly/mindex"
	"github.com/katalvlaran/lvlpoly/poly"
)

// Lagrange — multivariate Lagrange (cardinal) interpolation basis.
//
// Description:
//
//	Given size points in dim dimensions (abscissas indexed [dim][point]),
//	Lagrange returns size polynomials P such that P[i](x_j) = δ_ij: 1 at
//	the i-th point, 0 at every other point.
//
// Algorithm Outline:
//  1. Order selection: the smallest order >= 1 with
//     C(order+dim, dim) >= size monomials of total degree <= order.
//  2. Exponent set: mindex.Enumerate(0, order+1, dim) truncated to the
//     first size multi-indices.
//  3. Vandermonde matrix: V[i][j] = Π_k abscissas[k][i]^exps[j][k].
//  4. Coefficient solve, gated on det(V) != 0:
//     size 1 — the degree-0 monomial scaled by the abscissa value;
//     size 2 — closed-form dense inverse;
//     size ≥ 3 — adjugate via cyclic-roll cofactors divided by det
//     (or the direct inverse once DirectSolveFrom applies).
//  5. Assembly: out[i] = Σ_j basis[j]·coeffs[j][i].
//
// opts may be nil for defaults. The input is never mutated.
//
// Errors:
//   - ErrEmptyAbscissas, ErrRaggedAbscissas, ErrNonFiniteAbscissa — shape
//     and numeric-policy validation, before any numerics.
//   - ErrSingularAbscissas — det(V) is exactly zero (duplicate points, or
//     points on a variety the monomial basis cannot separate).
//
// Complexity: O(size⁵) on the cofactor path, O(size³) with DirectSolveFrom.
func Lagrange(abscissas [][]float64, opts *Options) ([]poly.Poly, error) {
	cfg := effective(opts)

	dim := len(abscissas)
	if dim == 0 || len(abscissas[0]) == 0 {
		return nil, ErrEmptyAbscissas
	}
	size := len(abscissas[0])
	for _, row := range abscissas {
		if len(row) != size {
			return nil, ErrRaggedAbscissas
		}
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNonFiniteAbscissa
			}
		}
	}

	order := minimalOrder(dim, size)

	mopts := mindex.Options{Graded: cfg.Graded, Reverse: cfg.Reverse}
	exps, err := mindex.Enumerate(0, order+1, dim, mopts)
	if err != nil {
		return nil, err
	}
	exps = exps[:size]

	v := vandermonde(abscissas, exps)
	det := mat.Det(v)
	if det == 0 {
		return nil, ErrSingularAbscissas
	}

	if size == 1 {
		// Degree-0 monomial scaled by the abscissa value.
		c, cerr := poly.Monomial(abscissas[0][0], make([]int, dim))
		if cerr != nil {
			return nil, cerr
		}

		return []poly.Poly{c}, nil
	}

	basis, err := poly.Basis(0, order, dim, mopts)
	if err != nil {
		return nil, err
	}
	basis = basis[:size]

	coeffs := mat.NewDense(size, size, nil)
	if size == 2 || (cfg.DirectSolveFrom > 0 && size >= cfg.DirectSolveFrom) {
		if ierr := coeffs.Inverse(v); ierr != nil {
			// Conditioning warnings still carry a usable result; anything
			// else means the det gate was the only thing standing.
			if _, ok := ierr.(mat.Condition); !ok {
				return nil, ErrSingularAbscissas
			}
		}
	} else {
		coeffs.Scale(1/det, adjugate(v))
	}

	return assemble(basis, coeffs)
}

// Lagrange1D builds the Lagrange basis for 1-D sample points, promoting
// xs to a single-dimension point set (shape (1, size)). See Lagrange.
func Lagrange1D(xs []float64, opts *Options) ([]poly.Poly, error) {
	return Lagrange([][]float64{xs}, opts)
}

// minimalOrder returns the smallest order >= 1 whose monomial count
// C(order+dim, dim) covers size points. Terminates because the count is
// strictly increasing in order.
func minimalOrder(dim, size int) int {
	order := 1
	for mindex.Count(order, dim) < size {
		order++
	}

	return order
}

// vandermonde builds the size×size generalized Vandermonde matrix: entry
// (i, j) is the monomial with exponents exps[j] evaluated at point i.
// Pure function of its inputs.
func vandermonde(abscissas [][]float64, exps [][]int) *mat.Dense {
	size := len(exps)
	v := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			e := 1.0
			for k, ex := range exps[j] {
				e *= ipow(abscissas[k][i], ex)
			}
			v.Set(i, j, e)
		}
	}

	return v
}

// assemble combines the monomial basis with the coefficient matrix:
// out[i] = Σ_j basis[j]·coeffs[j][i] — column i of the coefficient matrix
// weights output i, so that evaluation at the points yields the identity.
func assemble(basis []poly.Poly, coeffs *mat.Dense) ([]poly.Poly, error) {
	size := len(basis)
	out := make([]poly.Poly, size)
	scaled := make([]poly.Poly, size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			scaled[j] = basis[j].Scale(coeffs.At(j, i))
		}
		p, err := poly.Sum(scaled)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}

	return out, nil
}

// ipow computes x^n for non-negative integer n (0^0 = 1).
func ipow(x float64, n int) float64 {
	r := 1.0
	for i := 0; i < n; i++ {
		r *= x
	}

	return r
}
