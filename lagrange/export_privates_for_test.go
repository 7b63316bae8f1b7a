package lagrange

import "gonum.org/v1/gonum/mat"

// Test-only exports. Kept in a dedicated file so the public surface of the
// package stays obvious; nothing here is part of the API.

// Adjugate exposes the cyclic-roll cofactor kernel for focused unit tests.
func Adjugate(a *mat.Dense) *mat.Dense { return adjugate(a) }

// MinimalOrder exposes the order selector for degree-consistency tests.
func MinimalOrder(dim, size int) int { return minimalOrder(dim, size) }

// Vandermonde exposes the matrix builder for direct inspection in tests.
func Vandermonde(abscissas [][]float64, exps [][]int) *mat.Dense {
	return vandermonde(abscissas, exps)
}
