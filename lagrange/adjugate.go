package lagrange

import "gonum.org/v1/gonum/mat"

// adjugate computes the adjugate (transposed cofactor matrix) of a dense
// n×n matrix, n >= 2, so that a · adjugate(a) = det(a) · I.
//
// Instead of slicing out n² distinct (n−1)×(n−1) submatrices, the matrix
// is rolled cyclically and every minor is read from the same trailing
// block: after each cell the rows are rolled up by one, after each full
// row-phase the columns are rolled left by one. A rolled minor equals the
// true minor up to row/column rotations of n−1 elements, so the textbook
// (−1)^(i+j) checkerboard collapses to a rule on the running parity k and
// the parity of n: even k contributes +det, odd k contributes −det only
// when n is even.
//
// The input is not mutated. Complexity: n² determinants of (n−1)×(n−1)
// minors — O(n⁵) with an O(n³) determinant.
func adjugate(a *mat.Dense) *mat.Dense {
	n, _ := a.Dims()
	w := mat.DenseCopyOf(a)
	adj := mat.NewDense(n, n, nil)

	for i := 0; i < n; i++ {
		k := i % 2
		for j := 0; j < n; j++ {
			d := mat.Det(w.Slice(1, n, 1, n))
			if k%2 != 0 && n%2 == 0 {
				d = -d
			}
			adj.Set(i, j, d)

			rollUp(w)
			k++
		}
		rollLeft(w)
	}

	return adj
}

// rollUp cyclically shifts all rows of m up by one: row 0 becomes the last
// row.
func rollUp(m *mat.Dense) {
	n, _ := m.Dims()
	first := mat.Row(nil, 0, m)
	for r := 0; r < n-1; r++ {
		m.SetRow(r, mat.Row(nil, r+1, m))
	}
	m.SetRow(n-1, first)
}

// rollLeft cyclically shifts all columns of m left by one: column 0
// becomes the last column.
func rollLeft(m *mat.Dense) {
	_, n := m.Dims()
	first := mat.Col(nil, 0, m)
	for c := 0; c < n-1; c++ {
		m.SetCol(c, mat.Col(nil, c+1, m))
	}
	m.SetCol(n-1, first)
}
