// Package mindex enumerates multi-indices (monomial exponent tuples) of
// bounded total degree, under graded and/or reverse-lexicographic orders.
//
// 🚀 What is a multi-index?
//
//	A vector of non-negative integers, one entry per dimension, describing
//	the exponents of one monomial: (2, 0, 1) ⇔ q0²·q2.  Enumerating them in
//	a fixed, total order is the backbone of multivariate polynomial bases —
//	interpolation, PCE, modal expansions all start here.
//
// ✨ Key features:
//   - Enumerate — all multi-indices with total degree in [lower, upper)
//   - Graded order — sort by exponent sum first (degree-major)
//   - Reverse order — tie-break with the last axis most significant,
//     so q0*q1**3 sorts after q0**3*q1
//   - Count — closed-form monomial count C(degree+dims, dims)
//   - Less — the comparator itself, exported for order-compatible callers
//
// ⚙️ Usage:
//
//	opts := mindex.DefaultOptions() // graded + reverse
//	idx, err := mindex.Enumerate(0, 3, 2, opts)
//	// [[0 0] [1 0] [0 1] [2 0] [1 1] [0 2]]
//
// Determinism: the output order depends only on (lower, upper, dims, opts);
// truncating the sequence keeps the smallest elements of the order.
//
// Complexity: Enumerate is O(T·dims + T·log T) for T produced indices.
package mindex
