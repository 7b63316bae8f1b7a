// Package poly implements a sparse multivariate polynomial over float64
// coefficients, with exact term merging, evaluation, decimal rounding and
// deterministic printing.
//
// 🚀 What is poly?
//
//	A minimal real-coefficient polynomial type in indeterminates
//	q0, q1, …, q{d-1}.  Terms live in the canonical graded reverse-lex
//	monomial order (see package mindex), so arithmetic and printing are
//	fully deterministic: the same inputs always produce the same terms in
//	the same order.
//
// ✨ Key features:
//   - Monomial / Constant constructors with fail-fast validation
//   - Add / Scale / Sum with exact cancellation of equal exponents
//   - Eval at a point, Degree, decimal Round
//   - Basis — the ordered monomial basis for a degree range, guaranteed
//     order-compatible with mindex.Enumerate (same comparator)
//   - deterministic printing: 0.5*q0**2-0.5*q0, -q0**2+1, 0
//
// ⚙️ Usage:
//
//	p, _ := poly.Monomial(0.5, []int{2})   // 0.5*q0**2
//	q, _ := poly.Monomial(-0.5, []int{1})  // -0.5*q0
//	s, _ := p.Add(q)
//	v, _ := s.Eval([]float64{2})           // 1.0
//
// Polynomials are immutable values: every operation returns a fresh Poly
// and never mutates its receiver or arguments.
package poly
