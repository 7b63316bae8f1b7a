package poly

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlpoly/mindex"
)

// termOrder is the canonical internal monomial order. Printing walks it
// backwards (highest term first).
var termOrder = mindex.DefaultOptions()

// Zero returns the zero polynomial in dims indeterminates.
func Zero(dims int) (Poly, error) {
	if dims < 1 {
		return Poly{}, ErrBadDimensions
	}

	return Poly{dims: dims}, nil
}

// Constant returns the constant polynomial c in dims indeterminates.
func Constant(dims int, c float64) (Poly, error) {
	return Monomial(c, make([]int, dims))
}

// Monomial returns c times the monomial with the given exponent tuple.
// The tuple length fixes the number of indeterminates; exps is copied.
//
// Errors:
//   - ErrBadDimensions — len(exps) == 0.
//   - ErrBadExponent — a negative exponent.
func Monomial(c float64, exps []int) (Poly, error) {
	if len(exps) == 0 {
		return Poly{}, ErrBadDimensions
	}
	for _, e := range exps {
		if e < 0 {
			return Poly{}, ErrBadExponent
		}
	}
	p := Poly{dims: len(exps)}
	if c != 0 {
		own := make([]int, len(exps))
		copy(own, exps)
		p.terms = []term{{coeff: c, exps: own}}
	}

	return p, nil
}

// Dims returns the number of indeterminates.
func (p Poly) Dims() int { return p.dims }

// Degree returns the total degree of the polynomial, 0 for the zero
// polynomial. The canonical order is graded, so the last term is maximal.
func (p Poly) Degree() int {
	if len(p.terms) == 0 {
		return 0
	}

	return degree(p.terms[len(p.terms)-1].exps)
}

// Scale returns c·p.
func (p Poly) Scale(c float64) Poly {
	out := Poly{dims: p.dims}
	if c == 0 {
		return out
	}
	out.terms = make([]term, len(p.terms))
	for i, t := range p.terms {
		own := make([]int, len(t.exps))
		copy(own, t.exps)
		out.terms[i] = term{coeff: c * t.coeff, exps: own}
	}

	return out
}

// Add returns p + q. Terms with equal exponent tuples are merged; exact
// cancellations are dropped, so x + (-x) is the zero polynomial.
//
// Errors:
//   - ErrDimsMismatch — p and q disagree on the number of indeterminates.
//
// Complexity: O(len(p)+len(q)) — a single merge of two ordered term lists.
func (p Poly) Add(q Poly) (Poly, error) {
	if p.dims != q.dims {
		return Poly{}, ErrDimsMismatch
	}
	out := Poly{dims: p.dims, terms: make([]term, 0, len(p.terms)+len(q.terms))}

	i, j := 0, 0
	for i < len(p.terms) && j < len(q.terms) {
		a, b := p.terms[i], q.terms[j]
		switch {
		case mindex.Less(a.exps, b.exps, termOrder):
			out.terms = append(out.terms, copyTerm(a))
			i++
		case mindex.Less(b.exps, a.exps, termOrder):
			out.terms = append(out.terms, copyTerm(b))
			j++
		default:
			if c := a.coeff + b.coeff; c != 0 {
				out.terms = append(out.terms, term{coeff: c, exps: append([]int(nil), a.exps...)})
			}
			i++
			j++
		}
	}
	for ; i < len(p.terms); i++ {
		out.terms = append(out.terms, copyTerm(p.terms[i]))
	}
	for ; j < len(q.terms); j++ {
		out.terms = append(out.terms, copyTerm(q.terms[j]))
	}

	return out, nil
}

// Sum returns the sum of all polynomials in ps.
//
// Errors:
//   - ErrEmptySum — ps is empty.
//   - ErrDimsMismatch — mixed dimensionalities.
func Sum(ps []Poly) (Poly, error) {
	if len(ps) == 0 {
		return Poly{}, ErrEmptySum
	}
	acc := ps[0]
	var err error
	for _, q := range ps[1:] {
		if acc, err = acc.Add(q); err != nil {
			return Poly{}, err
		}
	}

	return acc, nil
}

// Eval evaluates p at the given point.
//
// Errors:
//   - ErrDimsMismatch — len(point) != Dims().
//
// Complexity: O(terms · dims · max exponent).
func (p Poly) Eval(point []float64) (float64, error) {
	if len(point) != p.dims {
		return 0, ErrDimsMismatch
	}
	var s float64
	for _, t := range p.terms {
		v := t.coeff
		for k, e := range t.exps {
			v *= ipow(point[k], e)
		}
		s += v
	}

	return s, nil
}

// Round returns a copy of p with every coefficient rounded to the given
// number of decimals. Terms whose coefficient rounds to zero are dropped.
func (p Poly) Round(decimals int) Poly {
	scale := math.Pow(10, float64(decimals))
	out := Poly{dims: p.dims, terms: make([]term, 0, len(p.terms))}
	for _, t := range p.terms {
		if c := math.Round(t.coeff*scale) / scale; c != 0 {
			out.terms = append(out.terms, term{coeff: c, exps: append([]int(nil), t.exps...)})
		}
	}

	return out
}

// String renders p with the highest term first:
// "0.5*q0**2-0.5*q0", "-q0**2+1", "0" for the zero polynomial.
func (p Poly) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i := len(p.terms) - 1; i >= 0; i-- {
		t := p.terms[i]
		c := t.coeff
		if c < 0 {
			b.WriteByte('-')
			c = -c
		} else if i != len(p.terms)-1 {
			b.WriteByte('+')
		}
		mon := monomialString(t.exps)
		switch {
		case mon == "":
			b.WriteString(formatCoeff(c))
		case c == 1:
			b.WriteString(mon)
		default:
			b.WriteString(formatCoeff(c))
			b.WriteByte('*')
			b.WriteString(mon)
		}
	}

	return b.String()
}

// monomialString renders an exponent tuple as "q0*q1**2"; empty for the
// constant monomial.
func monomialString(exps []int) string {
	var parts []string
	for k, e := range exps {
		switch {
		case e == 1:
			parts = append(parts, fmt.Sprintf("q%d", k))
		case e > 1:
			parts = append(parts, fmt.Sprintf("q%d**%d", k, e))
		}
	}

	return strings.Join(parts, "*")
}

// formatCoeff renders a non-negative coefficient in the shortest exact form.
func formatCoeff(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}

// copyTerm deep-copies a term so results never alias operand memory.
func copyTerm(t term) term {
	return term{coeff: t.coeff, exps: append([]int(nil), t.exps...)}
}

// degree returns the exponent sum of a tuple.
func degree(exps []int) int {
	var d int
	for _, e := range exps {
		d += e
	}

	return d
}

// ipow computes x^n for non-negative integer n (0^0 = 1).
func ipow(x float64, n int) float64 {
	r := 1.0
	for i := 0; i < n; i++ {
		r *= x
	}

	return r
}
