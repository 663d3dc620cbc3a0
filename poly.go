// Package polycalc implements arithmetic on sparse [multivariate polynomials]
// with integer coefficients.
//
// A polynomial is stored recursively: it is either a plain coefficient, or a
// list of monomials c*x^e over its main variable, where each coefficient c is
// itself a polynomial over the next variable. Every exported operation
// returns a canonical value: term lists are non-empty, exponents strictly
// increase, no term carries a zero coefficient, and a list that reduces to a
// constant is represented as that constant directly.
//
// [multivariate polynomials]: https://en.wikipedia.org/wiki/Polynomial#Number_of_variables
package polycalc

import (
	"cmp"

	"github.com/jba/omap"
)

// A Mono is a single monomial p*x^e. Its coefficient p is a polynomial over
// the remaining variables.
type Mono struct {
	P   Poly
	Exp int
}

// NewMono returns the monomial p*x^e.
func NewMono(p Poly, e int) Mono {
	return Mono{P: p, Exp: e}
}

// Clone returns a deep copy of m.
func (m Mono) Clone() Mono {
	return Mono{P: m.P.Clone(), Exp: m.Exp}
}

// A Poly is a polynomial in the recursive sparse representation.
//
// The zero value of the type is the zero polynomial. A Poly owns its term
// list; values obtained from this package share no mutable state unless the
// documentation of the producing function says otherwise, and Clone is the
// only way to duplicate one safely.
type Poly struct {
	c     Coeff
	monos []Mono
}

// Zero returns the zero polynomial.
func Zero() Poly {
	return Poly{}
}

// FromCoeff returns the constant polynomial c.
func FromCoeff(c Coeff) Poly {
	return Poly{c: c}
}

// IsCoeff reports whether p is constant over this and all deeper variables.
func (p Poly) IsCoeff() bool {
	return p.monos == nil
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return p.monos == nil && p.c == 0
}

// Const returns the value of a coefficient polynomial.
// It panics when p is a term list.
func (p Poly) Const() Coeff {
	if p.monos != nil {
		panic("polycalc: Const on a non-constant polynomial")
	}
	return p.c
}

// Len returns the number of terms in p; 0 for a coefficient polynomial.
func (p Poly) Len() int {
	return len(p.monos)
}

// Term returns the ith term of p, ordered by ascending exponent.
func (p Poly) Term(i int) Mono {
	return p.monos[i]
}

// Clone returns a deep copy of p.
func (p Poly) Clone() Poly {
	if p.monos == nil {
		return p
	}
	monos := make([]Mono, len(p.monos))
	for i := range p.monos {
		monos[i] = p.monos[i].Clone()
	}
	return Poly{monos: monos}
}

// fromSorted builds a canonical polynomial from monomials already sorted by
// strictly ascending exponent. It reuses the slice, elides zero terms and
// applies both collapse rules: an empty list is the zero constant, and a
// single constant term at exponent zero is that constant itself.
func fromSorted(monos []Mono) Poly {
	kept := monos[:0]
	for _, m := range monos {
		if !m.P.IsZero() {
			kept = append(kept, m)
		}
	}
	if len(kept) == 0 {
		return Zero()
	}
	if len(kept) == 1 && kept[0].Exp == 0 && kept[0].P.IsCoeff() {
		return kept[0].P
	}
	return Poly{monos: kept}
}

// simplify re-canonicalizes p at every level. Needed after in-place
// scaling, where wraparound may have zeroed a term.
func (p Poly) simplify() Poly {
	if p.monos == nil {
		return p
	}
	for i := range p.monos {
		p.monos[i].P = p.monos[i].P.simplify()
	}
	return fromSorted(p.monos)
}

// AddMonos builds the canonical sum of the given monomials: terms with equal
// exponents are merged by adding their coefficients, zero terms are elided.
// It assumes ownership of the slice and of every polynomial inside; callers
// must not use them afterwards.
func AddMonos(monos []Mono) Poly {
	byExp := omap.NewMapFunc[int, Poly](cmp.Compare)
	for _, m := range monos {
		if prev, ok := byExp.Get(m.Exp); ok {
			byExp.Set(m.Exp, prev.Add(m.P))
		} else {
			byExp.Set(m.Exp, m.P)
		}
	}
	merged := make([]Mono, 0, byExp.Len())
	for e, q := range byExp.All() {
		merged = append(merged, Mono{P: q, Exp: e})
	}
	return fromSorted(merged)
}

// AddClonedMonos is AddMonos over deep copies of the input monomials; the
// caller keeps ownership of the originals.
func AddClonedMonos(monos []Mono) Poly {
	cloned := make([]Mono, len(monos))
	for i := range monos {
		cloned[i] = monos[i].Clone()
	}
	return AddMonos(cloned)
}

// Deg returns the total degree of p: -1 for the zero polynomial, 0 for any
// other constant, and otherwise the maximum over all terms of the term's
// exponent plus the degree of its coefficient.
func (p Poly) Deg() int {
	if p.IsZero() {
		return -1
	}
	if p.IsCoeff() {
		return 0
	}
	deg := 0
	for _, m := range p.monos {
		if m.P.IsZero() {
			continue
		}
		if d := m.P.Deg() + m.Exp; d > deg {
			deg = d
		}
	}
	return deg
}

// DegBy returns the degree of p with respect to the variable with the given
// index, counting from 0 at the outermost variable. The zero polynomial has
// degree -1 with respect to every variable.
func (p Poly) DegBy(idx uint) int {
	if p.IsZero() {
		return -1
	}
	if p.IsCoeff() {
		return 0
	}
	if idx == 0 {
		for i := len(p.monos) - 1; i >= 0; i-- {
			if !p.monos[i].P.IsZero() {
				return p.monos[i].Exp
			}
		}
		panic("polycalc: non-canonical polynomial with only zero terms")
	}
	deg := 0
	for _, m := range p.monos {
		if d := m.P.DegBy(idx - 1); d > deg {
			deg = d
		}
	}
	return deg
}

// eqListCoeff compares a term list p against a constant q. Under the
// canonical form this can only hold through the collapse rules, but the tail
// checks stay as defense against non-canonical inputs.
func eqListCoeff(p Poly, q Poly) bool {
	if p.monos[0].Exp != 0 {
		return false
	}
	if !p.monos[0].P.Eq(q) {
		return false
	}
	for _, m := range p.monos[1:] {
		if !m.P.IsZero() {
			return false
		}
	}
	return true
}

// Eq reports whether p and q denote the same polynomial.
func (p Poly) Eq(q Poly) bool {
	switch {
	case !p.IsCoeff() && q.IsCoeff():
		return eqListCoeff(p, q)
	case p.IsCoeff() && !q.IsCoeff():
		return eqListCoeff(q, p)
	case p.IsCoeff():
		return p.c == q.c
	}

	i, j := 0, 0
	for i < len(p.monos) && j < len(q.monos) {
		switch {
		case p.monos[i].Exp < q.monos[j].Exp:
			if !p.monos[i].P.IsZero() {
				return false
			}
			i++
		case p.monos[i].Exp > q.monos[j].Exp:
			if !q.monos[j].P.IsZero() {
				return false
			}
			j++
		default:
			if !p.monos[i].P.Eq(q.monos[j].P) {
				return false
			}
			i++
			j++
		}
	}
	for ; i < len(p.monos); i++ {
		if !p.monos[i].P.IsZero() {
			return false
		}
	}
	for ; j < len(q.monos); j++ {
		if !q.monos[j].P.IsZero() {
			return false
		}
	}
	return true
}
