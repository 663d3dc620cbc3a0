package polycalc

// addCoeff adds the non-zero constant c into the term list p. The constant is
// folded into the zero-exponent term when there is one, and prepended as a
// new term otherwise.
func addCoeff(p Poly, c Coeff) Poly {
	if c == 0 {
		return p.Clone()
	}
	var monos []Mono
	if p.monos[0].Exp == 0 {
		monos = make([]Mono, 0, len(p.monos))
		monos = append(monos, Mono{P: FromCoeff(c).Add(p.monos[0].P), Exp: 0})
		for _, m := range p.monos[1:] {
			monos = append(monos, m.Clone())
		}
	} else {
		monos = make([]Mono, 0, len(p.monos)+1)
		monos = append(monos, Mono{P: FromCoeff(c), Exp: 0})
		for _, m := range p.monos {
			monos = append(monos, m.Clone())
		}
	}
	return fromSorted(monos)
}

// addLists merges two term lists linearly by exponent, adding the
// coefficients of matching terms recursively.
func addLists(p, q Poly) Poly {
	monos := make([]Mono, 0, len(p.monos)+len(q.monos))
	i, j := 0, 0
	for i < len(p.monos) && j < len(q.monos) {
		switch {
		case p.monos[i].Exp < q.monos[j].Exp:
			monos = append(monos, p.monos[i].Clone())
			i++
		case p.monos[i].Exp > q.monos[j].Exp:
			monos = append(monos, q.monos[j].Clone())
			j++
		default:
			monos = append(monos, Mono{
				P:   p.monos[i].P.Add(q.monos[j].P),
				Exp: p.monos[i].Exp,
			})
			i++
			j++
		}
	}
	for ; i < len(p.monos); i++ {
		monos = append(monos, p.monos[i].Clone())
	}
	for ; j < len(q.monos); j++ {
		monos = append(monos, q.monos[j].Clone())
	}
	return fromSorted(monos)
}

// Add returns the sum p + q.
func (p Poly) Add(q Poly) Poly {
	switch {
	case p.IsCoeff() && q.IsCoeff():
		return FromCoeff(p.c + q.c)
	case q.IsCoeff():
		return addCoeff(p, q.c)
	case p.IsCoeff():
		return addCoeff(q, p.c)
	}
	return addLists(p, q)
}

// Neg returns -p.
func (p Poly) Neg() Poly {
	if p.IsCoeff() {
		return FromCoeff(-p.c)
	}
	monos := make([]Mono, len(p.monos))
	for i, m := range p.monos {
		monos[i] = Mono{P: m.P.Neg(), Exp: m.Exp}
	}
	return Poly{monos: monos}
}

// Sub returns the difference p - q.
func (p Poly) Sub(q Poly) Poly {
	return p.Add(q.Neg())
}

// Scale multiplies every coefficient of p by k, in place. Scaling by zero
// collapses p to the zero polynomial.
func (p *Poly) Scale(k Coeff) {
	if k == 0 {
		*p = Zero()
		return
	}
	if p.monos == nil {
		p.c *= k
		return
	}
	for i := range p.monos {
		p.monos[i].P.Scale(k)
	}
}

// mulMono multiplies the term list p by the single monomial m: every
// exponent grows by m.Exp and every coefficient is multiplied by m.P.
func mulMono(p Poly, m Mono) Poly {
	if m.P.IsZero() {
		return Zero()
	}
	monos := make([]Mono, len(p.monos))
	for i, pm := range p.monos {
		monos[i] = Mono{P: pm.P.Mul(m.P), Exp: pm.Exp + m.Exp}
	}
	return fromSorted(monos)
}

// Mul returns the product p * q.
func (p Poly) Mul(q Poly) Poly {
	if q.IsCoeff() {
		r := p.Clone()
		r.Scale(q.c)
		return r.simplify()
	}
	if p.IsCoeff() {
		return q.Mul(p)
	}
	acc := Zero()
	for _, m := range q.monos {
		if m.P.IsZero() {
			continue
		}
		acc = acc.Add(mulMono(p, m))
	}
	return acc.simplify()
}

// At evaluates p at the point x with respect to its outermost variable,
// yielding a polynomial over the remaining variables: every variable index
// decreases by one.
func (p Poly) At(x Coeff) Poly {
	if p.IsCoeff() {
		return p
	}
	res := Zero()
	for _, m := range p.monos {
		scaled := m.P.Clone()
		scaled.Scale(CoeffPow(x, m.Exp))
		res = res.Add(scaled.simplify())
	}
	return res
}
