package polycalc

// pow raises p to a non-negative power with the squaring scheme of CoeffPow.
// The zero polynomial is absorbing here for every exponent, including zero.
func pow(p Poly, exp int) Poly {
	if exp < 0 {
		panic("polycalc: negative exponent in pow")
	}
	if p.IsZero() {
		return Zero()
	}
	switch exp {
	case 0:
		return FromCoeff(1)
	case 1:
		return p.Clone()
	}
	root := pow(p, exp/2)
	sq := root.Mul(root)
	if exp%2 == 1 {
		return sq.Mul(p)
	}
	return sq
}

// constTerm returns the exact constant term of p, descending through
// zero-exponent terms as long as they exist.
func (p Poly) constTerm() Poly {
	if p.IsCoeff() {
		return p
	}
	if p.monos[0].Exp == 0 {
		return p.monos[0].P.constTerm()
	}
	return Zero()
}

// Compose substitutes xs[i] for the variable with index i in p. Variables
// with an index beyond the last substituend are replaced by zero, so calling
// Compose with no arguments extracts the constant term of p.
func (p Poly) Compose(xs ...Poly) Poly {
	if p.IsCoeff() {
		return p
	}
	if len(xs) == 0 {
		return p.constTerm()
	}
	res := Zero()
	for _, m := range p.monos {
		inner := m.P.Compose(xs[1:]...)
		if inner.IsZero() {
			continue
		}
		res = res.Add(pow(xs[0], m.Exp).Mul(inner))
	}
	return res
}
