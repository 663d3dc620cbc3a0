package polycalc

import (
	"io"
	"strconv"
	"strings"
)

// String renders p in the form accepted back by the parser: a constant is
// its signed decimal value, a term list is a '+'-joined sequence of
// "(coefficient,exponent)" pairs with zero terms omitted. No spaces, no
// trailing newline.
func (p Poly) String() string {
	var b strings.Builder
	p.write(&b)
	return b.String()
}

// Write writes the textual form of p to w.
func (p Poly) Write(w io.Writer) error {
	_, err := io.WriteString(w, p.String())
	return err
}

func (p Poly) write(b *strings.Builder) {
	if p.monos == nil {
		b.WriteString(strconv.FormatInt(int64(p.c), 10))
		return
	}
	first := true
	for _, m := range p.monos {
		if m.P.IsZero() {
			continue
		}
		if !first {
			b.WriteByte('+')
		}
		b.WriteByte('(')
		m.P.write(b)
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(m.Exp))
		b.WriteByte(')')
		first = false
	}
}
