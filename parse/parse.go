// Package parse turns calculator input lines into statements: polynomial
// literals to push, or named commands with their arguments. Rejected lines
// become LineError values carrying the diagnostic the calculator prints.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/quazyrog/polycalc"
	"github.com/quazyrog/polycalc/parse/scan"
)

// A Statement is the parsed content of one input line.
type Statement struct {
	Line int

	// IsPush distinguishes a polynomial literal from a command.
	IsPush bool
	Poly   polycalc.Poly

	// Name is the command name as written; the calculator resolves it.
	Name        string
	HasUintArg  bool
	UintArg     uint
	HasCoeffArg bool
	CoeffArg    polycalc.Coeff
}

// A LineError describes a line the parser rejected. Its Error form is the
// exact diagnostic line, without the trailing newline.
type LineError struct {
	Line   int
	Column int    // offending character of a malformed literal; 0 when Reason is set
	Reason string // WRONG VALUE, WRONG VARIABLE, WRONG COUNT or WRONG COMMAND
}

func (e *LineError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("ERROR %d %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("ERROR %d %d", e.Line, e.Column)
}

// A Parser reads statements from an input stream, one per line. After a
// rejected line it resynchronizes at the start of the next one, leaving the
// rest of the stream intact.
type Parser struct {
	scanner *scan.Scanner
	tok     scan.Token // one-token lookahead
}

// New returns a Parser reading from r.
func New(r io.Reader) *Parser {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	p := &Parser{scanner: scan.NewScanner(br)}
	p.advance()
	return p
}

// Next parses one line. It returns io.EOF once the input is exhausted and a
// *LineError for a rejected line; end of input terminates the final line
// like a newline would.
func (p *Parser) Next() (Statement, error) {
	if p.tok.Type == scan.EOF {
		return Statement{}, io.EOF
	}
	line := p.tok.Location.Line

	var stmt Statement
	var err error
	if p.tok.Type == scan.Word {
		stmt, err = p.parseCommand(line)
	} else {
		stmt, err = p.parseLiteral(line)
	}
	if err != nil {
		p.syncLine()
		return Statement{}, err
	}
	if p.tok.Type == scan.EOL {
		p.advance()
	}
	return stmt, nil
}

func (p *Parser) advance() {
	p.tok = p.scanner.Next()
}

// syncLine discards tokens through the end of the current line.
func (p *Parser) syncLine() {
	for p.tok.Type != scan.EOL && p.tok.Type != scan.EOF {
		p.advance()
	}
	if p.tok.Type == scan.EOL {
		p.advance()
	}
}

func (p *Parser) atEndOfLine() bool {
	return p.tok.Type == scan.EOL || p.tok.Type == scan.EOF
}

// errHere points a literal diagnostic at the current token.
func (p *Parser) errHere(line int) *LineError {
	return &LineError{Line: line, Column: p.tok.Location.Column}
}

func (p *Parser) parseCommand(line int) (Statement, error) {
	name := p.tok.Text
	p.advance()

	switch name {
	case "AT":
		arg, ok := p.parseCoeffArg()
		if !ok || !p.atEndOfLine() {
			return Statement{}, &LineError{Line: line, Reason: "WRONG VALUE"}
		}
		return Statement{Line: line, Name: name, HasCoeffArg: true, CoeffArg: arg}, nil
	case "DEG_BY":
		arg, ok := p.parseUintArg()
		if !ok || !p.atEndOfLine() {
			return Statement{}, &LineError{Line: line, Reason: "WRONG VARIABLE"}
		}
		return Statement{Line: line, Name: name, HasUintArg: true, UintArg: arg}, nil
	case "COMPOSE":
		arg, ok := p.parseUintArg()
		if !ok || !p.atEndOfLine() {
			return Statement{}, &LineError{Line: line, Reason: "WRONG COUNT"}
		}
		return Statement{Line: line, Name: name, HasUintArg: true, UintArg: arg}, nil
	}

	if !p.atEndOfLine() {
		return Statement{}, &LineError{Line: line, Reason: "WRONG COMMAND"}
	}
	return Statement{Line: line, Name: name}, nil
}

// parseCoeffArg parses the " <signed int>" argument of AT.
func (p *Parser) parseCoeffArg() (polycalc.Coeff, bool) {
	if p.tok.Type != scan.Space {
		return 0, false
	}
	p.advance()
	sgn := polycalc.Coeff(1)
	if p.tok.Type == scan.Minus || p.tok.Type == scan.Plus {
		if p.tok.Type == scan.Minus {
			sgn = -1
		}
		p.advance()
	}
	if p.tok.Type != scan.Number {
		return 0, false
	}
	value, bad := accumDigits(p.tok.Text, sgn)
	if bad >= 0 {
		return 0, false
	}
	p.advance()
	return value, true
}

// parseUintArg parses the " <uint>" argument of DEG_BY and COMPOSE,
// bounded to 32 bits like the original calculator's parameter register.
func (p *Parser) parseUintArg() (uint, bool) {
	if p.tok.Type != scan.Space {
		return 0, false
	}
	p.advance()
	if p.tok.Type != scan.Number {
		return 0, false
	}
	value, err := strconv.ParseUint(p.tok.Text, 10, 64)
	if err != nil || value > math.MaxUint32 {
		return 0, false
	}
	p.advance()
	return uint(value), true
}

func (p *Parser) parseLiteral(line int) (Statement, error) {
	poly, lerr := p.parsePoly(line)
	if lerr != nil {
		return Statement{}, lerr
	}
	if !p.atEndOfLine() {
		return Statement{}, p.errHere(line)
	}
	return Statement{Line: line, IsPush: true, Poly: poly}, nil
}

// parsePoly parses either a signed constant or a '+'-joined monomial
// sequence.
func (p *Parser) parsePoly(line int) (polycalc.Poly, *LineError) {
	switch p.tok.Type {
	case scan.Minus, scan.Plus, scan.Number:
		c, lerr := p.parseCoeff(line)
		if lerr != nil {
			return polycalc.Poly{}, lerr
		}
		return polycalc.FromCoeff(c), nil
	case scan.LParen:
		return p.parseMonoSum(line)
	}
	return polycalc.Poly{}, p.errHere(line)
}

func (p *Parser) parseCoeff(line int) (polycalc.Coeff, *LineError) {
	sgn := polycalc.Coeff(1)
	if p.tok.Type == scan.Minus || p.tok.Type == scan.Plus {
		if p.tok.Type == scan.Minus {
			sgn = -1
		}
		p.advance()
	}
	if p.tok.Type != scan.Number {
		return 0, p.errHere(line)
	}
	value, bad := accumDigits(p.tok.Text, sgn)
	if bad >= 0 {
		return 0, &LineError{Line: line, Column: p.tok.Location.Column + bad}
	}
	p.advance()
	return value, nil
}

func (p *Parser) parseMonoSum(line int) (polycalc.Poly, *LineError) {
	var monos []polycalc.Mono
	for {
		m, lerr := p.parseMono(line)
		if lerr != nil {
			return polycalc.Poly{}, lerr
		}
		monos = append(monos, m)
		if p.tok.Type != scan.Plus {
			break
		}
		p.advance()
		if p.tok.Type != scan.LParen {
			return polycalc.Poly{}, p.errHere(line)
		}
	}
	return polycalc.AddMonos(monos), nil
}

// parseMono parses "(coefficient,exponent)". The current token is the
// opening parenthesis.
func (p *Parser) parseMono(line int) (polycalc.Mono, *LineError) {
	p.advance()
	coeff, lerr := p.parsePoly(line)
	if lerr != nil {
		return polycalc.Mono{}, lerr
	}
	if p.tok.Type != scan.Comma {
		return polycalc.Mono{}, p.errHere(line)
	}
	p.advance()
	if p.tok.Type != scan.Number {
		return polycalc.Mono{}, p.errHere(line)
	}
	exp, bad := accumDigits[int32](p.tok.Text, 1)
	if bad >= 0 {
		return polycalc.Mono{}, &LineError{Line: line, Column: p.tok.Location.Column + bad}
	}
	p.advance()
	if p.tok.Type != scan.RParen {
		return polycalc.Mono{}, p.errHere(line)
	}
	p.advance()
	return polycalc.NewMono(coeff, int(exp)), nil
}

// accumDigits folds a run of decimal digits into a signed accumulator with
// the given sign, relying on wraparound to detect overflow. It returns the
// index of the first digit that does not fit, or -1 when the whole run does.
func accumDigits[T constraints.Signed](digits string, sgn T) (T, int) {
	var value T
	for i := 0; i < len(digits); i++ {
		digit := T(digits[i] - '0')

		next := value * 10
		if next/10 != value {
			return 0, i
		}
		next += sgn * digit
		if (next < 0 && value > 0) || (next > 0 && value < 0) {
			return 0, i
		}
		value = next
	}
	return value, -1
}
