package parse

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/quazyrog/polycalc"
)

func TestNextLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  string // String() of the pushed polynomial
	}{
		{"5\n", "5"},
		{"-42\n", "-42"},
		{"+7\n", "7"},
		{"0\n", "0"},
		{"00000000000000000000042\n", "42"},
		{"(1,1)\n", "(1,1)"},
		{"(1,1)+(2,2)\n", "(1,1)+(2,2)"},
		// equal exponents merge while parsing
		{"(1,1)+(2,1)\n", "(3,1)"},
		{"(0,5)\n", "0"},
		{"((1,1),2)\n", "((1,1),2)"},
		{"(-3,0)+(1,2)\n", "(-3,0)+(1,2)"},
		{"9223372036854775807\n", "9223372036854775807"},
		{"-9223372036854775808\n", "-9223372036854775808"},
		// end of input terminates the final line
		{"(1,4)", "(1,4)"},
	}
	for testI, test := range tests {
		t.Run(fmt.Sprintf("%d", testI), func(t *testing.T) {
			t.Parallel()
			p := New(strings.NewReader(test.input))
			stmt, err := p.Next()
			if err != nil {
				t.Fatalf("parse %q: %v", test.input, err)
			}
			if !stmt.IsPush {
				t.Fatalf("parse %q: got command %q, want a literal", test.input, stmt.Name)
			}
			if got := stmt.Poly.String(); got != test.want {
				t.Errorf("parse %q: got %s want %s", test.input, got, test.want)
			}
			if _, err := p.Next(); err != io.EOF {
				t.Errorf("parse %q: trailing statement, want EOF (err=%v)", test.input, err)
			}
		})
	}
}

func TestNextCommands(t *testing.T) {
	tests := []struct {
		input    string
		name     string
		uintArg  uint
		coeffArg polycalc.Coeff
	}{
		{input: "ZERO\n", name: "ZERO"},
		{input: "PRINT\n", name: "PRINT"},
		{input: "IS_COEFF\n", name: "IS_COEFF"},
		// unknown names parse fine; the calculator rejects them
		{input: "FOO\n", name: "FOO"},
		{input: "AT 2\n", name: "AT", coeffArg: 2},
		{input: "AT -9223372036854775808\n", name: "AT", coeffArg: -9223372036854775808},
		{input: "DEG_BY 0\n", name: "DEG_BY", uintArg: 0},
		{input: "DEG_BY 13\n", name: "DEG_BY", uintArg: 13},
		{input: "COMPOSE 4294967295\n", name: "COMPOSE", uintArg: 4294967295},
	}
	for testI, test := range tests {
		t.Run(fmt.Sprintf("%d", testI), func(t *testing.T) {
			t.Parallel()
			p := New(strings.NewReader(test.input))
			stmt, err := p.Next()
			if err != nil {
				t.Fatalf("parse %q: %v", test.input, err)
			}
			if stmt.IsPush {
				t.Fatalf("parse %q: got literal %s, want a command", test.input, stmt.Poly)
			}
			if stmt.Name != test.name {
				t.Errorf("parse %q: got name %q want %q", test.input, stmt.Name, test.name)
			}
			if stmt.HasUintArg && stmt.UintArg != test.uintArg {
				t.Errorf("parse %q: got uint arg %d want %d", test.input, stmt.UintArg, test.uintArg)
			}
			if stmt.HasCoeffArg && stmt.CoeffArg != test.coeffArg {
				t.Errorf("parse %q: got coeff arg %d want %d", test.input, stmt.CoeffArg, test.coeffArg)
			}
		})
	}
}

func TestNextDiagnostics(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// malformed literals point at the offending column
		{"(1,1)x\n", "ERROR 1 6"},
		{"(1,1)+\n", "ERROR 1 7"},
		{"(1,1)+5\n", "ERROR 1 7"},
		{"5+5\n", "ERROR 1 2"},
		{"(1;2)\n", "ERROR 1 3"},
		{"()\n", "ERROR 1 2"},
		{"(1,1\n", "ERROR 1 5"},
		{"\n", "ERROR 1 1"},
		{"9223372036854775808\n", "ERROR 1 19"},
		{"-9223372036854775809\n", "ERROR 1 20"},
		{"(1,2147483648)\n", "ERROR 1 13"},
		{"(1,-1)\n", "ERROR 1 4"},
		// command argument errors
		{"AT\n", "ERROR 1 WRONG VALUE"},
		{"AT \n", "ERROR 1 WRONG VALUE"},
		{"AT x\n", "ERROR 1 WRONG VALUE"},
		{"AT 1 2\n", "ERROR 1 WRONG VALUE"},
		{"AT 9223372036854775808\n", "ERROR 1 WRONG VALUE"},
		{"DEG_BY\n", "ERROR 1 WRONG VARIABLE"},
		{"DEG_BY -1\n", "ERROR 1 WRONG VARIABLE"},
		{"DEG_BY 4294967296\n", "ERROR 1 WRONG VARIABLE"},
		{"COMPOSE\n", "ERROR 1 WRONG COUNT"},
		{"COMPOSE -1\n", "ERROR 1 WRONG COUNT"},
		{"COMPOSE 4294967296\n", "ERROR 1 WRONG COUNT"},
		{"COMPOSE 8364889373929365739284365876348912907120974358679243537901234097234689234\n", "ERROR 1 WRONG COUNT"},
		{"COMPOSE kapibara\n", "ERROR 1 WRONG COUNT"},
		{"COMPOSE 44kapibary\n", "ERROR 1 WRONG COUNT"},
		// a command line that is not exactly NAME is a wrong command
		{"PRINT 2\n", "ERROR 1 WRONG COMMAND"},
		{"CLONE(1,1)\n", "ERROR 1 WRONG COMMAND"},
		// any line starting with a letter is a command line
		{"x+5\n", "ERROR 1 WRONG COMMAND"},
	}
	for testI, test := range tests {
		t.Run(fmt.Sprintf("%d", testI), func(t *testing.T) {
			t.Parallel()
			p := New(strings.NewReader(test.input))
			_, err := p.Next()
			lerr, ok := err.(*LineError)
			if !ok {
				t.Fatalf("parse %q: got err %v, want a *LineError", test.input, err)
			}
			if lerr.Error() != test.want {
				t.Errorf("parse %q: got %q want %q", test.input, lerr.Error(), test.want)
			}
		})
	}
}

func TestNextResynchronizes(t *testing.T) {
	t.Parallel()
	p := New(strings.NewReader("(1,\n5\n;;;\nPRINT\n"))

	if _, err := p.Next(); err == nil {
		t.Fatal("line 1 should be rejected")
	}
	stmt, err := p.Next()
	if err != nil || !stmt.IsPush || stmt.Poly.String() != "5" || stmt.Line != 2 {
		t.Fatalf("line 2: got %+v (err=%v), want push 5", stmt, err)
	}
	if _, err := p.Next(); err == nil {
		t.Fatal("line 3 should be rejected")
	}
	stmt, err = p.Next()
	if err != nil || stmt.Name != "PRINT" || stmt.Line != 4 {
		t.Fatalf("line 4: got %+v (err=%v), want PRINT", stmt, err)
	}
	if _, err := p.Next(); err != io.EOF {
		t.Fatalf("got err %v, want EOF", err)
	}
}

func TestLineNumbersInDiagnostics(t *testing.T) {
	t.Parallel()
	p := New(strings.NewReader("ZERO\nZERO\nbad command here\n"))
	for i := 0; i < 2; i++ {
		if _, err := p.Next(); err != nil {
			t.Fatalf("line %d: %v", i+1, err)
		}
	}
	_, err := p.Next()
	lerr, ok := err.(*LineError)
	if !ok || lerr.Error() != "ERROR 3 WRONG COMMAND" {
		t.Fatalf("got %v, want ERROR 3 WRONG COMMAND", err)
	}
}
