package calc

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/quazyrog/polycalc/parse"
)

// ErrInputSyntax reports that at least one input line was rejected.
var ErrInputSyntax = errors.New("syntax errors in input")

// A Calculator drives the stack from a stream of input lines, one statement
// per line. Query results go to the result sink, diagnostics to the
// diagnostic sink; all output for a line is written before any output for the
// next line.
type Calculator struct {
	stack *Stack
	out   io.Writer
	diag  io.Writer

	// HaltOnError stops processing at the first rejected line instead of
	// resuming with the next one.
	HaltOnError bool
}

// New returns a Calculator writing results to out and diagnostics to diag.
func New(out, diag io.Writer) *Calculator {
	return &Calculator{stack: NewStack(), out: out, diag: diag}
}

// Stack exposes the calculator's stack. It persists across Run calls, so a
// later input starts with whatever earlier inputs left behind.
func (c *Calculator) Stack() *Stack {
	return c.stack
}

// Run processes r to exhaustion and returns ErrInputSyntax when any line was
// rejected. Unless HaltOnError is set, a rejected line only produces its
// diagnostic and processing resumes with the next line.
func (c *Calculator) Run(r io.Reader) error {
	p := parse.New(r)
	clean := true
	for {
		stmt, err := p.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			clean = false
			fmt.Fprintf(c.diag, "%s\n", err)
			if c.HaltOnError {
				break
			}
			continue
		}
		if !c.execute(stmt) {
			clean = false
			if c.HaltOnError {
				break
			}
		}
	}
	if !clean {
		return ErrInputSyntax
	}
	return nil
}

func (c *Calculator) execute(stmt parse.Statement) bool {
	if stmt.IsPush {
		log.Debugf("line %d: push %s", stmt.Line, stmt.Poly)
		c.stack.Push(stmt.Poly)
		return true
	}

	op := OpFromName(stmt.Name)
	if op == OpInvalid {
		fmt.Fprintf(c.diag, "ERROR %d WRONG COMMAND\n", stmt.Line)
		return false
	}
	if stmt.HasUintArg {
		c.stack.SetUintArg(stmt.UintArg)
	}
	if stmt.HasCoeffArg {
		c.stack.SetCoeffArg(stmt.CoeffArg)
	}
	if !c.stack.CanExecute(op) {
		fmt.Fprintf(c.diag, "ERROR %d STACK UNDERFLOW\n", stmt.Line)
		return false
	}
	log.Debugf("line %d: %s", stmt.Line, op)
	c.stack.Execute(op, c.out)
	return true
}
