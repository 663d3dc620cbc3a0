package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/quazyrog/polycalc/calc"
)

// Exit codes of the calculator binary.
const (
	exitOK          = 0
	exitUsage       = 1
	exitFileOpen    = 2
	exitInputSyntax = 3
)

// rootCmd is the whole command-line surface: there are no subcommands, the
// calculator reads one input stream and quits.
var rootCmd = &cobra.Command{
	Use:   "polycalc [file]",
	Short: "A stack calculator for multi-variable polynomials.",
	Long: `polycalc reads calculator input line by line: a line is either a
polynomial literal pushed onto the stack, or a command applied to it.
Results go to standard output, per-line diagnostics to standard error.

With no argument (or with "-") the input is standard input; otherwise it is
read from the named file.`,
	Args: cobra.MaximumNArgs(1),
	Run:  run,
}

func run(cmd *cobra.Command, args []string) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.SetLevel(log.DebugLevel)
	}
	halt, _ := cmd.Flags().GetBool("halt-on-error")

	in := os.Stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, errors.Wrap(err, "open input"))
			os.Exit(exitFileOpen)
		}
		defer f.Close()
		in = f
	}

	c := calc.New(os.Stdout, os.Stderr)
	c.HaltOnError = halt
	if err := c.Run(in); err != nil {
		os.Exit(exitInputSyntax)
	}
}

func init() {
	rootCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.Flags().Bool("halt-on-error", false, "stop at the first rejected line")
}

// execute runs the root command, mapping invocation errors to the usage exit
// code.
func execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitUsage)
	}
}
