package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/minis/internal/apps/calc"
)

var calcCmd = &cobra.Command{
	Use:   "calc <expr>",
	Short: "Evaluate an arithmetic expression",
	Long: `Evaluate an expression with + - * / and parentheses and print the result.
Prints "Error" and exits with status 1 when the expression is invalid.

Examples:
  minis calc "2+2"
  minis calc "(1.5 + .5) * -3"
  minis calc -- "-2*3"`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCalc,
}

func runCalc(_ *cobra.Command, args []string) {
	src := strings.Join(args, " ")

	v, err := calc.Eval(src)
	if err != nil {
		log.Debug("calc failed", "expr", src, "error", err)
		fmt.Println(calc.ErrorText)
		closeLogging()
		os.Exit(1)
	}
	fmt.Println(calc.Format(v))
}
