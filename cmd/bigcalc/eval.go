package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	bignum "github.com/shabbyrobe/go-bignum"
	"github.com/spf13/cobra"
)

var arithOps = map[string]func(a, b bignum.Int) (bignum.Int, error){
	"+":   func(a, b bignum.Int) (bignum.Int, error) { return a.Add(b), nil },
	"-":   func(a, b bignum.Int) (bignum.Int, error) { return a.Sub(b), nil },
	"*":   func(a, b bignum.Int) (bignum.Int, error) { return a.Mul(b), nil },
	"/":   bignum.Int.Quo,
	"%":   bignum.Int.Mod,
	"rem": bignum.Int.Rem,
	"**":  bignum.Int.Pow,
}

var compareOps = map[string]func(a, b bignum.Int) string{
	"<":   func(a, b bignum.Int) string { return strconv.FormatBool(a.LessThan(b)) },
	"<=":  func(a, b bignum.Int) string { return strconv.FormatBool(a.LessOrEqualTo(b)) },
	"==":  func(a, b bignum.Int) string { return strconv.FormatBool(a.Equal(b)) },
	">":   func(a, b bignum.Int) string { return strconv.FormatBool(a.GreaterThan(b)) },
	">=":  func(a, b bignum.Int) string { return strconv.FormatBool(a.GreaterOrEqualTo(b)) },
	"cmp": func(a, b bignum.Int) string { return strconv.Itoa(a.Cmp(b)) },
}

func opNames() string {
	names := make([]string, 0, len(arithOps)+len(compareOps))
	for k := range arithOps {
		names = append(names, k)
	}
	for k := range compareOps {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <a> <op> <b>",
		Short: "Apply a binary operator to two integers",
		Long: `Apply a binary operator to two integers.

Operands accept an optional sign and a 0b, 0o or 0x prefix. Operators:

  + - * /     sum, difference, product, truncated quotient
  %           floored modulo, result takes the sign of the divisor
  rem         truncated remainder, result takes the sign of the dividend
  **          power
  < <= == > >= cmp

Pass "--" before the operands if the first one is negative.`,
		Example: `  bigcalc eval 2 '**' 128
  bigcalc eval -- -7 % 3`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.eval(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			a.printResult(cmd, out)
			return nil
		},
	}
}

// eval returns the rendered result of applying op to the literals x and y.
func (a *app) eval(x, op, y string) (string, error) {
	xi, err := bignum.IntFromString(x)
	if err != nil {
		return "", err
	}
	yi, err := bignum.IntFromString(y)
	if err != nil {
		return "", err
	}
	a.log.Debug("eval", "op", op, "a_bits", xi.BitLen(), "b_bits", yi.BitLen())

	if fn, ok := compareOps[op]; ok {
		return fn(xi, yi), nil
	}
	fn, ok := arithOps[op]
	if !ok {
		return "", fmt.Errorf("unknown operator %q: expected one of %s", op, opNames())
	}
	result, err := fn(xi, yi)
	if err != nil {
		return "", fmt.Errorf("%s %s %s: %w", x, op, y, err)
	}
	a.log.Debug("eval done", "op", op, "result_bits", result.BitLen())
	return result.Text(a.cfg.Radix)
}

// printResult writes s to the command's output, in bold when colour is on.
func (a *app) printResult(cmd *cobra.Command, s string) {
	c := color.New(color.Bold)
	setColor(c, a.useColor(cmd.OutOrStdout()))
	c.Fprintln(cmd.OutOrStdout(), s)
}
