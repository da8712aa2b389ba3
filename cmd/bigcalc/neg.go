package main

import (
	bignum "github.com/shabbyrobe/go-bignum"
	"github.com/spf13/cobra"
)

func newNegCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "neg <a>",
		Short:   "Negate an integer",
		Example: `  bigcalc neg -- -0x10`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := bignum.IntFromString(args[0])
			if err != nil {
				return err
			}
			s, err := v.Neg().Text(a.cfg.Radix)
			if err != nil {
				return err
			}
			a.printResult(cmd, s)
			return nil
		},
	}
}
