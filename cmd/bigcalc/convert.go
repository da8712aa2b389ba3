package main

import (
	bignum "github.com/shabbyrobe/go-bignum"
	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Re-render an integer in another radix",
		Long: `Parse an integer in the --from radix and print it in the --to radix.

With --from 0 (the default) the radix is taken from the literal's prefix:
0b, 0o or 0x, otherwise decimal. --to defaults to --radix.`,
		Example: `  bigcalc convert 0xff
  bigcalc convert zz --from 36 --to 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := cmd.Flags().GetInt("from")
			if err != nil {
				return err
			}
			to := a.cfg.Radix
			if cmd.Flags().Changed("to") {
				if to, err = cmd.Flags().GetInt("to"); err != nil {
					return err
				}
			}

			v, err := bignum.IntFromStringBase(args[0], from)
			if err != nil {
				return err
			}
			a.log.Debug("convert", "from", from, "to", to, "bits", v.BitLen())

			s, err := v.Text(to)
			if err != nil {
				return err
			}
			a.printResult(cmd, s)
			return nil
		},
	}

	cmd.Flags().Int("from", 0, "input radix (0 to detect from prefix, or 2-36)")
	cmd.Flags().Int("to", 10, "output radix (2-36), defaults to --radix")
	return cmd
}
