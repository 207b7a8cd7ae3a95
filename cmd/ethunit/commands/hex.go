package commands

import (
	"fmt"
	"strconv"

	"github.com/calebcase/oops"
	"github.com/spf13/cobra"

	"github.com/calebcase/ethunit/hexutil"
	"github.com/calebcase/ethunit/integer"
)

func (a *app) hexCmd() *cobra.Command {
	var number, prefix bool

	cmd := &cobra.Command{
		Use:   "hex VALUE",
		Short: "Hex encode the bytes of a string, or a number with --number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var value interface{} = args[0]
			if number {
				b, err := integer.Parse(args[0], 0)
				if err != nil {
					return err
				}

				value = b
			}

			out, err := hexutil.ToHex(value, prefix)
			a.log.Debugw("hex", "value", args[0], "number", number, "hex", out, "err", err)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVarP(&number, "number", "n", false, "treat VALUE as an integer (decimal, or 0x/0o/0b prefixed)")
	cmd.Flags().BoolVarP(&prefix, "prefix", "p", false, "add the 0x prefix")

	return cmd
}

func (a *app) randomHexCmd() *cobra.Command {
	var prefix bool

	cmd := &cobra.Command{
		Use:   "random-hex BYTES",
		Short: "Print BYTES random bytes as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return Error.Wrap(oops.Trace(err))
			}

			out, err := hexutil.RandomHex(n)
			if err != nil {
				return err
			}

			if prefix {
				out = hexutil.Prefix + out
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVarP(&prefix, "prefix", "p", false, "add the 0x prefix")

	return cmd
}
