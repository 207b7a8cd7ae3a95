package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/ethunit"
	"github.com/calebcase/ethunit/amount"
	"github.com/calebcase/ethunit/unit"
)

func (a *app) toWeiCmd() *cobra.Command {
	var (
		unitName string
		decimals int
	)

	cmd := &cobra.Command{
		Use:   "to-wei AMOUNT",
		Short: "Convert an amount to wei",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			in := amount.FromString(args[0])

			var out string
			if cmd.Flags().Changed("decimals") {
				out, err = ethunit.ToWeiStringFromDecimals(in, decimals)
				a.log.Debugw("to-wei", "amount", args[0], "decimals", decimals, "wei", out, "err", err)
			} else {
				u := a.unitFor(cmd, unitName)
				out, err = ethunit.ToWeiString(in, u)
				a.log.Debugw("to-wei", "amount", args[0], "unit", u, "wei", out, "err", err)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&unitName, "unit", "u", "", "unit of AMOUNT (default $"+envUnit+" or ether)")
	cmd.Flags().IntVarP(&decimals, "decimals", "d", 0, "token decimals of AMOUNT")
	cmd.MarkFlagsMutuallyExclusive("unit", "decimals")

	return cmd
}

func (a *app) fromWeiCmd() *cobra.Command {
	var (
		unitName string
		decimals int
	)

	cmd := &cobra.Command{
		Use:   "from-wei AMOUNT",
		Short: "Convert an amount of wei to a unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			in := amount.FromString(args[0])

			var out string
			if cmd.Flags().Changed("decimals") {
				out, err = ethunit.FromWeiToDecimalsString(in, decimals)
				a.log.Debugw("from-wei", "wei", args[0], "decimals", decimals, "amount", out, "err", err)
			} else {
				u := a.unitFor(cmd, unitName)
				out, err = ethunit.FromWeiToString(in, u)
				a.log.Debugw("from-wei", "wei", args[0], "unit", u, "amount", out, "err", err)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&unitName, "unit", "u", "", "target unit (default $"+envUnit+" or ether)")
	cmd.Flags().IntVarP(&decimals, "decimals", "d", 0, "target token decimals")
	cmd.MarkFlagsMutuallyExclusive("unit", "decimals")

	return cmd
}

func (a *app) toEtherCmd() *cobra.Command {
	var unitName string

	cmd := &cobra.Command{
		Use:   "to-ether AMOUNT",
		Short: "Convert an amount in a unit to ether",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u := a.unitFor(cmd, unitName)

			out, err := ethunit.ToEtherString(amount.FromString(args[0]), u)
			a.log.Debugw("to-ether", "amount", args[0], "unit", u, "ether", out, "err", err)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&unitName, "unit", "u", "", "unit of AMOUNT (default $"+envUnit+" or ether)")

	return cmd
}

func (a *app) unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the known denominations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, d := range unit.All() {
				_, err := fmt.Fprintf(w, "%-10s %s\n", d.Name, d.Factor)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}
