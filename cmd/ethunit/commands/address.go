package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/ethunit/address"
)

func (a *app) checksumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checksum ADDRESS",
		Short: "Print the mixed case checksum form of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := address.ToChecksumAddress(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func (a *app) isAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "is-address ADDRESS",
		Short: "Report whether text is a valid address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			valid := address.IsAddress(args[0])
			a.log.Debugw("is-address", "address", args[0], "valid", valid, "checksum", address.IsAddressChecksum(args[0]))

			_, err := fmt.Fprintln(cmd.OutOrStdout(), valid)
			return err
		},
	}
}

func (a *app) sha3Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sha3 VALUE",
		Short: "Print the Keccak-256 hash of a value",
		Long: "Print the Keccak-256 hash of VALUE. A 0x prefixed VALUE is decoded as hex\n" +
			"first. The hash of empty input is reported as null.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, ok, err := address.Sha3(args[0])
			if err != nil {
				return err
			}

			if !ok {
				hash = "null"
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
}
