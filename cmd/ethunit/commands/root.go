package commands

import (
	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

// Error is the class of command line usage errors.
var Error = errs.Class("ethunit")

type app struct {
	envFile  string
	logLevel string

	cfg Config
	log *zap.SugaredLogger
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "ethunit",
		Short:        "Ethereum unit conversion, hex and address utilities",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			a.cfg, err = LoadConfig(a.envFile)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("log-level") {
				a.cfg.LogLevel = a.logLevel
			}

			setupLogging(a.cfg.LogLevel)
			a.log = newLogger()

			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file to load")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (default $"+envLogLevel+" or error)")

	root.AddCommand(
		a.toWeiCmd(),
		a.fromWeiCmd(),
		a.toEtherCmd(),
		a.checksumCmd(),
		a.isAddressCmd(),
		a.hexCmd(),
		a.sha3Cmd(),
		a.randomHexCmd(),
		a.unitsCmd(),
	)

	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}

// unitFor returns the flag value when set, else the configured default.
func (a *app) unitFor(cmd *cobra.Command, flag string) string {
	if cmd.Flags().Changed("unit") {
		return flag
	}

	return a.cfg.Unit
}
