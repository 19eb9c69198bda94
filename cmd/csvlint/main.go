package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"csvlint/cmd/csvlint/commands"
	"csvlint/errors"
	"csvlint/logger"
)

var verbosity int

var rootCmd = &cobra.Command{
	Use:   "csvlint",
	Short: "CSV structural validator",
	Long: `csvlint validates the structure of CSV files against RFC 4180.

Commands:
  check FILE     Validate a CSV file and report every structural error
  version        Show build information

Examples:
  csvlint check data.csv
  csvlint check -d '\t' data.tsv
  csvlint check --rfc4180 --json export.csv`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Initialize(verbosity)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase logging verbosity (-v info, -vv debug)")

	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *commands.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
