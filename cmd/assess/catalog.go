package main

import (
	"orientation-workers/internal/scoring"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [instrument]",
	Short: "Print an instrument catalog, or list the instruments",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return writeOutput(cmd.OutOrStdout(), scoring.Instruments(), outputFormat)
	}

	id, err := parseInstrument(args[0])
	if err != nil {
		return err
	}
	in, _ := scoring.Lookup(id)
	return writeOutput(cmd.OutOrStdout(), in, outputFormat)
}
