// Package main provides the assess CLI for scoring psychometric questionnaires offline.
package main

import (
	"fmt"
	"os"

	"orientation-workers/internal/common/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	outputFormat string
	configPath   string

	// defaultVariant is the RIASEC variant used when neither --variant nor the
	// submission names one. It comes from scoring.riasec_variant of --config.
	defaultVariant string
)

var rootCmd = &cobra.Command{
	Use:           "assess",
	Short:         "Score career orientation questionnaires",
	Long:          "assess scores RIASEC, multiple intelligence, learning style, entrepreneurial, career transition and no-diploma questionnaires with the same engine the workers use.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if outputFormat != formatJSON && outputFormat != formatYAML {
			return fmt.Errorf("unsupported format %q (want %s or %s)", outputFormat, formatJSON, formatYAML)
		}

		defaultVariant = ""
		if configPath == "" {
			return nil
		}
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return err
		}
		defaultVariant = cfg.Scoring.RIASECVariant
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", formatJSON, "Output format: json or yaml")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Worker configuration file whose scoring section sets defaults")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
