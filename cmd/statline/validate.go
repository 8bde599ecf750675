package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/u1Ys/statline/config"
)

// validateCmd validates a config file without starting the monitor.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate a statline configuration file without starting the monitor.

This command parses the YAML, applies the STATLINE_COLOR environment
override, and validates all fields.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  statline validate -c statline.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	widgets := len(cfg.Widgets)
	if widgets == 0 {
		widgets = 7 // the full default set
	}

	fmt.Printf("Config is valid!\n")
	fmt.Printf("  Poll interval: %s\n", cfg.Interval.Duration())
	fmt.Printf("  Color:         %s\n", cfg.Color)
	fmt.Printf("  Widgets:       %d\n", widgets)

	return nil
}
