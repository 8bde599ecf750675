// Package main is the entry point for the statline CLI.
//
// statline can be run either as a library (SDK) or as a standalone binary
// with YAML configuration. This CLI provides the standalone binary
// approach.
//
// Usage:
//
//	statline run                      # Run with built-in defaults
//	statline run -c statline.yaml     # Run with a config file
//	statline validate -c statline.yaml
//	statline version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by GoReleaser at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "statline",
	Short: "A change-gated single-line system status monitor",
	Long: `statline polls system state (load, power, audio, network, wireless)
once per interval, assembles one status line from it and redraws only
when the line's content actually changed.

Quick start:
  1. Run: statline run
  2. Optionally create a config file (statline.yaml) and pass it with -c

Example config:
  interval: 1s
  color: aquamarine1
  widgets: [vscreen, cpu, power, volume, network, wireless, clock]`,
	// No Run/RunE means this just shows help when called without subcommands
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this statline binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("statline %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	// Register subcommands with root
	rootCmd.AddCommand(versionCmd)
}
