package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/u1Ys/statline"
	"github.com/u1Ys/statline/config"
	"github.com/u1Ys/statline/display"
)

// newLogger creates a JSON logger for CLI use.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// runCmd starts the status-line monitor.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the status-line monitor",
	Long: `Run the statline monitor.

The monitor will:
  - Load configuration from the specified YAML file, or use defaults
  - Poll every configured widget once per interval
  - Redraw the status line whenever its content changes

The monitor runs until interrupted (Ctrl+C) or receives SIGTERM.

Example:
  statline run
  statline run -c statline.yaml`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("config", "c", "", "path to config file (optional)")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg := config.Default()
	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	logger.Info("config loaded",
		"interval", cfg.Interval.Duration().String(),
		"color", cfg.Color,
	)

	opts, err := config.Build(cfg)
	if err != nil {
		return fmt.Errorf("failed to build widgets: %w", err)
	}
	opts = append(opts,
		statline.WithSurface(display.NewTerm(os.Stdout)),
		statline.WithLogger(logger),
	)

	m, err := statline.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create monitor: %w", err)
	}

	// set up context with signal handling - cancel on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// blocks until the context is cancelled
	if err := m.Start(ctx); err != nil {
		return fmt.Errorf("monitor error: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}
