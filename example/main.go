// Command example demonstrates embedding statline as a library with a
// hand-picked widget set.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/u1Ys/statline"
	"github.com/u1Ys/statline/metric"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	m, err := statline.New(
		statline.WithWidgets(
			metric.NewCPU(),
			metric.NewPower(),
			metric.NewNetwork(),
			metric.NewClock(),
		),
		statline.WithInterval(2*time.Second),
		statline.WithLogger(logger),
	)
	if err != nil {
		logger.Error("failed to create monitor", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := m.Start(ctx); err != nil {
		logger.Error("monitor error", "error", err)
		os.Exit(1)
	}
}
