package statline

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/u1Ys/statline/display"
)

// monitorConfig holds mutable state during Monitor construction.
type monitorConfig struct {
	widgets    []Widget
	surface    display.Surface
	interval   time.Duration
	color      string
	lowBattery float64
	thresholds []Threshold
	logger     *slog.Logger
}

// Option configures a [Monitor] during construction.
//
// Option implements the functional options pattern; options return an
// error if validation fails. Built-in options: [WithWidget],
// [WithWidgets], [WithInterval], [WithColor], [WithLowBatteryThreshold],
// [WithThresholds], [WithSurface], [WithLogger].
type Option func(*monitorConfig) error

// defaultSurface is the terminal surface on stdout.
func defaultSurface() display.Surface {
	return display.NewTerm(os.Stdout)
}

// WithWidget appends a single [Widget] to the status line.
//
// Widgets render in the order they are added. At least one widget must be
// configured for [New] to succeed.
func WithWidget(w Widget) Option {
	return func(cfg *monitorConfig) error {
		if w == nil {
			return errors.New("widget cannot be nil")
		}
		cfg.widgets = append(cfg.widgets, w)
		return nil
	}
}

// WithWidgets appends multiple [Widget] values to the status line.
// Equivalent to calling [WithWidget] for each.
func WithWidgets(widgets ...Widget) Option {
	return func(cfg *monitorConfig) error {
		for _, w := range widgets {
			if w == nil {
				return errors.New("widget cannot be nil")
			}
			cfg.widgets = append(cfg.widgets, w)
		}
		return nil
	}
}

// WithInterval sets the time between poll cycles. Defaults to one second.
//
// Returns an error if the duration is zero or negative.
func WithInterval(d time.Duration) Option {
	return func(cfg *monitorConfig) error {
		if d <= 0 {
			return errors.New("poll interval must be positive")
		}
		cfg.interval = d
		return nil
	}
}

// WithColor sets the default foreground color used while on external
// power. Defaults to aquamarine1.
func WithColor(color string) Option {
	return func(cfg *monitorConfig) error {
		if color == "" {
			return errors.New("color cannot be empty")
		}
		cfg.color = color
		return nil
	}
}

// WithLowBatteryThreshold sets the remaining-charge ratio at or below
// which the line blinks. Defaults to 0.05. The boundary is inclusive.
//
// Returns an error if the ratio is outside (0, 1].
func WithLowBatteryThreshold(ratio float64) Option {
	return func(cfg *monitorConfig) error {
		if ratio <= 0 || ratio > 1 {
			return errors.New("low battery threshold must be in (0, 1]")
		}
		cfg.lowBattery = ratio
		return nil
	}
}

// WithThresholds replaces the battery color table. Entries are evaluated
// in the given order with sequential overwrite, so order them highest
// threshold first to make the lowest satisfied entry win.
//
// Returns an error if the table is empty.
func WithThresholds(thresholds []Threshold) Option {
	return func(cfg *monitorConfig) error {
		if len(thresholds) == 0 {
			return errors.New("threshold table cannot be empty")
		}
		cfg.thresholds = append([]Threshold(nil), thresholds...)
		return nil
	}
}

// WithSurface sets the drawing surface. Defaults to a terminal surface on
// stdout.
func WithSurface(s display.Surface) Option {
	return func(cfg *monitorConfig) error {
		if s == nil {
			return errors.New("surface cannot be nil")
		}
		cfg.surface = s
		return nil
	}
}

// WithLogger sets a custom [slog.Logger]. If not specified,
// [slog.Default] is used.
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *monitorConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}
