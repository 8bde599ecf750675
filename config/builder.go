package config

import (
	"fmt"

	"github.com/u1Ys/statline"
	"github.com/u1Ys/statline/metric"
)

// defaultWidgetOrder is the display order used when the config does not
// name widgets explicitly.
var defaultWidgetOrder = []string{
	"vscreen", "cpu", "power", "volume", "network", "wireless", "clock",
}

// knownWidget reports whether name is a widget the builder can construct.
func knownWidget(name string) bool {
	for _, w := range defaultWidgetOrder {
		if w == name {
			return true
		}
	}
	return false
}

// Build converts a [Config] into options for [statline.New].
//
// Widgets are constructed in the configured order with the configured
// commands, process names and paths applied. The returned options carry
// everything except the surface and logger, which the caller wires.
func Build(cfg Config) ([]statline.Option, error) {
	names := cfg.Widgets
	if len(names) == 0 {
		names = defaultWidgetOrder
	}

	widgets := make([]statline.Widget, 0, len(names))
	for _, name := range names {
		w, err := buildWidget(cfg, name)
		if err != nil {
			return nil, err
		}
		widgets = append(widgets, w)
	}

	opts := []statline.Option{
		statline.WithWidgets(widgets...),
		statline.WithInterval(cfg.Interval.Duration()),
		statline.WithColor(cfg.Color),
		statline.WithLowBatteryThreshold(cfg.LowBattery),
	}
	if len(cfg.Thresholds) > 0 {
		thresholds := make([]statline.Threshold, len(cfg.Thresholds))
		for i, t := range cfg.Thresholds {
			thresholds[i] = statline.Threshold{Percent: t.Percent, Color: t.Color}
		}
		opts = append(opts, statline.WithThresholds(thresholds))
	}
	return opts, nil
}

// buildWidget constructs one widget by name.
func buildWidget(cfg Config, name string) (statline.Widget, error) {
	switch name {
	case "vscreen":
		w := metric.NewVScreen()
		if cfg.VScreenPath != "" {
			w.Path = cfg.VScreenPath
		}
		return w, nil
	case "cpu":
		return metric.NewCPU(), nil
	case "power":
		return metric.NewPower(), nil
	case "volume":
		w := metric.NewVolume()
		if len(cfg.MixerCommand) > 0 {
			w.MixerCommand = cfg.MixerCommand
		}
		if cfg.PlayerProcess != "" {
			w.PlayerProcess = cfg.PlayerProcess
		}
		return w, nil
	case "network":
		return metric.NewNetwork(), nil
	case "wireless":
		w := metric.NewWireless()
		if cfg.SupplicantProcess != "" {
			w.SupplicantProcess = cfg.SupplicantProcess
		}
		return w, nil
	case "clock":
		return metric.NewClock(), nil
	default:
		return nil, fmt.Errorf("unknown widget %q", name)
	}
}
