// Package config provides YAML configuration parsing for statline.
//
// This package enables running statline as a standalone binary with a
// configuration file, as an alternative to the programmatic SDK approach.
// Every field is optional; an absent file yields the built-in defaults.
//
// Example configuration:
//
//	interval: 1s
//	color: aquamarine1
//	low_battery: 0.05
//
//	thresholds:
//	  - percent: 100
//	    color: aquamarine1
//	  - percent: 20
//	    color: orange
//	  - percent: 10
//	    color: firebrick1
//
//	widgets: [vscreen, cpu, power, volume, network, wireless, clock]
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ColorEnvVar overrides the configured default foreground color when set
// in the environment.
const ColorEnvVar = "STATLINE_COLOR"

// minInterval is the minimum allowed polling interval. This prevents a
// typo'd interval from busy-spinning subprocess spawns.
const minInterval = 100 * time.Millisecond

// Config is the root configuration structure for statline.
//
// It maps directly to the YAML configuration file structure. Use [Load] or
// [Parse] to create a Config from YAML, or [Default] for the built-ins.
type Config struct {
	// Interval is the time between poll cycles. Defaults to 1s.
	Interval Duration `yaml:"interval"`

	// Color is the default foreground color used on external power.
	// Defaults to aquamarine1. The STATLINE_COLOR environment variable
	// takes precedence over this field.
	Color string `yaml:"color"`

	// LowBattery is the remaining-charge ratio at or below which the line
	// blinks. Defaults to 0.05.
	LowBattery float64 `yaml:"low_battery"`

	// Thresholds is the battery color table, ordered highest threshold
	// first. Empty means the built-in three-entry table.
	Thresholds []ThresholdConfig `yaml:"thresholds"`

	// Widgets selects and orders the line's segments. Known names:
	// vscreen, cpu, power, volume, network, wireless, clock.
	// Empty means all of them, in that order.
	Widgets []string `yaml:"widgets"`

	// MixerCommand is the mixer-status query. Defaults to
	// [amixer, get, Master].
	MixerCommand []string `yaml:"mixer_command"`

	// PlayerProcess is the media-player process name probed for the
	// volume indicator. Defaults to mpv.
	PlayerProcess string `yaml:"player_process"`

	// SupplicantProcess is the process name probed for the wireless
	// indicator. Defaults to wpa_supplicant.
	SupplicantProcess string `yaml:"supplicant_process"`

	// VScreenPath is the virtual-screen marker file written by the
	// companion window manager. Defaults to ~/.statline-vscreen.
	VScreenPath string `yaml:"vscreen_path"`
}

// ThresholdConfig is one entry of the battery color table.
type ThresholdConfig struct {
	// Percent is the charge percentage at or below which Color applies.
	Percent float64 `yaml:"percent"`

	// Color is an X11 color name or hex value.
	Color string `yaml:"color"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Default returns a Config holding the built-in defaults, with the color
// environment override already applied.
func Default() Config {
	cfg := Config{
		Interval:   Duration(time.Second),
		Color:      "aquamarine1",
		LowBattery: 0.05,
	}
	applyEnv(&cfg)
	return cfg
}

// Load reads and parses a YAML configuration file.
//
// Missing optional fields keep their defaults. Returns an error if the
// file cannot be read, the YAML is malformed or validation fails.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration bytes, fills defaults, applies the
// color environment override and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Config{
		Interval:   Duration(time.Second),
		Color:      "aquamarine1",
		LowBattery: 0.05,
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the monitor would reject.
func (c Config) Validate() error {
	if c.Interval.Duration() < minInterval {
		return fmt.Errorf("interval must be at least %s, got %s", minInterval, c.Interval.Duration())
	}
	if c.Color == "" {
		return fmt.Errorf("color cannot be empty")
	}
	if c.LowBattery <= 0 || c.LowBattery > 1 {
		return fmt.Errorf("low_battery must be in (0, 1], got %g", c.LowBattery)
	}
	for i, t := range c.Thresholds {
		if t.Percent <= 0 || t.Percent > 100 {
			return fmt.Errorf("thresholds[%d]: percent must be in (0, 100], got %g", i, t.Percent)
		}
		if t.Color == "" {
			return fmt.Errorf("thresholds[%d]: color cannot be empty", i)
		}
	}
	for i, name := range c.Widgets {
		if !knownWidget(name) {
			return fmt.Errorf("widgets[%d]: unknown widget %q", i, name)
		}
	}
	return nil
}

// applyEnv applies the color environment override.
func applyEnv(cfg *Config) {
	if v := os.Getenv(ColorEnvVar); v != "" {
		cfg.Color = v
	}
}
