package metric

import (
	"context"
	"fmt"

	"github.com/u1Ys/statline/source"
)

// Default power-supply attribute locations.
const (
	defaultACOnlinePath   = "/sys/class/power_supply/AC/online"
	defaultEnergyFullPath = "/sys/class/power_supply/BAT0/energy_full"
	defaultEnergyNowPath  = "/sys/class/power_supply/BAT0/energy_now"
	defaultPowerNowPath   = "/sys/class/power_supply/BAT0/power_now"
)

// epsilon guards the ratio and time-remaining divisions when a battery is
// absent and every attribute reads zero.
const epsilon = 1e-6

// Power tracks AC presence and battery charge, drain rate and remaining
// time. It is the one widget the aggregator inspects beyond its rendering:
// the status line's color and blink state derive from ACOnline and
// ChargeRatio.
//
// When the AC-online flag cannot be read it defaults to true. Assuming
// external power is the fail-safe: a machine with no battery must not end
// up blinking red forever.
type Power struct {
	ACOnlinePath   string
	EnergyFullPath string
	EnergyNowPath  string
	PowerNowPath   string

	online    bool
	ratio     float64
	remaining int64 // seconds
	watts     float64
}

// NewPower creates a Power widget reading the standard sysfs attributes.
func NewPower() *Power {
	return &Power{
		ACOnlinePath:   defaultACOnlinePath,
		EnergyFullPath: defaultEnergyFullPath,
		EnergyNowPath:  defaultEnergyNowPath,
		PowerNowPath:   defaultPowerNowPath,
	}
}

// Update re-reads the AC flag and battery attributes and derives the
// charge ratio, remaining seconds and instantaneous consumption.
func (p *Power) Update(ctx context.Context) error {
	p.online = source.ReadInt(p.ACOnlinePath, 1) != 0

	full := float64(source.ReadInt(p.EnergyFullPath, 0))
	now := float64(source.ReadInt(p.EnergyNowPath, 0))
	drain := float64(source.ReadInt(p.PowerNowPath, 0))

	p.ratio = now / max(full, epsilon)
	p.remaining = int64(now * 3600 / max(drain, epsilon))
	// power_now is in microwatts
	p.watts = drain / 1e6
	return nil
}

// ACOnline reports whether external power was present at the last Update.
func (p *Power) ACOnline() bool { return p.online }

// ChargeRatio returns the remaining-energy ratio in [0, 1] as of the last
// Update.
func (p *Power) ChargeRatio() float64 { return p.ratio }

// Render returns e.g. "AC 100%" on external power or "BAT 45% 1:23 12.5W"
// on battery, where 1:23 is the estimated hours:minutes remaining.
func (p *Power) Render() string {
	if p.online {
		return fmt.Sprintf("AC %.0f%%", p.ratio*100)
	}
	return fmt.Sprintf("BAT %.0f%% %d:%02d %.1fW",
		p.ratio*100, p.remaining/3600, p.remaining%3600/60, p.watts)
}
