package metric

import (
	"context"
	"fmt"

	"github.com/u1Ys/statline/internal/extract"
	"github.com/u1Ys/statline/source"
)

// Default pseudo-file locations for CPU state.
const (
	defaultLoadAvgPath = "/proc/loadavg"
	defaultCPUInfoPath = "/proc/cpuinfo"
	defaultTempGlob    = "/sys/class/hwmon/hwmon*/temp*_input"
	defaultFanGlob     = "/sys/class/hwmon/hwmon*/fan*_input"
)

var mhzRule = extract.NewRule(`^cpu MHz\s*:\s*([0-9.]+)`, extract.Float)

// CPU tracks load average, clock frequency, temperature and fan speed.
//
// Frequency is extracted from every core block of the CPU-info file but
// only the first matched value is displayed; the per-core spread is not
// interesting at status-bar resolution. Temperatures are enumerated via a
// glob and averaged; when the glob matches nothing the widget renders an
// explicit no-sensor placeholder instead of inventing a number.
type CPU struct {
	LoadAvgPath string
	CPUInfoPath string
	TempGlob    string
	FanGlob     string

	load    float64
	mhz     float64
	tempC   int64
	hasTemp bool
	fanRPM  int64
}

// NewCPU creates a CPU widget reading the standard Linux pseudo-files.
func NewCPU() *CPU {
	return &CPU{
		LoadAvgPath: defaultLoadAvgPath,
		CPUInfoPath: defaultCPUInfoPath,
		TempGlob:    defaultTempGlob,
		FanGlob:     defaultFanGlob,
	}
}

// Update re-reads load average, frequency, temperature and fan speed.
func (c *CPU) Update(ctx context.Context) error {
	load, err := extract.Column(source.ReadLines(c.LoadAvgPath), nil, 0, extract.Float)
	if err != nil {
		return fmt.Errorf("load average: %w", err)
	}
	c.load = load.Float()

	freq, err := extract.Scan(source.ReadLines(c.CPUInfoPath), nil, []extract.Rule{mhzRule})
	if err != nil {
		return fmt.Errorf("cpu frequency: %w", err)
	}
	c.mhz = freq[0].Float()

	temps := source.GlobInts(c.TempGlob)
	c.hasTemp = len(temps) > 0
	if c.hasTemp {
		var sum int64
		for _, t := range temps {
			sum += t
		}
		// sensors report millidegrees
		c.tempC = sum / int64(len(temps)) / 1000
	} else {
		c.tempC = 0
	}

	fans := source.GlobInts(c.FanGlob)
	if len(fans) > 0 {
		c.fanRPM = fans[0]
	} else {
		c.fanRPM = 0
	}
	return nil
}

// Render returns e.g. "0.52 2400MHz 47C 3100rpm". The fan segment is
// omitted when the fan reads zero or is absent, the temperature shows
// "--C" when no sensor file exists.
func (c *CPU) Render() string {
	temp := "--C"
	if c.hasTemp {
		temp = fmt.Sprintf("%dC", c.tempC)
	}
	s := fmt.Sprintf("%.2f %.0fMHz %s", c.load, c.mhz, temp)
	if c.fanRPM > 0 {
		s += fmt.Sprintf(" %drpm", c.fanRPM)
	}
	return s
}
