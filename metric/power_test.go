package metric

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func powerFixture(t *testing.T, online, full, now, drain string) *Power {
	t.Helper()
	dir := t.TempDir()
	p := &Power{
		ACOnlinePath:   filepath.Join(dir, "online"),
		EnergyFullPath: filepath.Join(dir, "energy_full"),
		EnergyNowPath:  filepath.Join(dir, "energy_now"),
		PowerNowPath:   filepath.Join(dir, "power_now"),
	}
	if online != "" {
		writeFile(t, dir, "online", online)
	}
	if full != "" {
		writeFile(t, dir, "energy_full", full)
	}
	if now != "" {
		writeFile(t, dir, "energy_now", now)
	}
	if drain != "" {
		writeFile(t, dir, "power_now", drain)
	}
	return p
}

func TestPowerOnBattery(t *testing.T) {
	p := powerFixture(t, "0\n", "50000000\n", "25000000\n", "12500000\n")

	require.NoError(t, p.Update(context.Background()))

	assert.False(t, p.ACOnline())
	assert.InDelta(t, 0.5, p.ChargeRatio(), 1e-9)
	// 25000000 * 3600 / 12500000 = 7200 seconds
	assert.Equal(t, int64(7200), p.remaining)
	assert.InDelta(t, 12.5, p.watts, 1e-9)
	assert.Equal(t, "BAT 50% 2:00 12.5W", p.Render())
}

func TestPowerACOnline(t *testing.T) {
	p := powerFixture(t, "1\n", "50000000\n", "50000000\n", "0\n")

	require.NoError(t, p.Update(context.Background()))

	assert.True(t, p.ACOnline())
	assert.Equal(t, "AC 100%", p.Render())
}

func TestPowerACFlagDefaultsToOnline(t *testing.T) {
	// no AC file at all: assume powered, never blink a desktop machine
	p := powerFixture(t, "", "", "", "")

	require.NoError(t, p.Update(context.Background()))
	assert.True(t, p.ACOnline())
}

func TestPowerAbsentBattery(t *testing.T) {
	p := powerFixture(t, "0\n", "", "", "")

	require.NoError(t, p.Update(context.Background()))

	// epsilon keeps the ratio and time divisions finite
	assert.Equal(t, 0.0, p.ChargeRatio())
	assert.Equal(t, int64(0), p.remaining)
	assert.Equal(t, 0.0, p.watts)
}

func TestPowerLowBatteryBoundary(t *testing.T) {
	// energy_full=1000, energy_now=50, power_now=10000000: the ratio lands
	// exactly on the 0.05 blink boundary
	p := powerFixture(t, "0\n", "1000\n", "50\n", "10000000\n")

	require.NoError(t, p.Update(context.Background()))

	assert.False(t, p.ACOnline())
	assert.InDelta(t, 0.05, p.ChargeRatio(), 1e-9)
	assert.InDelta(t, 10.0, p.watts, 1e-9)
}
