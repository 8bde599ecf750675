package statline

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/u1Ys/statline/metric"
)

// stubWidget renders fixed text and counts updates.
type stubWidget struct {
	text    string
	updates int
	err     error
}

func (s *stubWidget) Update(ctx context.Context) error {
	s.updates++
	return s.err
}

func (s *stubWidget) Render() string { return s.text }

// panicWidget always panics in Update.
type panicWidget struct{}

func (panicWidget) Update(ctx context.Context) error { panic("boom") }
func (panicWidget) Render() string                   { return "recovered" }

// stubPower is a widget with a fixed power state.
type stubPower struct {
	stubWidget
	online bool
	ratio  float64
}

func (s *stubPower) ACOnline() bool       { return s.online }
func (s *stubPower) ChargeRatio() float64 { return s.ratio }

// recordSurface records every draw for call-count assertions.
type recordSurface struct {
	clears    int
	pendingBG string
	draws     []recordedDraw
}

type recordedDraw struct {
	text    string
	col     int
	row     int
	color   string
	reverse bool
	bg      string
}

func (r *recordSurface) Clear()                      { r.clears++ }
func (r *recordSurface) FillBackground(color string) { r.pendingBG = color }
func (r *recordSurface) DrawText(text string, col, row int, color string, reverse bool) {
	r.draws = append(r.draws, recordedDraw{text, col, row, color, reverse, r.pendingBG})
}
func (r *recordSurface) Flush()     {}
func (r *recordSurface) Raise()     {}
func (r *recordSurface) Width() int { return 100 }

func newTestMonitor(t *testing.T, surface *recordSurface, widgets ...Widget) *Monitor {
	t.Helper()
	m, err := New(
		WithWidgets(widgets...),
		WithSurface(surface),
		WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func TestNewRequiresWidget(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("New() without widgets expected error, got nil")
	}
}

func TestOptionValidation(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"nil widget", WithWidget(nil)},
		{"zero interval", WithInterval(0)},
		{"negative interval", WithInterval(-time.Second)},
		{"empty color", WithColor("")},
		{"zero low battery", WithLowBatteryThreshold(0)},
		{"low battery above one", WithLowBatteryThreshold(1.5)},
		{"empty thresholds", WithThresholds(nil)},
		{"nil surface", WithSurface(nil)},
		{"nil logger", WithLogger(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(WithWidget(&stubWidget{text: "x"}), tt.opt); err == nil {
				t.Errorf("New() with %s expected error, got nil", tt.name)
			}
		})
	}
}

func TestPollJoinsInDisplayOrder(t *testing.T) {
	surface := &recordSurface{}
	m := newTestMonitor(t, surface,
		&stubWidget{text: "a"},
		&stubWidget{text: "b"},
		&stubWidget{text: "c"},
	)

	m.poll(context.Background())

	if len(surface.draws) != 1 {
		t.Fatalf("draw count = %d, want 1", len(surface.draws))
	}
	if got := surface.draws[0].text; got != "a | b | c" {
		t.Errorf("joined line = %q, want %q", got, "a | b | c")
	}
}

func TestRenderGateSkipsUnchangedLine(t *testing.T) {
	surface := &recordSurface{}
	w := &stubWidget{text: "steady"}
	m := newTestMonitor(t, surface, w)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		m.poll(ctx)
	}

	if w.updates != 5 {
		t.Errorf("widget updates = %d, want 5 (polling must continue)", w.updates)
	}
	if len(surface.draws) != 1 {
		t.Errorf("draw count = %d, want 1 (identical lines must not redraw)", len(surface.draws))
	}

	// content change reopens the gate
	w.text = "changed"
	m.poll(ctx)
	if len(surface.draws) != 2 {
		t.Errorf("draw count after change = %d, want 2", len(surface.draws))
	}
}

func TestPollCentersLine(t *testing.T) {
	surface := &recordSurface{}
	m := newTestMonitor(t, surface, &stubWidget{text: "1234567890"})

	m.poll(context.Background())

	// (100 - 10) / 2
	if got := surface.draws[0].col; got != 45 {
		t.Errorf("column = %d, want 45", got)
	}
	if got := surface.draws[0].row; got != 0 {
		t.Errorf("row = %d, want 0", got)
	}
}

func TestUpdateErrorKeepsPreviousRendering(t *testing.T) {
	surface := &recordSurface{}
	w := &stubWidget{text: "ok", err: errors.New("pattern drift")}
	m := newTestMonitor(t, surface, w)

	m.poll(context.Background())

	if len(surface.draws) != 1 || surface.draws[0].text != "ok" {
		t.Errorf("draws = %+v, want the widget's rendering despite the update error", surface.draws)
	}
}

func TestWidgetPanicDoesNotKillPoll(t *testing.T) {
	surface := &recordSurface{}
	m := newTestMonitor(t, surface, panicWidget{}, &stubWidget{text: "alive"})

	m.poll(context.Background())

	if len(surface.draws) != 1 {
		t.Fatalf("draw count = %d, want 1", len(surface.draws))
	}
	if got := surface.draws[0].text; got != "recovered | alive" {
		t.Errorf("line = %q, want %q", got, "recovered | alive")
	}
}

func TestDeriveStyle(t *testing.T) {
	even := time.Unix(1000, 0) // 1000 % 2 == 0
	odd := time.Unix(1001, 0)

	tests := []struct {
		name  string
		power *stubPower
		now   time.Time
		want  Style
	}{
		{
			"ac online uses default color",
			&stubPower{online: true, ratio: 0.9},
			even,
			Style{Foreground: "aquamarine1", Background: "black"},
		},
		{
			"battery high charge",
			&stubPower{ratio: 0.5},
			even,
			Style{Foreground: "aquamarine1", Background: "black"},
		},
		{
			"battery below 20",
			&stubPower{ratio: 0.15},
			even,
			Style{Foreground: "orange", Background: "black"},
		},
		{
			"battery at 5 percent picks lowest satisfied threshold",
			&stubPower{ratio: 0.05},
			odd,
			Style{Foreground: "firebrick1", Background: "black"},
		},
		{
			"blink on even second at the inclusive boundary",
			&stubPower{ratio: 0.05},
			even,
			Style{Foreground: "firebrick1", Background: "black", Reverse: true},
		},
		{
			"no blink just above the boundary",
			&stubPower{ratio: 0.051},
			even,
			Style{Foreground: "firebrick1", Background: "black"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deriveStyle(tt.power, "aquamarine1", 0.05, DefaultThresholds, tt.now)
			if got != tt.want {
				t.Errorf("deriveStyle() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDeriveStyleWithoutPowerReader(t *testing.T) {
	got := deriveStyle(nil, "green", 0.05, DefaultThresholds, time.Unix(0, 0))
	want := Style{Foreground: "green", Background: "black"}
	if got != want {
		t.Errorf("deriveStyle(nil) = %+v, want %+v", got, want)
	}
}

func TestBlinkTogglesWithUnixSecondParity(t *testing.T) {
	p := &stubPower{ratio: 0.03}

	for sec := int64(100); sec < 104; sec++ {
		got := deriveStyle(p, "aquamarine1", 0.05, DefaultThresholds, time.Unix(sec, 0))
		want := sec%2 == 0
		if got.Reverse != want {
			t.Errorf("second %d: reverse = %v, want %v", sec, got.Reverse, want)
		}
	}
}

// TestLowBatteryEndToEnd runs a real Power widget against fixture files
// sitting exactly on the blink boundary and asserts the drawn frame.
func TestLowBatteryEndToEnd(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	power := &metric.Power{
		ACOnlinePath:   write("online", "0\n"),
		EnergyFullPath: write("energy_full", "1000\n"),
		EnergyNowPath:  write("energy_now", "50\n"),
		PowerNowPath:   write("power_now", "10000000\n"),
	}

	surface := &recordSurface{}
	m := newTestMonitor(t, surface, power)
	m.now = func() time.Time { return time.Unix(1000, 0) } // even second

	m.poll(context.Background())

	if len(surface.draws) != 1 {
		t.Fatalf("draw count = %d, want 1", len(surface.draws))
	}
	draw := surface.draws[0]
	if draw.color != "firebrick1" {
		t.Errorf("color = %q, want firebrick1 (ratio 0.05 satisfies the lowest threshold)", draw.color)
	}
	if !draw.reverse {
		t.Error("reverse = false, want true (0.05 is at the inclusive blink boundary)")
	}
	if draw.bg != "black" {
		t.Errorf("background = %q, want black", draw.bg)
	}
}
