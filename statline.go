package statline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/u1Ys/statline/display"
)

const (
	defaultInterval   = time.Second
	defaultColor      = "aquamarine1"
	defaultLowBattery = 0.05
	defaultBackground = "black"
	widgetSeparator   = " | "
)

// DefaultThresholds is the battery color table used when none is
// configured: full charge down to 20% in the default color, then orange,
// then firebrick below 10%. Entries are ordered highest threshold first;
// the walk overwrites on every satisfied entry so the lowest one wins.
var DefaultThresholds = []Threshold{
	{Percent: 100, Color: "aquamarine1"},
	{Percent: 20, Color: "orange"},
	{Percent: 10, Color: "firebrick1"},
}

// Monitor is the status-line orchestrator.
//
// Monitor holds an ordered list of [Widget] values (order is display
// order, fixed at construction), polls them on a fixed interval, joins
// their renderings into one line and redraws the surface only when the
// line's content changed since the previous cycle.
//
// The typical lifecycle is:
//
//	m, err := statline.New(
//	    statline.WithWidgets(widgets...),
//	)
//	if err != nil {
//	    slog.Error("failed to create monitor", "error", err)
//	    os.Exit(1)
//	}
//
//	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer cancel()
//
//	m.Start(ctx) // blocks until context cancelled
type Monitor struct {
	widgets    []Widget
	power      PowerReader
	surface    display.Surface
	interval   time.Duration
	color      string
	lowBattery float64
	thresholds []Threshold
	logger     *slog.Logger
	now        func() time.Time

	prev string // previous joined line; the render gate
}

// New creates a [Monitor] from the given options.
//
// At least one widget must be configured via [WithWidget] or
// [WithWidgets]. Other options default sensibly: a one-second poll
// interval, the aquamarine1 foreground, a 5% low-battery blink threshold,
// [DefaultThresholds] for battery colors, a terminal surface on stdout and
// slog.Default() for logging.
//
// The first configured widget that implements [PowerReader] becomes the
// source of the line's color and blink state.
func New(opts ...Option) (*Monitor, error) {
	cfg := &monitorConfig{
		interval:   defaultInterval,
		color:      defaultColor,
		lowBattery: defaultLowBattery,
		thresholds: DefaultThresholds,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if len(cfg.widgets) == 0 {
		return nil, errors.New("at least one widget is required")
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}
	surface := cfg.surface
	if surface == nil {
		surface = defaultSurface()
	}

	m := &Monitor{
		widgets:    cfg.widgets,
		surface:    surface,
		interval:   cfg.interval,
		color:      cfg.color,
		lowBattery: cfg.lowBattery,
		thresholds: cfg.thresholds,
		logger:     logger,
		now:        time.Now,
	}
	for _, w := range m.widgets {
		if p, ok := w.(PowerReader); ok {
			m.power = p
			break
		}
	}
	return m, nil
}

// Start runs the polling loop until the context is cancelled.
//
// One poll cycle updates every widget in order, joins their renderings
// and, only when the joined line differs from the previous cycle's,
// derives the frame style and redraws the surface. Cycles are strictly
// sequential: no two polls are ever in flight, and a slow external
// command stretches the cycle rather than overlapping it.
//
// The first cycle runs immediately; subsequent cycles fire on the
// configured interval. Start always returns nil after a clean shutdown.
func (m *Monitor) Start(ctx context.Context) error {
	m.logger.Info("statline starting",
		"widget_count", len(m.widgets),
		"interval", m.interval.String(),
	)

	m.poll(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("statline stopped")
			return nil
		case <-ticker.C:
			m.poll(ctx)
		}
	}
}

// Interval returns the configured time between poll cycles.
func (m *Monitor) Interval() time.Duration {
	return m.interval
}

// poll runs one full cycle: update, join, gate, draw.
func (m *Monitor) poll(ctx context.Context) {
	for _, w := range m.widgets {
		m.safeUpdate(ctx, w)
	}

	parts := make([]string, len(m.widgets))
	for i, w := range m.widgets {
		parts[i] = w.Render()
	}
	line := strings.Join(parts, widgetSeparator)

	// render gate: identical content, nothing else happens this cycle
	if line == m.prev {
		return
	}
	m.prev = line

	style := deriveStyle(m.power, m.color, m.lowBattery, m.thresholds, m.now())
	m.draw(line, style)
}

// draw paints the line centered on row 0 of the surface.
func (m *Monitor) draw(line string, style Style) {
	m.surface.Clear()
	m.surface.FillBackground(style.Background)
	col := (m.surface.Width() - len(line)) / 2
	m.surface.DrawText(line, col, 0, style.Foreground, style.Reverse)
	m.surface.Flush()
	m.surface.Raise()
}

// safeUpdate calls a widget's Update with panic recovery.
//
// A panicking widget must not take down the whole line. The full stack is
// logged with a correlation ID and the widget simply keeps rendering its
// previous state until a later poll succeeds.
func (m *Monitor) safeUpdate(ctx context.Context, w Widget) {
	defer func() {
		if r := recover(); r != nil {
			correlationID := uuid.NewString()
			m.logger.Error("widget panic",
				"correlation_id", correlationID,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
		}
	}()

	if err := w.Update(ctx); err != nil {
		m.logger.Warn("widget update failed", "error", err.Error())
	}
}
