package statline

import (
	"context"
	"time"
)

// Widget is one segment of the status line.
//
// A Widget owns whatever state it needs to carry between polls (byte
// counters, smoothed rates, last readings); that state is touched only by
// its own Update, never by the monitor or by other widgets. Update and
// Render are always called from the single polling goroutine, so widgets
// need no locking.
//
// Update gathers fresh data; it may block briefly while spawning a
// subprocess and reading its output to completion. An error from Update
// means this poll's data could not be interpreted (a pattern captured
// something that would not coerce); the monitor logs it and keeps the
// widget's previous rendering on the line. Missing data sources are not
// errors; widgets degrade to placeholders and Render keeps working.
//
// Render returns the widget's current single-line text. It must not block
// and must be callable at any time after construction.
type Widget interface {
	Update(ctx context.Context) error
	Render() string
}

// PowerReader is the narrow capability the monitor inspects beyond a
// widget's rendering: the status line's color and blink state derive from
// the power source. A widget set without a PowerReader renders in the
// default style, as if permanently on external power.
type PowerReader interface {
	// ACOnline reports whether external power is present. When the flag
	// cannot be determined it is true: assume powered.
	ACOnline() bool

	// ChargeRatio returns the remaining-energy ratio in [0, 1].
	ChargeRatio() float64
}

// Threshold is one entry of the battery color table: the color applies
// while the remaining charge is at or below Percent.
type Threshold struct {
	Percent float64
	Color   string
}

// Style is the color and blink decision for one rendered frame. It is
// derived fresh on every drawn poll and never persisted.
type Style struct {
	Foreground string
	Background string
	Reverse    bool
}

// deriveStyle picks the frame style from the power state.
//
// On external power the configured default color applies, no blink. On
// battery the threshold table is walked in order and every satisfied entry
// overwrites the pick, so with a high-to-low table the lowest satisfied
// threshold wins. At or below the low-battery ratio the reverse flag
// toggles with the parity of the Unix second, one visible flip per second.
func deriveStyle(p PowerReader, baseColor string, lowBattery float64, thresholds []Threshold, now time.Time) Style {
	style := Style{Foreground: baseColor, Background: defaultBackground}
	if p == nil || p.ACOnline() {
		return style
	}

	ratio := p.ChargeRatio()
	for _, t := range thresholds {
		if ratio <= t.Percent/100 {
			style.Foreground = t.Color
		}
	}
	if ratio <= lowBattery {
		style.Reverse = now.Unix()%2 == 0
	}
	return style
}
