// Package statline assembles a single-line system status display from
// pluggable metric widgets and redraws it only when its content changes.
//
// A [Monitor] polls an ordered list of [Widget] values on a fixed interval.
// Each widget reads its own loosely structured sources (pseudo-filesystem
// files, external command output), extracts typed fields from them and
// renders one segment of the line. The monitor joins the segments, compares
// the result to the previous cycle and paints the drawing surface only on
// change, so redraw frequency tracks actual content change rather than
// polling frequency.
//
// # Quick start
//
// Build a monitor from the stock widgets and run it until interrupted:
//
//	m, _ := statline.New(
//	    statline.WithWidgets(
//	        metric.NewVScreen(),
//	        metric.NewCPU(),
//	        metric.NewPower(),
//	        metric.NewNetwork(),
//	        metric.NewClock(),
//	    ),
//	)
//
//	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer stop()
//
//	m.Start(ctx) // blocks until context is cancelled
//
// # Degradation
//
// Widgets never remove themselves from the line. A missing pseudo-file, an
// absent battery or a command that fails to spawn all degrade to zero
// values or documented placeholder strings; the line keeps rendering with
// whatever data is available.
//
// # Power-derived styling
//
// The first widget implementing [PowerReader] drives the line's color: a
// configurable default on external power, a walked threshold table on
// battery, and a once-per-second blink at critically low charge.
//
// # Architecture
//
// The library is split into focused packages:
//
//   - source: tolerant file, glob and subprocess line readers
//   - metric: the stock widgets (clock, CPU, power, volume, network,
//     wireless, virtual screen)
//   - display: the Surface contract and a terminal implementation
//   - internal/extract: declarative multi-rule pattern extraction
//
// internal/extract is not part of the public API and may change without
// notice.
package statline
