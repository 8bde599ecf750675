// Package display defines the drawing surface the status line is painted
// on, and a terminal implementation of it.
//
// The monitor core only talks to the [Surface] interface; anything that can
// clear itself, fill a background and draw a run of text at a character
// cell can carry the status line. The terminal implementation here is built
// on termenv; an X11 strip window would implement the same contract.
package display

// Surface is a thin strip of screen addressed in character cells.
//
// Implementations are drawn at most once per poll interval, from a single
// goroutine; they do not need to be safe for concurrent use.
type Surface interface {
	// Clear erases the surface.
	Clear()

	// FillBackground paints the whole strip in the named color.
	FillBackground(color string)

	// DrawText draws text with its first glyph at the given column and row,
	// in the named foreground color, with foreground and background swapped
	// when reverse is set.
	DrawText(text string, col, row int, color string, reverse bool)

	// Flush makes everything drawn since the last Flush visible.
	Flush()

	// Raise lifts the surface above sibling windows. Implementations
	// without stacking semantics treat this as a no-op.
	Raise()

	// Width returns the surface width in character cells.
	Width() int
}

// colorHex maps the X11 color names used by the battery threshold table to
// hex values every implementation can resolve. Unknown names pass through
// unchanged so hex and ANSI-index colors keep working.
var colorHex = map[string]string{
	"aquamarine1": "#7fffd4",
	"orange":      "#ffa500",
	"firebrick1":  "#ff3030",
	"black":       "#000000",
	"white":       "#ffffff",
}

// ResolveColor translates an X11 color name to a hex string, passing
// through values that are already hex or ANSI indices.
func ResolveColor(name string) string {
	if hex, ok := colorHex[name]; ok {
		return hex
	}
	return name
}
