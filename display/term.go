package display

import (
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// fallbackWidth is used when the output is not a terminal (pipes, tests).
const fallbackWidth = 80

// Term is a [Surface] that paints the status line onto row 0 of a
// terminal using ANSI sequences.
type Term struct {
	out  *termenv.Output
	fd   int
	isTT bool
	bg   string
}

// NewTerm creates a terminal surface writing to w. When w is os.Stdout (or
// any *os.File on a terminal) the width is queried from the tty; otherwise
// a fixed fallback width is used.
func NewTerm(w io.Writer) *Term {
	t := &Term{out: termenv.NewOutput(w), fd: -1}
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			t.fd = fd
			t.isTT = true
		}
	}
	return t
}

// Clear erases the status row.
func (t *Term) Clear() {
	t.out.MoveCursor(1, 1)
	t.out.ClearLine()
	t.bg = ""
}

// FillBackground records the background color; the fill itself happens in
// DrawText since a terminal row has no persistent background of its own.
func (t *Term) FillBackground(color string) {
	t.bg = ResolveColor(color)
}

// DrawText writes text at the given cell in the chosen colors. The strip
// to the left and right of the text is padded in the background color so
// the row reads as one solid bar.
func (t *Term) DrawText(text string, col, row int, color string, reverse bool) {
	if col < 0 {
		col = 0
	}
	t.out.MoveCursor(row+1, 1)

	width := t.Width()
	pad := strings.Repeat(" ", col)
	tail := width - col - len(text)
	if tail < 0 {
		tail = 0
	}

	style := t.out.String(pad + text + strings.Repeat(" ", tail)).
		Foreground(t.out.Color(ResolveColor(color)))
	if t.bg != "" {
		style = style.Background(t.out.Color(t.bg))
	}
	if reverse {
		style = style.Reverse()
	}
	_, _ = io.WriteString(t.out, style.String())
}

// Flush is a no-op: the underlying writer is unbuffered.
func (t *Term) Flush() {}

// Raise is a no-op: terminals have no sibling-window stacking.
func (t *Term) Raise() {}

// Width returns the terminal width in cells, or the fallback width when
// the output is not a tty.
func (t *Term) Width() int {
	if t.isTT {
		if w, _, err := term.GetSize(t.fd); err == nil && w > 0 {
			return w
		}
	}
	return fallbackWidth
}
