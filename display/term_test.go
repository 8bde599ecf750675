package display

import (
	"bytes"
	"strings"
	"testing"
)

func TestTermWidthFallback(t *testing.T) {
	term := NewTerm(&bytes.Buffer{})
	if got := term.Width(); got != fallbackWidth {
		t.Errorf("Width() = %d, want %d for a non-tty writer", got, fallbackWidth)
	}
}

func TestTermDrawText(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerm(&buf)

	term.Clear()
	term.FillBackground("black")
	term.DrawText("hello", 10, 0, "aquamarine1", false)
	term.Flush()

	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Errorf("output %q does not contain the drawn text", out)
	}
	// ten cells of left padding place the text at its column
	if !strings.Contains(out, strings.Repeat(" ", 10)+"hello") {
		t.Errorf("output %q does not pad the text to column 10", out)
	}
}

func TestTermDrawTextClampsNegativeColumn(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerm(&buf)

	// a line wider than the surface must still draw, from column zero
	term.DrawText(strings.Repeat("x", 200), -50, 0, "white", false)

	if !strings.Contains(buf.String(), "xxx") {
		t.Error("overlong line was not drawn")
	}
}
