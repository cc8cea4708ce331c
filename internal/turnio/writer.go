package turnio

import (
	"bufio"
	"fmt"
	"io"

	"puzzle_bots/internal/lander"
)

// Writer flushes after every line; the platform waits for it before
// advancing the turn.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) Line(s string) error {
	if _, err := fmt.Fprintln(w.w, s); err != nil {
		return err
	}
	return w.w.Flush()
}

func (w *Writer) Command(c lander.Command) error {
	return w.Line(fmt.Sprintf("%d %d", c.Rotate, c.Power))
}
