package render

import (
	"bufio"
	"io"
)

// Writer emits one line per frame. With Redraw set every frame ends in a
// carriage return so the terminal overwrites it in place, otherwise in a
// newline.
type Writer struct {
	w      *bufio.Writer
	redraw bool
}

func NewWriter(w io.Writer, redraw bool) *Writer {
	return &Writer{w: bufio.NewWriter(w), redraw: redraw}
}

func (w *Writer) WriteLine(l Line) error {
	if _, err := w.w.WriteString(l.String()); err != nil {
		return err
	}
	end := byte('\n')
	if w.redraw {
		end = '\r'
	}
	if err := w.w.WriteByte(end); err != nil {
		return err
	}
	return w.w.Flush()
}
