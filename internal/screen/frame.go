// Package screen composes full redraw frames and writes each one to the
// terminal in a single call.
package screen

import (
	"errors"
	"io"

	"github.com/kobzarvs/tedit/internal/terminal"
)

// Frame is an append-only byte accumulator for one redraw.
type Frame struct {
	buf []byte
}

func (f *Frame) Write(p []byte) (int, error) {
	f.buf = append(f.buf, p...)
	return len(p), nil
}

func (f *Frame) WriteString(s string) (int, error) {
	f.buf = append(f.buf, s...)
	return len(s), nil
}

func (f *Frame) Bytes() []byte { return f.buf }

func (f *Frame) Len() int { return len(f.buf) }

func (f *Frame) Reset() { f.buf = f.buf[:0] }

// Flush writes the whole frame with one Write. Any failure, including a short
// write, is reported as a *terminal.IOError.
func (f *Frame) Flush(w io.Writer) error {
	n, err := w.Write(f.buf)
	if err != nil {
		var ioErr *terminal.IOError
		if errors.As(err, &ioErr) {
			return err
		}
		return &terminal.IOError{Op: "write", Err: err}
	}
	if n != len(f.buf) {
		return &terminal.IOError{Op: "write", Err: io.ErrShortWrite}
	}
	return nil
}
