package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/multierr"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// DefaultReadTimeout is the bounded wait of a single raw read.
const DefaultReadTimeout = 100 * time.Millisecond

// maxCursorReport bounds the bytes read while waiting for a cursor position reply.
const maxCursorReport = 31

type Options struct {
	ReadTimeout time.Duration
}

// Terminal is the controlling terminal: raw input on in, screen output on out.
type Terminal struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int
	vtime uint8
}

func New(in, out *os.File, opts Options) *Terminal {
	return &Terminal{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
		vtime: deciseconds(opts.ReadTimeout),
	}
}

// deciseconds converts a read timeout into a VTIME value.
func deciseconds(d time.Duration) uint8 {
	if d <= 0 {
		d = DefaultReadTimeout
	}
	n := (d + 99*time.Millisecond) / (100 * time.Millisecond)
	if n < 1 {
		n = 1
	}
	if n > 255 {
		n = 255
	}
	return uint8(n)
}

// RawMode holds the terminal attributes captured before raw mode was applied.
// Restore puts them back at most once.
type RawMode struct {
	fd    int
	saved *unix.Termios
	once  sync.Once
	err   error
}

// EnableRawMode switches input to unbuffered, unechoed, signal-free reads that
// return after at most the configured timeout.
func (t *Terminal) EnableRawMode() (*RawMode, error) {
	if !term.IsTerminal(t.inFd) {
		return nil, &Error{Op: "enable raw mode", Err: errors.New("input is not a terminal")}
	}
	saved, err := unix.IoctlGetTermios(t.inFd, ioctlGetTermios)
	if err != nil {
		return nil, &Error{Op: "get attributes", Err: err}
	}
	raw := *saved
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = t.vtime
	if err := unix.IoctlSetTermios(t.inFd, ioctlSetTermiosFlush, &raw); err != nil {
		return nil, &Error{Op: "set attributes", Err: err}
	}
	return &RawMode{fd: t.inFd, saved: saved}, nil
}

// Restore reapplies the captured attributes. It is a no-op on a nil guard or
// when nothing was captured, and only the first call touches the terminal.
func (r *RawMode) Restore() error {
	if r == nil || r.saved == nil {
		return nil
	}
	r.once.Do(func() {
		if err := unix.IoctlSetTermios(r.fd, ioctlSetTermiosFlush, r.saved); err != nil {
			r.err = &Error{Op: "restore attributes", Err: err}
		}
	})
	return r.err
}

// ReadByte returns the next input byte, or ErrNoInput once the read timeout
// elapses with nothing available.
func (t *Terminal) ReadByte() (byte, error) {
	var buf [1]byte
	n, err := unix.Read(t.inFd, buf[:])
	if n == 1 {
		return buf[0], nil
	}
	if err == nil || errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
		return 0, ErrNoInput
	}
	return 0, &IOError{Op: "read", Err: err}
}

func (t *Terminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, &IOError{Op: "write", Err: err}
	}
	return n, nil
}

// ClearScreen erases the display and homes the cursor.
func (t *Terminal) ClearScreen() error {
	_, err := t.Write([]byte(ClearScreen + CursorHome))
	return err
}

// WindowSize reports the terminal dimensions. When the size ioctl is
// unsupported or reports zero columns, the cursor is pushed to the bottom-right
// corner and its reported position is taken as the size.
func (t *Terminal) WindowSize() (rows, cols int, err error) {
	cols, rows, err = term.GetSize(t.outFd)
	if err == nil && cols > 0 {
		return rows, cols, nil
	}
	if err == nil {
		err = errors.New("zero columns reported")
	}
	rows, cols, perr := probeCursor(t, t)
	if perr != nil {
		return 0, 0, &Error{Op: "query window size", Err: multierr.Combine(err, perr)}
	}
	return rows, cols, nil
}

// probeCursor moves the cursor as far right and down as the terminal allows
// and reads back where it landed.
func probeCursor(w io.Writer, r io.ByteReader) (rows, cols int, err error) {
	if _, err := io.WriteString(w, CursorToBottomRight+RequestCursorPosition); err != nil {
		return 0, 0, err
	}
	reply := make([]byte, 0, maxCursorReport)
	for len(reply) < maxCursorReport {
		b, err := r.ReadByte()
		if errors.Is(err, ErrNoInput) {
			break
		}
		if err != nil {
			return 0, 0, err
		}
		if b == 'R' {
			break
		}
		reply = append(reply, b)
	}
	return ParseCursorReport(reply)
}

// ParseCursorReport parses a cursor position reply of the form ESC [ rows ; cols,
// with or without the terminating R.
func ParseCursorReport(reply []byte) (rows, cols int, err error) {
	s := strings.TrimSuffix(string(reply), "R")
	body, ok := strings.CutPrefix(s, "\x1b[")
	if !ok {
		return 0, 0, fmt.Errorf("malformed cursor report %q", s)
	}
	r, c, ok := strings.Cut(body, ";")
	if !ok {
		return 0, 0, fmt.Errorf("malformed cursor report %q", s)
	}
	rows, err = strconv.Atoi(r)
	if err != nil {
		return 0, 0, fmt.Errorf("cursor report rows: %w", err)
	}
	cols, err = strconv.Atoi(c)
	if err != nil {
		return 0, 0, fmt.Errorf("cursor report cols: %w", err)
	}
	if rows < 1 || cols < 1 {
		return 0, 0, fmt.Errorf("cursor report out of range: %d;%d", rows, cols)
	}
	return rows, cols, nil
}
