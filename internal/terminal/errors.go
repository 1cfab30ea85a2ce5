package terminal

import "errors"

// ErrNoInput is returned by ReadByte when no byte arrived within the read timeout.
var ErrNoInput = errors.New("terminal: no input")

// Error reports a failure to configure or query the terminal.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "terminal: " + e.Op
	}
	return "terminal: " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// IOError reports an unrecoverable read or write on the terminal.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return "terminal " + e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }
