// Package keys turns the raw terminal byte stream into logical key events.
package keys

import (
	"errors"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/tedit/internal/logger"
	"github.com/kobzarvs/tedit/internal/terminal"
)

const escByte = 0x1b

type state int

const (
	stateIdle state = iota
	stateSawEscape
	stateSawIntro
	stateAwaitingTilde
)

// Final byte after ESC [ .
var bracketKeys = map[byte]tcell.Key{
	'A': tcell.KeyUp,
	'B': tcell.KeyDown,
	'C': tcell.KeyRight,
	'D': tcell.KeyLeft,
	'H': tcell.KeyHome,
	'F': tcell.KeyEnd,
}

// Final byte after ESC O.
var ss3Keys = map[byte]tcell.Key{
	'H': tcell.KeyHome,
	'F': tcell.KeyEnd,
}

// Digit in ESC [ n ~.
var tildeKeys = map[byte]tcell.Key{
	'1': tcell.KeyHome,
	'3': tcell.KeyDelete,
	'4': tcell.KeyEnd,
	'5': tcell.KeyPgUp,
	'6': tcell.KeyPgDn,
	'7': tcell.KeyHome,
	'8': tcell.KeyEnd,
}

// Decoder reads one logical key per call from a byte source whose ReadByte
// returns terminal.ErrNoInput when its bounded wait expires.
type Decoder struct {
	r io.ByteReader
}

func NewDecoder(r io.ByteReader) *Decoder {
	return &Decoder{r: r}
}

// ReadKey returns the next key, or nil when no input arrived within one read
// timeout. Sequences that are unknown or cut short by a timeout decode as a
// plain Escape.
func (d *Decoder) ReadKey() (*tcell.EventKey, error) {
	st := stateIdle
	var intro, digit byte
	for {
		b, err := d.r.ReadByte()
		timedOut := errors.Is(err, terminal.ErrNoInput)
		if err != nil && !timedOut {
			return nil, err
		}
		switch st {
		case stateIdle:
			if timedOut {
				return nil, nil
			}
			if b != escByte {
				return ByteKey(b), nil
			}
			st = stateSawEscape
		case stateSawEscape:
			if timedOut {
				return escape(), nil
			}
			intro = b
			st = stateSawIntro
		case stateSawIntro:
			if timedOut {
				return escape(), nil
			}
			if intro == '[' && b >= '1' && b <= '9' {
				digit = b
				st = stateAwaitingTilde
				continue
			}
			return lookup(intro, b), nil
		case stateAwaitingTilde:
			if timedOut || b != '~' {
				return escape(), nil
			}
			if k, ok := tildeKeys[digit]; ok {
				return tcell.NewEventKey(k, 0, tcell.ModNone), nil
			}
			logger.Debug("unmapped escape sequence", "digit", string(digit))
			return escape(), nil
		}
	}
}

func lookup(intro, final byte) *tcell.EventKey {
	var table map[byte]tcell.Key
	switch intro {
	case '[':
		table = bracketKeys
	case 'O':
		table = ss3Keys
	}
	if k, ok := table[final]; ok {
		return tcell.NewEventKey(k, 0, tcell.ModNone)
	}
	logger.Debug("unmapped escape sequence", "intro", string(intro), "final", string(final))
	return escape()
}

func escape() *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
}

// ByteKey maps a single input byte to its key: DEL is Backspace, other control
// bytes keep their control key code, everything else is a rune holding the byte.
func ByteKey(b byte) *tcell.EventKey {
	switch {
	case b == 0x7f:
		return tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	case b < 0x20:
		return tcell.NewEventKey(tcell.Key(b), 0, tcell.ModNone)
	default:
		return tcell.NewEventKey(tcell.KeyRune, rune(b), tcell.ModNone)
	}
}
