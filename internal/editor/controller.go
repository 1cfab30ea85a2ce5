package editor

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/tedit/internal/terminal"
)

// KeyReader yields decoded keys. A nil key with a nil error means the read
// timed out with no input.
type KeyReader interface {
	ReadKey() (*tcell.EventKey, error)
}

// Run redraws and dispatches keys until quit. Render and read failures are
// returned as-is and end the session.
func (e *Editor) Run(keys KeyReader, out io.Writer) error {
	for {
		if err := e.Render(out); err != nil {
			return err
		}
		ev, err := keys.ReadKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		if ev == nil {
			continue
		}
		if e.HandleKey(ev) {
			if _, err := io.WriteString(out, terminal.ClearScreen+terminal.CursorHome); err != nil {
				return &terminal.IOError{Op: "write", Err: err}
			}
			return nil
		}
	}
}

// HandleKey applies one key to the editor and reports whether it asked to quit.
func (e *Editor) HandleKey(ev *tcell.EventKey) bool {
	if e.mode == ModePrompt {
		e.handlePrompt(ev)
		return false
	}
	e.statusMessage = ""
	return e.handleNormal(ev)
}

func (e *Editor) handleNormal(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return true
	case tcell.KeyCtrlS:
		e.save()
	case tcell.KeyEnter:
		e.insertNewline()
	case tcell.KeyBackspace2, tcell.KeyBackspace:
		e.deleteChar()
	case tcell.KeyDelete:
		e.moveCursor(tcell.KeyRight)
		e.deleteChar()
	case tcell.KeyHome:
		e.moveLineStart()
	case tcell.KeyEnd:
		e.moveLineEnd()
	case tcell.KeyPgUp:
		e.pageUp()
	case tcell.KeyPgDn:
		e.pageDown()
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		e.moveCursor(ev.Key())
	case tcell.KeyCtrlL, tcell.KeyEscape:
	case tcell.KeyTab:
		// A literal tab; rows expand it to the next tab stop when rendered.
		e.insertChar('\t')
	case tcell.KeyRune:
		if c, ok := printable(ev.Rune()); ok {
			e.insertChar(c)
		}
	}
	return false
}

func (e *Editor) handlePrompt(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		e.mode = ModeNormal
		e.prompt = e.prompt[:0]
		e.setStatus("Save aborted")
	case tcell.KeyEnter:
		if len(e.prompt) == 0 {
			return
		}
		e.filename = string(e.prompt)
		e.mode = ModeNormal
		e.prompt = e.prompt[:0]
		e.saveAndReport()
	case tcell.KeyBackspace2, tcell.KeyBackspace, tcell.KeyDelete:
		if n := len(e.prompt); n > 0 {
			e.prompt = e.prompt[:n-1]
		}
	case tcell.KeyRune:
		if c, ok := printable(ev.Rune()); ok {
			e.prompt = append(e.prompt, c)
		}
	}
}

func printable(r rune) (byte, bool) {
	if r < 0x20 || r > 0x7e {
		return 0, false
	}
	return byte(r), true
}
