package editor

import (
	"github.com/kobzarvs/tedit/internal/buffer"
	"github.com/kobzarvs/tedit/internal/config"
	"github.com/kobzarvs/tedit/internal/screen"
)

const Version = "0.1"

type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt
)

// Editor is the whole editing state: the document, the cursor in buffer and
// rendered coordinates, and the viewport onto the terminal.
type Editor struct {
	rows *buffer.Rows

	// cursor in buffer space; cy == rows.Len() is the line past the end
	cx, cy int
	// cursor column in rendered space, recomputed by Scroll
	rx int

	rowOff     int
	colOff     int
	screenRows int
	screenCols int

	filename      string
	mode          Mode
	prompt        []byte
	statusMessage string
	showBanner    bool

	frame screen.Frame
}

func New(cfg config.Config, screenRows, screenCols int) *Editor {
	if screenRows < 1 {
		screenRows = 1
	}
	if screenCols < 1 {
		screenCols = 1
	}
	return &Editor{
		rows:       buffer.New(),
		screenRows: screenRows,
		screenCols: screenCols,
		mode:       ModeNormal,
		showBanner: cfg.Editor.ShowBanner,
	}
}

func (e *Editor) Filename() string { return e.filename }

func (e *Editor) LineCount() int { return e.rows.Len() }

// Cursor returns the buffer-space cursor as row, column.
func (e *Editor) Cursor() (row, col int) { return e.cy, e.cx }

func (e *Editor) setStatus(msg string) {
	e.statusMessage = msg
}
