package editor

import (
	"io"

	"github.com/kobzarvs/tedit/internal/screen"
)

const (
	savePrompt = "Save as: "
	helpLine   = "Ctrl-S = save | Ctrl-Q = quit"
)

var banner = []string{
	"tedit editor -- version " + Version,
	helpLine,
}

// Render draws one full frame to w with a single write.
func (e *Editor) Render(w io.Writer) error {
	e.Scroll()
	e.frame.Reset()
	screen.Compose(&e.frame, e.view())
	return e.frame.Flush(w)
}

func (e *Editor) view() screen.View {
	v := screen.View{
		Rows:      e.screenRows,
		Cols:      e.screenCols,
		RowOffset: e.rowOff,
		ColOffset: e.colOff,
		CursorRow: e.cy,
		CursorCol: e.rx,
		Lines:     e.rows,
	}
	if e.showBanner {
		v.Banner = banner
	}
	v.Message = e.message()
	v.MessageCursor = e.mode == ModePrompt
	return v
}
