package screen

import "github.com/kobzarvs/tedit/internal/terminal"

// Lines is the rendered text shown in the viewport.
type Lines interface {
	Len() int
	Rendered(i int) []byte
}

// View describes one frame. CursorRow and CursorCol are in document and
// rendered coordinates; the offsets translate them to the screen.
type View struct {
	Rows, Cols int
	RowOffset  int
	ColOffset  int
	CursorRow  int
	CursorCol  int
	Lines      Lines

	// Banner lines start a third of the way down an empty document.
	Banner []string

	// Message replaces the last screen row when set. With MessageCursor the
	// cursor is placed after it instead of in the text.
	Message       string
	MessageCursor bool
}

// Compose appends a full redraw of v to f.
func Compose(f *Frame, v View) {
	f.WriteString(terminal.HideCursor)
	f.WriteString(terminal.CursorHome)

	n := v.Lines.Len()
	bannerRow := v.Rows / 3
	for y := 0; y < v.Rows; y++ {
		fileRow := y + v.RowOffset
		switch {
		case v.Message != "" && y == v.Rows-1:
			f.Write(clip([]byte(v.Message), 0, v.Cols))
		case fileRow < n:
			f.Write(clip(v.Lines.Rendered(fileRow), v.ColOffset, v.Cols))
		case n == 0 && y >= bannerRow && y-bannerRow < len(v.Banner):
			f.Write(clip([]byte(v.Banner[y-bannerRow]), 0, v.Cols))
		default:
			f.WriteString("~")
		}
		f.WriteString(terminal.ClearLine)
		if y < v.Rows-1 {
			f.WriteString("\r\n")
		}
	}

	row, col := v.CursorRow-v.RowOffset+1, v.CursorCol-v.ColOffset+1
	if v.MessageCursor {
		row = v.Rows
		col = min(len(v.Message)+1, v.Cols)
	}
	f.WriteString(terminal.MoveCursor(row, col))
	f.WriteString(terminal.ShowCursor)
}

// clip returns the part of line visible in columns [off, off+width).
func clip(line []byte, off, width int) []byte {
	if off >= len(line) || width <= 0 {
		return nil
	}
	line = line[off:]
	if len(line) > width {
		line = line[:width]
	}
	return line
}
