package terminal

import "strconv"

// VT100 sequences written to the terminal.
const (
	HideCursor            = "\x1b[?25l"
	ShowCursor            = "\x1b[?25h"
	CursorHome            = "\x1b[H"
	ClearLine             = "\x1b[K"
	ClearScreen           = "\x1b[2J"
	RequestCursorPosition = "\x1b[6n"
	CursorToBottomRight   = "\x1b[999C\x1b[999B"
)

// MoveCursor positions the cursor at a 1-based row and column.
func MoveCursor(row, col int) string {
	return "\x1b[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}
