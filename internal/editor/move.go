package editor

import "github.com/gdamore/tcell/v2"

func (e *Editor) moveCursor(k tcell.Key) {
	row := e.rows.Row(e.cy)
	switch k {
	case tcell.KeyLeft:
		if e.cx > 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = e.rows.Row(e.cy).Len()
		}
	case tcell.KeyRight:
		if row != nil && e.cx < row.Len() {
			e.cx++
		} else if row != nil && e.cx == row.Len() {
			e.cy++
			e.cx = 0
		}
	case tcell.KeyUp:
		if e.cy > 0 {
			e.cy--
		}
	case tcell.KeyDown:
		// The line past the end is reachable.
		if e.cy < e.rows.Len() {
			e.cy++
		}
	}
	e.clampCursorCol()
}

func (e *Editor) clampCursorCol() {
	lineLen := 0
	if row := e.rows.Row(e.cy); row != nil {
		lineLen = row.Len()
	}
	if e.cx > lineLen {
		e.cx = lineLen
	}
}

func (e *Editor) moveLineStart() {
	e.cx = 0
}

func (e *Editor) moveLineEnd() {
	if row := e.rows.Row(e.cy); row != nil {
		e.cx = row.Len()
	}
}

// pageUp jumps to the top of the viewport, then a screen further up.
func (e *Editor) pageUp() {
	e.cy = e.rowOff
	for i := 0; i < e.screenRows; i++ {
		e.moveCursor(tcell.KeyUp)
	}
}

// pageDown jumps to the bottom of the viewport, then a screen further down.
// The target may be the line past the end.
func (e *Editor) pageDown() {
	e.cy = e.rowOff + e.screenRows - 1
	if e.cy > e.rows.Len() {
		e.cy = e.rows.Len()
	}
	for i := 0; i < e.screenRows; i++ {
		e.moveCursor(tcell.KeyDown)
	}
}
