package editor

// Scroll recomputes the rendered cursor column and moves the viewport so the
// cursor is visible. It runs before every redraw.
func (e *Editor) Scroll() {
	e.rx = 0
	if row := e.rows.Row(e.cy); row != nil {
		e.rx = row.CxToRx(e.cx)
	}

	if e.cy < e.rowOff {
		e.rowOff = e.cy
	}
	textRows := e.textRows()
	if e.cy >= e.rowOff+textRows {
		e.rowOff = e.cy - textRows + 1
	}
	if e.rx < e.colOff {
		e.colOff = e.rx
	}
	if e.rx >= e.colOff+e.screenCols {
		e.colOff = e.rx - e.screenCols + 1
	}
}

// textRows is the number of screen rows left for the document once the
// message line, if any, has taken the bottom row.
func (e *Editor) textRows() int {
	if e.message() != "" && e.screenRows > 1 {
		return e.screenRows - 1
	}
	return e.screenRows
}

// message is the text of the bottom line: the open prompt, or the last
// status. A lone status never hides the only screen row.
func (e *Editor) message() string {
	switch {
	case e.mode == ModePrompt:
		return savePrompt + string(e.prompt)
	case e.statusMessage != "" && e.screenRows > 1:
		return e.statusMessage
	}
	return ""
}
