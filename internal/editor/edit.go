package editor

// insertChar inserts c at the cursor, first materializing a row when the
// cursor sits on the line past the end.
func (e *Editor) insertChar(c byte) {
	if e.cy == e.rows.Len() {
		e.rows.InsertRow(e.rows.Len(), nil)
	}
	e.rows.Row(e.cy).InsertChar(e.cx, c)
	e.cx++
}

// insertNewline splits the current row at the cursor, or opens an empty row
// above it when the cursor is in column 0.
func (e *Editor) insertNewline() {
	if e.cx == 0 {
		e.rows.InsertRow(e.cy, nil)
	} else {
		row := e.rows.Row(e.cy)
		e.rows.InsertRow(e.cy+1, row.Bytes()[e.cx:])
		row.Truncate(e.cx)
	}
	e.cy++
	e.cx = 0
}

// deleteChar removes the byte before the cursor; in column 0 it joins the
// current row onto the previous one.
func (e *Editor) deleteChar() {
	if e.cy == e.rows.Len() {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}
	row := e.rows.Row(e.cy)
	if e.cx > 0 {
		row.DeleteChar(e.cx - 1)
		e.cx--
		return
	}
	prev := e.rows.Row(e.cy - 1)
	e.cx = prev.Len()
	prev.AppendBytes(row.Bytes())
	e.rows.DeleteRow(e.cy)
	e.cy--
}
