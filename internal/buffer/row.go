package buffer

// Row is one line of text without its terminator, along with its rendered
// form. Every mutating method leaves render consistent with chars.
type Row struct {
	chars  []byte
	render []byte
}

// NewRow returns a row holding a copy of b.
func NewRow(b []byte) *Row {
	r := &Row{chars: append([]byte(nil), b...)}
	r.update()
	return r
}

func (r *Row) update() {
	r.render = Render(r.chars)
}

func (r *Row) Len() int { return len(r.chars) }

// Bytes returns the row content. Callers must not modify it.
func (r *Row) Bytes() []byte { return r.chars }

// Rendered returns the tab-expanded content. Callers must not modify it.
func (r *Row) Rendered() []byte { return r.render }

func (r *Row) String() string { return string(r.chars) }

func (r *Row) CxToRx(cx int) int { return CxToRx(r.chars, cx) }

// InsertChar inserts c before position at; an out-of-range position appends.
func (r *Row) InsertChar(at int, c byte) {
	if at < 0 || at > len(r.chars) {
		at = len(r.chars)
	}
	r.chars = append(r.chars, 0)
	copy(r.chars[at+1:], r.chars[at:])
	r.chars[at] = c
	r.update()
}

// DeleteChar removes the byte at position at. It reports false and leaves the
// row untouched when at is out of range.
func (r *Row) DeleteChar(at int) bool {
	if at < 0 || at >= len(r.chars) {
		return false
	}
	r.chars = append(r.chars[:at], r.chars[at+1:]...)
	r.update()
	return true
}

// AppendBytes concatenates b onto the row.
func (r *Row) AppendBytes(b []byte) {
	r.chars = append(r.chars, b...)
	r.update()
}

// Truncate keeps the first n bytes of the row.
func (r *Row) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(r.chars) {
		return
	}
	r.chars = r.chars[:n:n]
	r.update()
}
