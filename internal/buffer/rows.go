package buffer

import (
	"bufio"
	"errors"
	"io"
)

// Rows is the ordered sequence of document lines.
type Rows struct {
	rows []*Row
}

func New() *Rows {
	return &Rows{}
}

func (s *Rows) Len() int { return len(s.rows) }

// Row returns the row at index i, or nil when i is out of range.
func (s *Rows) Row(i int) *Row {
	if i < 0 || i >= len(s.rows) {
		return nil
	}
	return s.rows[i]
}

// InsertRow inserts a copy of b as a new row at position at. Positions outside
// [0, Len] are ignored.
func (s *Rows) InsertRow(at int, b []byte) bool {
	if at < 0 || at > len(s.rows) {
		return false
	}
	s.rows = append(s.rows, nil)
	copy(s.rows[at+1:], s.rows[at:])
	s.rows[at] = NewRow(b)
	return true
}

// DeleteRow removes the row at position at.
func (s *Rows) DeleteRow(at int) bool {
	if at < 0 || at >= len(s.rows) {
		return false
	}
	copy(s.rows[at:], s.rows[at+1:])
	s.rows[len(s.rows)-1] = nil
	s.rows = s.rows[:len(s.rows)-1]
	return true
}

// Text joins every row followed by a newline.
func (s *Rows) Text() []byte {
	size := 0
	for _, r := range s.rows {
		size += r.Len() + 1
	}
	out := make([]byte, 0, size)
	for _, r := range s.rows {
		out = append(out, r.chars...)
		out = append(out, '\n')
	}
	return out
}

// Load reads r line by line, stripping trailing carriage returns and newlines,
// and appends each line as a row.
func Load(r io.Reader) (*Rows, error) {
	s := New()
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			s.InsertRow(s.Len(), trimEOL(line))
		}
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func trimEOL(line []byte) []byte {
	n := len(line)
	for n > 0 && (line[n-1] == '\n' || line[n-1] == '\r') {
		n--
	}
	return line[:n]
}

// Rendered returns the tab-expanded form of row i, or nil when i is out of range.
func (s *Rows) Rendered(i int) []byte {
	if r := s.Row(i); r != nil {
		return r.render
	}
	return nil
}
