package buffer

// TabStop is the width of a tab stop in rendered columns.
const TabStop = 8

// Render expands every tab in chars to spaces up to the next tab stop.
// All other bytes are copied through unchanged.
func Render(chars []byte) []byte {
	tabs := 0
	for _, c := range chars {
		if c == '\t' {
			tabs++
		}
	}
	out := make([]byte, 0, len(chars)+tabs*(TabStop-1))
	for _, c := range chars {
		if c != '\t' {
			out = append(out, c)
			continue
		}
		out = append(out, ' ')
		for len(out)%TabStop != 0 {
			out = append(out, ' ')
		}
	}
	return out
}

// CxToRx converts a byte column in chars to its rendered column.
func CxToRx(chars []byte, cx int) int {
	if cx < 0 {
		cx = 0
	}
	if cx > len(chars) {
		cx = len(chars)
	}
	rx := 0
	for _, c := range chars[:cx] {
		if c == '\t' {
			rx += (TabStop - 1) - (rx % TabStop)
		}
		rx++
	}
	return rx
}
