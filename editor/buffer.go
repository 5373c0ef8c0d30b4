package editor

import "strings"

// lines splits the buffer on '\n'. A buffer with no newline is one line;
// an empty buffer is one empty line.
func (e *Editor) lines() []string {
	return strings.Split(e.text, "\n")
}

// lineCount returns the number of lines, always at least 1.
func (e *Editor) lineCount() int {
	if len(e.text) == 0 {
		return 1
	}
	return strings.Count(e.text, "\n") + 1
}

// lineStart returns the byte offset of the first byte of row.
func (e *Editor) lineStart(row int) int {
	lines := e.lines()
	pos := 0
	for i := 0; i < row && i < len(lines); i++ {
		pos += len(lines[i]) + 1
	}
	if pos > len(e.text) {
		pos = len(e.text)
	}
	return pos
}

// lineLength returns the byte length of row, excluding its terminator.
func (e *Editor) lineLength(row int) int {
	lines := e.lines()
	if row < 0 || row >= len(lines) {
		return 0
	}
	return len(lines[row])
}

// lineEnd returns the byte offset one past the last byte of row's content
// (the position of its '\n', or len(text) for the last line).
func (e *Editor) lineEnd(row int) int {
	return e.lineStart(row) + e.lineLength(row)
}

// cursorPos converts (cursorRow, cursorCol) into an absolute byte offset.
func (e *Editor) cursorPos() int {
	return e.posFromCoords(e.cursorRow, e.cursorCol)
}

// posFromCoords converts a (row, col) pair into an absolute byte offset,
// clamping col to the line's length.
func (e *Editor) posFromCoords(row, col int) int {
	start := e.lineStart(row)
	end := e.lineEnd(row)
	pos := start + col
	if pos > end {
		pos = end
	}
	return pos
}

// setCursorFromPos recomputes (cursorRow, cursorCol) from an absolute byte
// offset. Used after any mutation that may have shifted line boundaries.
func (e *Editor) setCursorFromPos(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(e.text) {
		pos = len(e.text)
	}
	lines := e.lines()
	cum := 0
	for i, l := range lines {
		end := cum + len(l)
		if pos <= end || i == len(lines)-1 {
			e.cursorRow = i
			e.cursorCol = pos - cum
			return
		}
		cum = end + 1
	}
}

// updateCursorBounds clamps the cursor to a valid row and column after any
// mutation of the buffer.
func (e *Editor) updateCursorBounds() {
	count := e.lineCount()
	if e.cursorRow < 0 {
		e.cursorRow = 0
	}
	if e.cursorRow > count-1 {
		e.cursorRow = count - 1
	}
	length := e.lineLength(e.cursorRow)
	if e.cursorCol < 0 {
		e.cursorCol = 0
	}
	if e.cursorCol > length {
		e.cursorCol = length
	}
}

// insertAtCursor splices s into the buffer at the cursor's byte offset
// without moving the cursor; callers are responsible for that.
func (e *Editor) insertAtCursor(s string) {
	pos := e.cursorPos()
	e.text = e.text[:pos] + s + e.text[pos:]
}

// deleteAtCursor removes one code point. back removes the code point
// before the cursor (BackSpace) and re-derives row/col from the resulting
// offset so that deleting a '\n' correctly joins the two lines; !back
// removes the code point at the cursor (x, s) and only reclamps.
func (e *Editor) deleteAtCursor(back bool) {
	pos := e.cursorPos()
	if back {
		if pos == 0 {
			return
		}
		prev := pos - 1
		for prev > 0 && isContinuation(e.text[prev]) {
			prev--
		}
		e.text = e.text[:prev] + e.text[pos:]
		e.setCursorFromPos(prev)
		return
	}
	if pos >= len(e.text) {
		return
	}
	length := utf8Len(e.text[pos])
	if pos+length > len(e.text) {
		length = len(e.text) - pos
	}
	e.text = e.text[:pos] + e.text[pos+length:]
	e.updateCursorBounds()
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
