package editor

// ReplaceCurrentWord replaces the whitespace-delimited run of bytes
// touching the cursor with w, and places the cursor immediately after the
// replacement. Used by the host for e.g. spellcheck-style corrections.
func (e *Editor) ReplaceCurrentWord(w string) {
	e.saveUndo()
	pos := e.cursorPos()
	start := pos
	for start > 0 && !isASCIISpace(e.text[start-1]) {
		start--
	}
	end := pos
	for end < len(e.text) && !isASCIISpace(e.text[end]) {
		end++
	}
	e.text = e.text[:start] + w + e.text[end:]
	e.cursorCol = start - e.lineStart(e.cursorRow) + len(w)
	e.updateCursorBounds()
}
