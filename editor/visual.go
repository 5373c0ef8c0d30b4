package editor

func (e *Editor) handleVisual(key string, modifiers int) {
	switch key {
	case "Escape":
		e.mode = Normal
	case "h":
		e.moveCursor(0, -1)
	case "j":
		e.moveCursor(1, 0)
	case "k":
		e.moveCursor(-1, 0)
	case "l":
		e.moveCursor(0, 1)
	case "w":
		e.moveWord(1)
	case "b":
		e.moveWord(-1)
	case "e":
		e.moveWordEnd()
	case "0":
		e.cursorCol = 0
	case "dollar":
		e.cursorCol = e.lineLength(e.cursorRow)
	case "G":
		e.cursorRow = e.lineCount() - 1
		e.cursorCol = 0
	case "g":
		if e.lastKey == "g" {
			e.cursorRow = 0
			e.cursorCol = 0
		}
	case "d", "x":
		e.yankSelection()
		e.deleteSelection()
		e.mode = Normal
	case "c":
		e.yankSelection()
		e.deleteSelection()
		e.mode = Insert
	case "y":
		e.yankSelection()
		e.mode = Normal
	}
}

// selectionRange computes the [start, end) byte range currently selected.
// In VISUAL_LINE mode it spans whole lines between anchor and cursor; in
// VISUAL mode it spans the byte range between anchor and cursor inclusive
// of the cursor's own byte.
func (e *Editor) selectionRange() (int, int) {
	if e.mode == VisualLine {
		r1 := minInt(e.anchorRow, e.cursorRow)
		r2 := maxInt(e.anchorRow, e.cursorRow)
		start := e.lineStart(r1)
		end := e.lineStart(r2 + 1)
		if end > len(e.text) {
			end = len(e.text)
		}
		return start, end
	}
	start := e.posFromCoords(e.anchorRow, e.anchorCol)
	end := e.cursorPos()
	if start > end {
		start, end = end, start
	}
	end++
	if end > len(e.text) {
		end = len(e.text)
	}
	return start, end
}

func (e *Editor) yankSelection() {
	start, end := e.selectionRange()
	if start < len(e.text) {
		e.register = e.text[start:end]
	} else {
		e.register = ""
	}
}

func (e *Editor) deleteSelection() {
	e.saveUndo()
	start, end := e.selectionRange()
	if start < len(e.text) {
		e.text = e.text[:start] + e.text[end:]
	}
	e.setCursorFromPos(start)
	e.updateCursorBounds()
}
