package editor

func (e *Editor) handleInsert(key string, modifiers int) {
	if key == "Escape" || (key == "j" && e.lastKey == "j") {
		if key == "j" {
			pos := e.cursorPos()
			if pos > 0 && e.text[pos-1] == 'j' {
				e.text = e.text[:pos-1] + e.text[pos:]
				e.cursorCol--
			}
		} else if e.cursorPos() > 0 {
			e.moveCursor(0, -1)
		}
		e.mode = Normal
		e.saveUndo()
		return
	}

	switch key {
	case "Return":
		e.insertAtCursor("\n")
		e.cursorRow++
		e.cursorCol = 0
	case "BackSpace":
		e.deleteAtCursor(true)
	case "Tab":
		// left to the host: rendering-only concern.
	default:
		if len(key) == 1 || (len(key) > 1 && key[0] > 127) {
			e.insertAtCursor(key)
			e.cursorCol += len(key)
		}
	}
}
