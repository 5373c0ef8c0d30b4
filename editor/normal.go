package editor

import "strconv"

// isOperatorKey reports whether key can start or continue a pending
// operator sequence. r counts: it both starts the "replace one char"
// operator and, deliberately, is what keeps that pending state alive
// against the generic cancellation check at the end of handleNormal.
func isOperatorKey(key string) bool {
	return key == "d" || key == "c" || key == "y" || key == "r"
}

func (e *Editor) getCount() int {
	if e.countStr == "" {
		return 1
	}
	n, err := strconv.Atoi(e.countStr)
	e.countStr = ""
	if err != nil {
		return 1
	}
	return n
}

func (e *Editor) handleNormal(key string, modifiers int) {
	if len(key) > 0 && isASCIIDigit(key[0]) && (key[0] != '0' || e.countStr != "") {
		e.countStr += key
		return
	}
	count := e.getCount()

	if e.pendingOperator == "r" {
		if len(key) == 1 {
			e.saveUndo()
			for i := 0; i < e.pendingCount; i++ {
				pos := e.cursorPos()
				if pos < len(e.text) && e.text[pos] != '\n' {
					e.text = e.text[:pos] + key + e.text[pos+1:]
					if i < e.pendingCount-1 {
						e.moveCursor(0, 1)
					}
				}
			}
		}
		e.pendingOperator = ""
		e.pendingCount = 1
		e.updateCursorBounds()
		return
	}

	if key == "d" || key == "c" || key == "y" {
		if e.pendingOperator == key {
			final := e.pendingCount * count
			for i := 0; i < final; i++ {
				e.handleLineOperation(key)
			}
			e.pendingOperator = ""
			e.pendingCount = 1
		} else {
			e.pendingOperator = key
			e.pendingCount = count
		}
		return
	}

	motion, isMotion := e.normalMotion(key, count)
	if isMotion {
		final := e.pendingCount
		if e.pendingOperator != "" {
			e.saveUndo()
			combined := func() {
				for i := 0; i < final; i++ {
					motion()
				}
			}
			if e.pendingOperator == "y" {
				e.yankToMotion(combined)
			} else {
				e.deleteToMotion(combined, e.pendingOperator == "c")
			}
			e.pendingOperator = ""
			e.pendingCount = 1
		} else {
			motion()
		}
		return
	}

	final := e.pendingCount * count
	switch {
	case key == "x":
		e.saveUndo()
		for i := 0; i < final; i++ {
			e.yankAtCursor(false)
			e.deleteAtCursor(false)
		}
	case key == "X":
		e.saveUndo()
		for i := 0; i < final; i++ {
			e.yankAtCursor(true)
			e.deleteAtCursor(true)
		}
	case key == "r" && modifiers&ModCtrl != 0:
		e.performRedo()
	case key == "r":
		e.pendingOperator = "r"
		e.pendingCount = count
	case key == "p":
		e.saveUndo()
		for i := 0; i < final; i++ {
			e.putAfter()
		}
	case key == "P":
		e.saveUndo()
		for i := 0; i < final; i++ {
			e.putBefore()
		}
	case key == "J":
		e.saveUndo()
		for i := 0; i < final; i++ {
			e.joinLines()
		}
	case key == "D":
		e.saveUndo()
		e.deleteToEndOfLine()
	case key == "s":
		e.saveUndo()
		e.yankAtCursor(false)
		e.deleteAtCursor(false)
		e.mode = Insert
	case key == "i":
		e.mode = Insert
		e.saveUndo()
	case key == "I":
		e.cursorCol = 0
		e.mode = Insert
		e.saveUndo()
	case key == "a":
		e.mode = Insert
		e.moveCursor(0, 1)
		e.saveUndo()
	case key == "A":
		e.cursorCol = e.lineLength(e.cursorRow)
		e.mode = Insert
		e.saveUndo()
	case key == "o":
		e.handleOCommand(true)
	case key == "O":
		e.handleOCommand(false)
	case key == "v":
		e.mode = Visual
		e.anchorRow, e.anchorCol = e.cursorRow, e.cursorCol
	case key == "V":
		e.mode = VisualLine
		e.anchorRow, e.anchorCol = e.cursorRow, 0
	case key == "R":
		e.mode = Replace
		e.saveUndo()
	case key == "u":
		e.performUndo()
	}

	if e.pendingOperator == "" {
		e.pendingCount = 1
	}
	if e.pendingOperator != "" && !isOperatorKey(key) {
		e.pendingOperator = ""
	}
}

// normalMotion returns the motion function for key, if key names one, with
// count already baked in via a self-contained closure.
func (e *Editor) normalMotion(key string, count int) (func(), bool) {
	switch key {
	case "h":
		return func() {
			for i := 0; i < count; i++ {
				e.moveCursor(0, -1)
			}
		}, true
	case "j":
		return func() {
			for i := 0; i < count; i++ {
				e.moveCursor(1, 0)
			}
		}, true
	case "k":
		return func() {
			for i := 0; i < count; i++ {
				e.moveCursor(-1, 0)
			}
		}, true
	case "l":
		return func() {
			for i := 0; i < count; i++ {
				e.moveCursor(0, 1)
			}
		}, true
	case "w":
		return func() {
			for i := 0; i < count; i++ {
				e.moveWord(1)
			}
		}, true
	case "b":
		return func() {
			for i := 0; i < count; i++ {
				e.moveWord(-1)
			}
		}, true
	case "e":
		return func() {
			for i := 0; i < count; i++ {
				e.moveWordEnd()
			}
		}, true
	case "0", "asciitilde":
		return func() { e.cursorCol = 0 }, true
	case "dollar", "$":
		return func() {
			l := e.lineLength(e.cursorRow)
			if l > 0 {
				e.cursorCol = l - 1
			} else {
				e.cursorCol = 0
			}
		}, true
	case "G":
		return func() {
			e.cursorRow = e.lineCount() - 1
			e.cursorCol = 0
		}, true
	case "g":
		if e.lastKey == "g" {
			return func() {
				e.cursorRow = 0
				e.cursorCol = 0
			}, true
		}
		return nil, false
	default:
		return nil, false
	}
}

// handleLineOperation implements dd/cc/yy: yank (and, for d/c, remove) the
// current line, including its terminator, into the register.
func (e *Editor) handleLineOperation(op string) {
	e.saveUndo()
	lines := e.lines()
	if e.cursorRow >= len(lines) {
		return
	}
	e.register = lines[e.cursorRow] + "\n"
	if op == "y" {
		return
	}
	lines = append(lines[:e.cursorRow], lines[e.cursorRow+1:]...)
	e.rebuildText(lines)
	if op == "c" {
		e.mode = Insert
	}
}

func (e *Editor) rebuildText(lines []string) {
	if len(lines) == 0 {
		lines = []string{""}
	}
	e.text = joinLines(lines)
	e.updateCursorBounds()
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}

func (e *Editor) yankAtCursor(before bool) {
	pos := e.cursorPos()
	if before {
		if pos > 0 {
			e.register = e.text[pos-1 : pos]
		}
		return
	}
	if pos < len(e.text) {
		e.register = e.text[pos : pos+1]
	}
}

func (e *Editor) deleteToEndOfLine() {
	start := e.cursorPos()
	end := start
	for end < len(e.text) && e.text[end] != '\n' {
		end++
	}
	e.register = e.text[start:end]
	e.text = e.text[:start] + e.text[end:]
	e.updateCursorBounds()
}

func (e *Editor) joinLines() {
	lines := e.lines()
	if e.cursorRow >= len(lines)-1 {
		return
	}
	lines[e.cursorRow] = lines[e.cursorRow] + " " + lines[e.cursorRow+1]
	lines = append(lines[:e.cursorRow+1], lines[e.cursorRow+2:]...)
	e.rebuildText(lines)
}

func (e *Editor) putAfter() {
	if e.register == "" {
		return
	}
	lines := e.lines()
	if e.register[len(e.register)-1] == '\n' {
		content := e.register[:len(e.register)-1]
		var out []string
		if e.cursorRow < len(lines) {
			out = append(out, lines[:e.cursorRow+1]...)
			out = append(out, content)
			out = append(out, lines[e.cursorRow+1:]...)
		} else {
			out = append(out, lines...)
			out = append(out, content)
		}
		e.rebuildText(out)
		e.cursorRow++
		e.cursorCol = 0
		return
	}
	e.moveCursor(0, 1)
	e.insertAtCursor(e.register)
}

func (e *Editor) putBefore() {
	if e.register == "" {
		return
	}
	lines := e.lines()
	if e.register[len(e.register)-1] == '\n' {
		content := e.register[:len(e.register)-1]
		var out []string
		out = append(out, lines[:e.cursorRow]...)
		out = append(out, content)
		out = append(out, lines[e.cursorRow:]...)
		e.rebuildText(out)
		e.cursorCol = 0
		return
	}
	e.insertAtCursor(e.register)
}

func (e *Editor) handleOCommand(below bool) {
	e.saveUndo()
	if below {
		end := e.lineEnd(e.cursorRow)
		if end >= len(e.text) {
			e.text += "\n"
		} else {
			e.text = e.text[:end] + "\n" + e.text[end:]
		}
		e.cursorRow++
	} else {
		start := e.lineStart(e.cursorRow)
		e.text = e.text[:start] + "\n" + e.text[start:]
	}
	e.cursorCol = 0
	e.mode = Insert
}
