package editor

// saveUndo pushes the current text onto the undo stack, unless it is
// identical to the top of the stack already, and clears the redo stack.
// Any command that mutates the buffer calls this first.
func (e *Editor) saveUndo() {
	if len(e.undoStack) > 0 && e.undoStack[len(e.undoStack)-1] == e.text {
		return
	}
	e.undoStack = append(e.undoStack, e.text)
	if limit := e.maxUndo(); limit > 0 && len(e.undoStack) > limit {
		e.undoStack = e.undoStack[len(e.undoStack)-limit:]
	}
	e.redoStack = nil
}

func (e *Editor) performUndo() {
	if len(e.undoStack) == 0 {
		return
	}
	e.redoStack = append(e.redoStack, e.text)
	last := e.undoStack[len(e.undoStack)-1]
	e.undoStack = e.undoStack[:len(e.undoStack)-1]
	e.text = last
	e.updateCursorBounds()
}

func (e *Editor) performRedo() {
	if len(e.redoStack) == 0 {
		return
	}
	e.undoStack = append(e.undoStack, e.text)
	last := e.redoStack[len(e.redoStack)-1]
	e.redoStack = e.redoStack[:len(e.redoStack)-1]
	e.text = last
	e.updateCursorBounds()
}
