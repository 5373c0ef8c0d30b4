// Package keymap implements the stateless key decoder: pure functions
// mapping a physical key code and a modifier bitmask to either a German
// umlaut code point or an editor action code. Neither function keeps or
// consults any state between calls.
package keymap

// Modifier bits, matching the editor package's convention: bit0 Alt,
// bit1 Shift, bit2 Ctrl.
const (
	ModAlt = 1 << iota
	ModShift
	ModCtrl
)

// Action identifies a shortcut recognized by CheckShortcut.
type Action int

const (
	None Action = iota
	Bold
	Italic
	Underline
	Undo
	Redo
	SelectAll
	DeleteWord
	DeleteWordBack
)

// MapToGerman maps an Alt-chipped key code to the German umlaut code point
// it produces, or 0 if keyCode/modifiers don't name one. Requires the Alt
// bit; Shift selects the uppercase variant where one exists (ß has none).
func MapToGerman(keyCode int32, modifiers int) rune {
	if modifiers&ModAlt == 0 {
		return 0
	}
	shift := modifiers&ModShift != 0
	switch keyCode {
	case 'a', 'A':
		if shift {
			return 'Ä'
		}
		return 'ä'
	case 'o', 'O':
		if shift {
			return 'Ö'
		}
		return 'ö'
	case 'u', 'U':
		if shift {
			return 'Ü'
		}
		return 'ü'
	case 's', 'S':
		return 'ß'
	default:
		return 0
	}
}

// CheckShortcut maps a Ctrl-chipped key code to an editor Action, or None
// if keyCode/modifiers don't name one. Requires the Ctrl bit. keyCode may
// be an ASCII letter or one of the raw control codes/virtual key values a
// terminal or GUI toolkit reports for Delete and Backspace.
func CheckShortcut(keyCode int32, modifiers int) Action {
	if modifiers&ModCtrl == 0 {
		return None
	}
	shift := modifiers&ModShift != 0
	switch keyCode {
	case 'b', 'B':
		return Bold
	case 'i', 'I':
		return Italic
	case 'u', 'U':
		return Underline
	case 'z', 'Z':
		if shift {
			return Redo
		}
		return Undo
	case 'y', 'Y':
		return Redo
	case 'a', 'A':
		return SelectAll
	case 'd', 'D', 119, 65535:
		return DeleteWord
	case 8, 22:
		return DeleteWordBack
	default:
		return None
	}
}
