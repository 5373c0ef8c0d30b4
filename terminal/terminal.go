// Package terminal decodes raw terminal input bytes into the (key,
// modifiers) event shape prontext's editor and keymap packages expect.
// Grounded on the teacher's own VT100 escape decoder: a bufio.Reader over
// stdin, and a lookup table from the bytes following ESC to a symbolic
// key, extended here to also carry the editor's key labels (h/j/k/l style
// motions for arrows, "Escape"/"Return"/"BackSpace" for control keys) and
// the Alt/Ctrl modifier bits the engine cares about.
package terminal

import (
	"bufio"
	"io"
)

// Modifier bits, matching editor.Mod*/keymap.Mod*: bit0 Alt, bit1 Shift,
// bit2 Ctrl.
const (
	ModAlt = 1 << iota
	ModShift
	ModCtrl
)

// arrowKeys maps the bytes following ESC '[' to the editor motion key each
// arrow is bound to.
var arrowKeys = map[byte]string{
	'A': "k", // up
	'B': "j", // down
	'C': "l", // right
	'D': "h", // left
}

// Event is a decoded keystroke ready to hand to editor.Editor.HandleKey or
// keymap.CheckShortcut/MapToGerman.
type Event struct {
	Key       string
	KeyCode   int32
	Modifiers int
}

// Decoder turns a byte stream from a raw-mode terminal into Events.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder wraps r for reading. In a real host r is the raw-mode stdin
// file put there by golang.org/x/term.MakeRaw.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// ReadEvent reads and decodes the next keystroke.
func (d *Decoder) ReadEvent() (Event, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return Event{}, err
	}

	switch b {
	case 27: // ESC
		return d.decodeEscape()
	case 13: // \r
		return Event{Key: "Return", KeyCode: 13}, nil
	case 127, 8: // DEL, ^H
		return Event{Key: "BackSpace", KeyCode: int32(b)}, nil
	case 9: // \t
		return Event{Key: "Tab", KeyCode: 9}, nil
	}

	if b < 0x20 {
		// A C0 control code: Ctrl+letter. Terminals send 'a'-0x60 for
		// Ctrl+a, etc; recover the letter and set the Ctrl bit.
		letter := b + 0x60
		return Event{Key: string(rune(letter)), KeyCode: int32(letter), Modifiers: ModCtrl}, nil
	}

	if b < 0x80 {
		return Event{Key: string(rune(b)), KeyCode: int32(b)}, nil
	}

	return d.decodeUTF8(b)
}

func (d *Decoder) decodeEscape() (Event, error) {
	if d.r.Buffered() == 0 {
		return Event{Key: "Escape", KeyCode: 27}, nil
	}
	first, err := d.r.ReadByte()
	if err != nil {
		return Event{}, err
	}
	if first != '[' && first != 'O' {
		// Alt+<key>: the terminal prefixes the key with a bare ESC.
		return Event{Key: string(rune(first)), KeyCode: int32(first), Modifiers: ModAlt}, nil
	}
	code, err := d.r.ReadByte()
	if err != nil {
		return Event{}, err
	}
	if key, ok := arrowKeys[code]; ok {
		return Event{Key: key, KeyCode: int32(code)}, nil
	}
	// Unrecognized escape sequence (function keys, page up/down, etc):
	// drain any trailing '~' terminator and report a no-op.
	if code >= '0' && code <= '9' {
		for {
			next, err := d.r.ReadByte()
			if err != nil || next == '~' {
				break
			}
		}
	}
	return Event{}, nil
}

func (d *Decoder) decodeUTF8(first byte) (Event, error) {
	n := utf8SeqLen(first)
	buf := make([]byte, n)
	buf[0] = first
	for i := 1; i < n; i++ {
		b, err := d.r.ReadByte()
		if err != nil {
			return Event{Key: string(buf[:i])}, nil
		}
		buf[i] = b
	}
	return Event{Key: string(buf)}, nil
}

func utf8SeqLen(c byte) int {
	switch {
	case c&0xE0 == 0xC0:
		return 2
	case c&0xF0 == 0xE0:
		return 3
	case c&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}
