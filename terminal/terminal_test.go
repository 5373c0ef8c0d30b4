package terminal

import (
	"strings"
	"testing"
)

func TestReadEventPlainLetter(t *testing.T) {
	d := NewDecoder(strings.NewReader("a"))
	ev, err := d.ReadEvent()
	if err != nil {
		t.Fatal(err)
	}
	if ev.Key != "a" || ev.Modifiers != 0 {
		t.Errorf("got %+v", ev)
	}
}

func TestReadEventCtrlLetter(t *testing.T) {
	d := NewDecoder(strings.NewReader(string(rune(1)))) // Ctrl+a
	ev, err := d.ReadEvent()
	if err != nil {
		t.Fatal(err)
	}
	if ev.Key != "a" || ev.Modifiers != ModCtrl {
		t.Errorf("got %+v", ev)
	}
}

func TestReadEventArrowKeys(t *testing.T) {
	d := NewDecoder(strings.NewReader("\x1b[A\x1b[B\x1b[C\x1b[D"))
	want := []string{"k", "j", "l", "h"}
	for _, w := range want {
		ev, err := d.ReadEvent()
		if err != nil {
			t.Fatal(err)
		}
		if ev.Key != w {
			t.Errorf("got %q, want %q", ev.Key, w)
		}
	}
}

func TestReadEventEscapeAlone(t *testing.T) {
	d := NewDecoder(strings.NewReader("\x1b"))
	ev, err := d.ReadEvent()
	if err != nil {
		t.Fatal(err)
	}
	if ev.Key != "Escape" {
		t.Errorf("got %+v", ev)
	}
}

func TestReadEventReturnAndBackspace(t *testing.T) {
	d := NewDecoder(strings.NewReader("\r\x7f"))
	ev, err := d.ReadEvent()
	if err != nil || ev.Key != "Return" {
		t.Errorf("got %+v, err %v", ev, err)
	}
	ev, err = d.ReadEvent()
	if err != nil || ev.Key != "BackSpace" {
		t.Errorf("got %+v, err %v", ev, err)
	}
}

func TestReadEventUTF8(t *testing.T) {
	d := NewDecoder(strings.NewReader("ä"))
	ev, err := d.ReadEvent()
	if err != nil {
		t.Fatal(err)
	}
	if ev.Key != "ä" {
		t.Errorf("got %q", ev.Key)
	}
}

func TestReadEventAltLetter(t *testing.T) {
	d := NewDecoder(strings.NewReader("\x1ba"))
	ev, err := d.ReadEvent()
	if err != nil {
		t.Fatal(err)
	}
	if ev.Key != "a" || ev.Modifiers != ModAlt {
		t.Errorf("got %+v", ev)
	}
}
