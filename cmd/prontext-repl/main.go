// Command prontext-repl is a minimal terminal host for the prontext text
// engine: it puts the terminal into raw mode, decodes keystrokes, feeds
// them to editor.Editor, and renders the buffer with plain ANSI escapes.
// It is deliberately not a real GUI (rendering stays a host concern per
// the engine's own scope) -- just enough to drive the engine end to end
// and give the completion index and key decoder somewhere to run outside
// of tests.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/tildewave/prontext/completion"
	"github.com/tildewave/prontext/config"
	"github.com/tildewave/prontext/dictionary"
	"github.com/tildewave/prontext/editor"
	"github.com/tildewave/prontext/keymap"
	"github.com/tildewave/prontext/terminal"
)

func main() {
	configPath := flag.String("config", "", "path to a prontext.toml config file")
	dictPath := flag.String("dict", "", "path to a word<TAB>frequency dictionary file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}

	idx := completion.NewIndex()
	if *dictPath != "" {
		n, err := dictionary.LoadFile(*dictPath, idx)
		if err != nil {
			log.Fatalf("loading dictionary: %v", err)
		}
		log.Printf("loaded %d dictionary entries", n)
	}

	ed := editor.New()
	ed.MaxUndoDepth = cfg.UndoDepth

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		log.Fatalf("entering raw mode: %v", err)
	}
	defer term.Restore(fd, oldState)

	dec := terminal.NewDecoder(os.Stdin)
	suggestions := []string{}
	status := ""

	render(ed, suggestions, status)
	for {
		ev, err := dec.ReadEvent()
		if err != nil {
			break
		}

		if ev.Modifiers&terminal.ModCtrl != 0 && ev.KeyCode == 'c' {
			break
		}

		if ev.Modifiers&terminal.ModCtrl != 0 {
			action := keymap.CheckShortcut(ev.KeyCode, keymap.ModCtrl)
			switch action {
			case keymap.Undo:
				ed.HandleKey("u", 0)
				status = ""
				render(ed, suggestions, status)
				continue
			case keymap.Redo:
				if cfg.EnableCtrlRRedo {
					ed.HandleKey("r", editor.ModCtrl)
				}
				status = ""
				render(ed, suggestions, status)
				continue
			case keymap.SelectAll:
				selectAll(ed)
				status = ""
				render(ed, suggestions, status)
				continue
			case keymap.DeleteWord:
				deleteWord(ed, false)
				status = ""
				render(ed, suggestions, status)
				continue
			case keymap.DeleteWordBack:
				deleteWord(ed, true)
				status = ""
				render(ed, suggestions, status)
				continue
			case keymap.Bold, keymap.Italic, keymap.Underline:
				// The engine holds plain text only; rich-text formatting
				// is a host GUI concern (§1 Non-goals). Surface the
				// request on the status line instead of dropping it.
				status = formatActionName(action) + " requested"
				render(ed, suggestions, status)
				continue
			}
			if ev.KeyCode == 'r' && !cfg.EnableCtrlRRedo {
				render(ed, suggestions, status)
				continue
			}
			if ev.KeyCode == 'n' {
				suggestions = currentSuggestions(ed, idx, cfg.DefaultTopK)
				render(ed, suggestions, status)
				continue
			}
		}

		if ev.Modifiers&terminal.ModAlt != 0 {
			if r := keymap.MapToGerman(ev.KeyCode, keymap.ModAlt); r != 0 {
				ed.HandleKey(string(r), 0)
				render(ed, suggestions, status)
				continue
			}
		}

		modifiers := 0
		if ev.Modifiers&terminal.ModCtrl != 0 {
			modifiers |= editor.ModCtrl
		}
		if ev.Modifiers&terminal.ModAlt != 0 {
			modifiers |= editor.ModAlt
		}
		ed.HandleKey(ev.Key, modifiers)
		suggestions = nil
		status = ""
		render(ed, suggestions, status)
	}
}

// selectAll drives the existing gg / V / G keystrokes to put the editor
// into a VISUAL_LINE selection spanning the whole buffer, the same way a
// user would type it by hand.
func selectAll(ed *editor.Editor) {
	if ed.GetMode() != editor.Normal {
		ed.HandleKey("Escape", 0)
	}
	ed.HandleKey("g", 0)
	ed.HandleKey("g", 0)
	ed.HandleKey("V", 0)
	ed.HandleKey("G", 0)
}

// deleteWord drives the existing d operator with the w/b motion to delete
// the word ahead of (back == false) or behind (back == true) the cursor.
func deleteWord(ed *editor.Editor, back bool) {
	if ed.GetMode() != editor.Normal {
		ed.HandleKey("Escape", 0)
	}
	ed.HandleKey("d", 0)
	if back {
		ed.HandleKey("b", 0)
	} else {
		ed.HandleKey("w", 0)
	}
}

func formatActionName(a keymap.Action) string {
	switch a {
	case keymap.Bold:
		return "bold"
	case keymap.Italic:
		return "italic"
	case keymap.Underline:
		return "underline"
	default:
		return "format"
	}
}

// currentSuggestions looks up completions for the word touching the
// cursor on the current line.
func currentSuggestions(ed *editor.Editor, idx *completion.Index, k int) []string {
	row, col := ed.GetCursor()
	text := ed.GetText()
	lineStart := 0
	line := 0
	for i := 0; i < len(text) && line < row; i++ {
		if text[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd := len(text)
	for i := lineStart; i < len(text); i++ {
		if text[i] == '\n' {
			lineEnd = i
			break
		}
	}
	if lineStart+col > lineEnd {
		col = lineEnd - lineStart
	}
	prefixEnd := lineStart + col
	prefixStart := prefixEnd
	for prefixStart > lineStart && text[prefixStart-1] != ' ' {
		prefixStart--
	}
	prefix := text[prefixStart:prefixEnd]
	return idx.TopK(prefix, k)
}

func render(ed *editor.Editor, suggestions []string, status string) {
	row, col := ed.GetCursor()
	fmt.Print("\x1b[2J\x1b[H")
	fmt.Print(ed.GetText())
	fmt.Printf("\r\n-- %s -- (%d,%d)\r\n", ed.GetMode(), row, col)
	if len(suggestions) > 0 {
		fmt.Printf("suggestions: %v\r\n", suggestions)
	}
	if status != "" {
		fmt.Printf("%s\r\n", status)
	}
}
