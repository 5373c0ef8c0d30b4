// Package dictionary loads word/frequency lists into a completion.Index,
// the way the teacher's own line-oriented file readers work: a
// bufio.Scanner over plain text, no external parsing framework.
package dictionary

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tildewave/prontext/completion"
)

// LoadFile reads a newline-delimited "word<TAB>frequency" list (blank
// lines and lines starting with '#' are skipped) and inserts each entry
// into idx. It returns the number of words inserted.
func LoadFile(path string, idx *completion.Index) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return LoadReader(f, idx)
}

// LoadReader is the same as LoadFile but reads from an already-open
// reader, letting callers seed an index from an embedded or in-memory
// word list.
func LoadReader(r io.Reader, idx *completion.Index) (int, error) {
	scanner := bufio.NewScanner(r)
	count := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, freqStr, ok := splitEntry(line)
		if !ok {
			continue
		}
		freq, err := strconv.ParseFloat(freqStr, 32)
		if err != nil {
			continue
		}
		idx.Insert(word, float32(freq))
		count++
	}
	return count, scanner.Err()
}

func splitEntry(line string) (word, freq string, ok bool) {
	if i := strings.IndexByte(line, '\t'); i >= 0 {
		return line[:i], strings.TrimSpace(line[i+1:]), true
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", "", false
	}
	return fields[0], fields[1], true
}
