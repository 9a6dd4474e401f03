package util

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// LineReader supplies player input one line at a time.  ReadLine blocks
// until a full line is available and returns io.EOF once the input is
// exhausted.  The returned line has its line terminator removed.
type LineReader interface {
	ReadLine() (string, error)
}

// Console reads lines from an input stream.  It never writes: whatever
// the player types is echoed by their terminal, and piped input stays
// out of the transcript.
type Console struct {
	r           *bufio.Reader
	Interactive bool // input is a terminal
}

// NewLineReader returns a Console over r.
func NewLineReader(r io.Reader) *Console {
	return &Console{
		r:           bufio.NewReader(r),
		Interactive: IsTerminal(r),
	}
}

// ReadLine returns the next line without its "\n" or "\r\n" suffix.  A
// final line without a terminator is returned as-is; io.EOF follows.
func (c *Console) ReadLine() (string, error) {
	line, err := c.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read line: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// IsTerminal reports whether r is backed by a terminal file descriptor.
// Readers without a descriptor (buffers, pipes wrapped in readers) are
// never terminals.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
