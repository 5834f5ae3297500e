package cpu

import (
	"bufio"
	"io"
	"strings"
)

// Console is the character device behind the I/O traps.
type Console interface {
	// ReadChar blocks until one character is available.
	ReadChar() (byte, error)
	// WriteChar queues one character for output.
	WriteChar(c byte) error
	// Flush pushes queued output to the device.
	Flush() error
}

// StreamConsole adapts a reader and a writer to the Console interface.
type StreamConsole struct {
	in  *bufio.Reader
	out *bufio.Writer
}

// NewStreamConsole wraps r and w in buffers.
func NewStreamConsole(r io.Reader, w io.Writer) *StreamConsole {
	return &StreamConsole{
		in:  bufio.NewReader(r),
		out: bufio.NewWriter(w),
	}
}

// NullConsole has no input and discards output.
func NullConsole() *StreamConsole {
	return NewStreamConsole(strings.NewReader(""), io.Discard)
}

// ReadChar reads one byte. Pending output is flushed first so prompts are visible.
func (s *StreamConsole) ReadChar() (byte, error) {
	if err := s.out.Flush(); err != nil {
		return 0, err
	}
	return s.in.ReadByte()
}

// WriteChar buffers one byte.
func (s *StreamConsole) WriteChar(c byte) error {
	return s.out.WriteByte(c)
}

// Flush writes buffered output.
func (s *StreamConsole) Flush() error {
	return s.out.Flush()
}
