package iterman

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// Buffer returns a list iterator that reads the source line by line,
// each line being one value with its line terminator stripped.
// The iterator stops permanently once the source reports end-of-data.
func Buffer(r io.Reader) *BufferList {
	return &BufferList{src: r, reader: bufio.NewReader(r)}
}

// BufferRoundRobin returns a line by line list iterator that rewinds the source
// to its start upon end-of-data, and thus never runs out of values.
// A source that is empty even after rewinding is the exception:
// iterating it reports exhaustion instead of looping.
//
// Rewinding requires the source to implement io.Seeker;
// a source without it can't round-robin, and construction fails with ErrNotRewindable.
func BufferRoundRobin(r io.Reader) (*BufferList, error) {
	if _, ok := r.(io.Seeker); !ok {
		return nil, ErrNotRewindable.F("round-robin requires io.Seeker, %T doesn't implement it", r)
	}
	return &BufferList{src: r, reader: bufio.NewReader(r), roundRobin: true}, nil
}

// BufferList is an Iterator over a line-oriented readable source.
// The values are read incrementally, so the length of the list is unknown until it was fully iterated.
type BufferList struct {
	src        io.Reader
	reader     *bufio.Reader
	roundRobin bool

	lineIndex  int
	byteOffset int64
	closed     bool
	value      string
	err        error
}

func (l *BufferList) Close() error {
	l.closed = true
	if c, ok := l.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (l *BufferList) Err() error {
	return l.err
}

func (l *BufferList) Next() bool {
	if l.closed || l.err != nil {
		return false
	}

	line, n, ok := l.readLine()
	if !ok && l.err == nil && l.roundRobin {
		if err := l.rewind(); err != nil {
			l.err = err
			return false
		}
		line, n, ok = l.readLine()
	}
	if !ok {
		return false
	}

	l.lineIndex++
	l.byteOffset += int64(n)
	l.value = line
	return true
}

func (l *BufferList) Value() string {
	return l.value
}

// readLine reads the next raw line including its terminator.
// A final line without a terminator still counts as a line.
func (l *BufferList) readLine() (line string, size int, ok bool) {
	raw, err := l.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		l.err = err
		return "", 0, false
	}
	if raw == "" {
		return "", 0, false
	}
	if !utf8.ValidString(raw) {
		l.err = ErrMalformedUTF8.F("line %d", l.lineIndex)
		return "", 0, false
	}
	line = strings.TrimSuffix(raw, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, len(raw), true
}

func (l *BufferList) rewind() error {
	s, ok := l.src.(io.Seeker)
	if !ok {
		return ErrNotRewindable
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return err
	}
	l.reader.Reset(l.src)
	l.lineIndex = 0
	l.byteOffset = 0
	return nil
}

// Seek moves the cursor to a previously observed position,
// so that the next pull reads the line that starts at the given byte offset.
// The source must implement io.Seeker, regardless of the iteration policy.
// The line index is bookkeeping only, it can't be derived from the offset without re-reading.
func (l *BufferList) Seek(lineIndex int, byteOffset int64) error {
	s, ok := l.src.(io.Seeker)
	if !ok {
		return ErrNotRewindable.F("seeking requires io.Seeker, %T doesn't implement it", l.src)
	}
	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}
	if byteOffset < 0 || end < byteOffset {
		return ErrOutOfBounds.F("invalid offset %d, expected at most %d", byteOffset, end)
	}
	if _, err := s.Seek(byteOffset, io.SeekStart); err != nil {
		return err
	}
	l.reader.Reset(l.src)
	l.lineIndex = lineIndex
	l.byteOffset = byteOffset
	return nil
}

// LineIndex tells how many lines were consumed since the start of the source.
func (l *BufferList) LineIndex() int {
	return l.lineIndex
}

// ByteOffset tells the position of the cursor within the source in bytes.
func (l *BufferList) ByteOffset() int64 {
	return l.byteOffset
}
