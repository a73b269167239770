package stream

import (
	"strings"
	"unicode/utf8"
)

// ID selects one of the two captured child streams.
type ID int

const (
	Stdout ID = iota
	Stderr
)

func (id ID) String() string {
	if id == Stderr {
		return "stderr"
	}
	return "stdout"
}

// Stream accumulates the text of one child output stream. Chunks are kept in
// arrival order and are never dropped, truncated, or reordered. There is no
// size cap; the child is expected to be short-to-medium-lived.
type Stream struct {
	id     ID
	chunks []string
	open   bool
}

func New(id ID) *Stream {
	return &Stream{id: id, open: true}
}

func (s *Stream) ID() ID       { return s.id }
func (s *Stream) Name() string { return s.id.String() }

// Append records one read-sized block. The bytes are decoded as UTF-8 with
// invalid sequences replaced by U+FFFD and are otherwise kept verbatim,
// newlines included. Empty blocks are ignored.
func (s *Stream) Append(b []byte) {
	if len(b) == 0 {
		return
	}
	s.chunks = append(s.chunks, decode(b))
}

// decode walks the bytes rune by rune so every invalid sequence yields its
// own replacement character; collapsing a run of bad bytes into one would
// understate how much was lost.
func decode(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			sb.WriteRune(utf8.RuneError)
		} else {
			sb.Write(b[:size])
		}
		b = b[size:]
	}
	return sb.String()
}

// Close marks the stream as ended. The latch is one-way: a closed stream
// never reopens.
func (s *Stream) Close() { s.open = false }

func (s *Stream) Open() bool { return s.open }

// Text returns the concatenation of every chunk received so far.
func (s *Stream) Text() string {
	switch len(s.chunks) {
	case 0:
		return ""
	case 1:
		return s.chunks[0]
	}
	var b strings.Builder
	for _, c := range s.chunks {
		b.WriteString(c)
	}
	return b.String()
}

// Chunks returns a copy of the chunk sequence.
func (s *Stream) Chunks() []string {
	out := make([]string, len(s.chunks))
	copy(out, s.chunks)
	return out
}
