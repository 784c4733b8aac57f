package textconv

// Span is a fixed-capacity byte buffer filled from the end towards the
// start. The cursor only moves left and never past index 0.
//
// The final byte of the underlying buffer holds the NUL terminator and is
// not part of the text.
type Span struct {
	buf []byte
	pos int // first byte of text
	end int // index of the terminator
}

// NewSpan wraps buf. A zero-length buf yields a span that accepts nothing.
func NewSpan(buf []byte) Span {
	if len(buf) == 0 {
		return Span{}
	}
	end := len(buf) - 1
	buf[end] = 0
	return Span{buf: buf, pos: end, end: end}
}

// Prepend stores c in front of the current text.
// It reports false, storing nothing, once the span is full.
func (s *Span) Prepend(c byte) bool {
	if s.pos == 0 {
		return false
	}
	s.pos--
	s.buf[s.pos] = c
	return true
}

// Bytes returns the text written so far, excluding the terminator.
// The result aliases the wrapped buffer.
func (s *Span) Bytes() []byte {
	return s.buf[s.pos:s.end]
}

// Len returns the number of text bytes written.
func (s *Span) Len() int {
	return s.end - s.pos
}

// Cap returns the number of text bytes the span can hold.
func (s *Span) Cap() int {
	return s.end
}

// Full reports whether another byte can be prepended.
func (s *Span) Full() bool {
	return s.pos == 0
}
