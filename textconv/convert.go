package textconv

import "unsafe"

// Buffer sizes, terminator included.
const (
	Int32Size   = 12
	Int64Size   = 21
	Uint64Size  = 21
	PointerSize = 2*int(unsafe.Sizeof(uintptr(0))) + 3
)

const hexDigits = "0123456789abcdef"

// FormatInt32 writes v in decimal into buf and returns the text.
//
// The magnitude is taken in unsigned arithmetic, so math.MinInt32 is
// rendered correctly.
func FormatInt32(buf []byte, v int32) []byte {
	s := NewSpan(buf)
	s.PutInt32(v)
	return s.Bytes()
}

// FormatInt64 writes v in decimal into buf and returns the text.
func FormatInt64(buf []byte, v int64) []byte {
	s := NewSpan(buf)
	s.PutInt64(v)
	return s.Bytes()
}

// FormatUint64 writes v in decimal into buf and returns the text.
func FormatUint64(buf []byte, v uint64) []byte {
	s := NewSpan(buf)
	s.PutUint64(v)
	return s.Bytes()
}

// FormatPointer writes p as 0x-prefixed lowercase hex into buf and returns
// the text. Zero renders as "0x0".
func FormatPointer(buf []byte, p uintptr) []byte {
	s := NewSpan(buf)
	s.PutPointer(p)
	return s.Bytes()
}

// PutInt32 prepends the decimal text of v.
func (s *Span) PutInt32(v int32) {
	mag := uint32(v)
	if v < 0 {
		mag = -mag
	}
	s.putDecimal(uint64(mag), v < 0)
}

// PutInt64 prepends the decimal text of v.
func (s *Span) PutInt64(v int64) {
	mag := uint64(v)
	if v < 0 {
		mag = -mag
	}
	s.putDecimal(mag, v < 0)
}

// PutUint64 prepends the decimal text of v.
func (s *Span) PutUint64(v uint64) {
	s.putDecimal(v, false)
}

// PutPointer prepends "0x" followed by the hex digits of p.
// Only shifts and masks are used.
func (s *Span) PutPointer(p uintptr) {
	if p == 0 && !s.Prepend('0') {
		return
	}
	for ; p != 0; p >>= 4 {
		if !s.Prepend(hexDigits[p&0xf]) {
			return
		}
	}
	if s.Prepend('x') {
		s.Prepend('0')
	}
}

// putDecimal is the single digit loop behind every decimal converter.
func (s *Span) putDecimal(mag uint64, neg bool) {
	if mag == 0 && !s.Prepend('0') {
		return
	}
	for ; mag != 0; mag /= 10 {
		if !s.Prepend(byte('0' + mag%10)) {
			return
		}
	}
	if neg {
		s.Prepend('-')
	}
}
