// Package cursor implements the byte-level UTF-8 walk used by the
// normalizer's hot path: a position plus a "breakpoint" marking the start
// of the last still-unwritten, already-normalized stretch of input. It
// never decodes more than it has to and never allocates.
package cursor

// Cursor walks a well-formed UTF-8 byte slice. Callers are responsible for
// only calling the *Unchecked methods when their preconditions hold; the
// cursor trusts its input the way the rest of the normalizer does.
type Cursor struct {
	data       []byte
	position   int
	breakpoint int
}

// New returns a cursor positioned at the start of data.
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// IsEmpty reports whether the cursor is at or past the end of input.
func (c *Cursor) IsEmpty() bool {
	return c.position >= len(c.data)
}

// FirstByteUnchecked reads the byte at the current position and advances
// by one. The caller guarantees the cursor is not empty.
func (c *Cursor) FirstByteUnchecked() byte {
	b := c.data[c.position]
	c.position++
	return b
}

// SequenceWidth returns the number of bytes in the UTF-8 sequence that
// starts with the given leading byte.
func SequenceWidth(first byte) int {
	switch {
	case first < 0xE0:
		return 2
	case first < 0xF0:
		return 3
	default:
		return 4
	}
}

// CharNonASCIIUnchecked decodes the scalar value of a multi-byte sequence
// whose leading byte (already consumed via FirstByteUnchecked) is at least
// 0xC2, consuming its remaining continuation bytes.
func (c *Cursor) CharNonASCIIUnchecked(first byte) rune {
	switch SequenceWidth(first) {
	case 2:
		b1 := c.data[c.position]
		c.position++
		return rune(first&0x1F)<<6 | rune(b1&0x3F)
	case 3:
		b1, b2 := c.data[c.position], c.data[c.position+1]
		c.position += 2
		return rune(first&0x0F)<<12 | rune(b1&0x3F)<<6 | rune(b2&0x3F)
	default:
		b1, b2, b3 := c.data[c.position], c.data[c.position+1], c.data[c.position+2]
		c.position += 3
		return rune(first&0x07)<<18 | rune(b1&0x3F)<<12 | rune(b2&0x3F)<<6 | rune(b3&0x3F)
	}
}

// SetBreakpoint records the current position as the start of the next
// not-yet-emitted, normalized-so-far stretch.
func (c *Cursor) SetBreakpoint() {
	c.breakpoint = c.position
}

// AtBreakpoint reports whether the sequence that just ended at the
// current position (width bytes long) started exactly at the breakpoint,
// i.e. nothing has been skipped since the breakpoint was set.
func (c *Cursor) AtBreakpoint(width int) bool {
	return c.position-width == c.breakpoint
}

// BlockSlice returns the bytes from the breakpoint up to (but excluding)
// the start of the sequence that just ended at the current position.
func (c *Cursor) BlockSlice(width int) []byte {
	return c.data[c.breakpoint : c.position-width]
}

// EndingSlice returns the bytes from the breakpoint to the end of input.
func (c *Cursor) EndingSlice() []byte {
	return c.data[c.breakpoint:]
}
