package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalkASCII(t *testing.T) {
	c := New([]byte("abc"))
	c.SetBreakpoint()
	for !c.IsEmpty() {
		c.FirstByteUnchecked()
	}
	assert.True(t, c.AtBreakpoint(0) == false)
	assert.Equal(t, []byte("abc"), c.EndingSlice())
}

func TestMultiByteSequenceWidths(t *testing.T) {
	// U+00C0 (2 bytes), U+AC00 (3 bytes), U+1F600 (4 bytes)
	s := "À가\U0001F600"
	c := New([]byte(s))

	first := c.FirstByteUnchecked()
	assert.Equal(t, 2, SequenceWidth(first))
	code := c.CharNonASCIIUnchecked(first)
	assert.Equal(t, rune(0x00C0), code)

	first = c.FirstByteUnchecked()
	assert.Equal(t, 3, SequenceWidth(first))
	code = c.CharNonASCIIUnchecked(first)
	assert.Equal(t, rune(0xAC00), code)

	first = c.FirstByteUnchecked()
	assert.Equal(t, 4, SequenceWidth(first))
	code = c.CharNonASCIIUnchecked(first)
	assert.Equal(t, rune(0x1F600), code)

	assert.True(t, c.IsEmpty())
}

func TestBlockSliceExcludesTrailingSequence(t *testing.T) {
	s := "abÀ"
	c := New([]byte(s))
	c.SetBreakpoint()

	c.FirstByteUnchecked() // 'a'
	c.FirstByteUnchecked() // 'b'
	first := c.FirstByteUnchecked()
	width := SequenceWidth(first)
	c.CharNonASCIIUnchecked(first)

	assert.False(t, c.AtBreakpoint(width))
	assert.Equal(t, []byte("ab"), c.BlockSlice(width))
}

func TestAtBreakpointTrueWhenNothingSkipped(t *testing.T) {
	s := "À"
	c := New([]byte(s))
	c.SetBreakpoint()

	first := c.FirstByteUnchecked()
	width := SequenceWidth(first)
	c.CharNonASCIIUnchecked(first)

	assert.True(t, c.AtBreakpoint(width))
}
