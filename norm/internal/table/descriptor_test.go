package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptorRoundTrips(t *testing.T) {
	t.Run("nonstarter", func(t *testing.T) {
		v := descNonstarter(220)
		assert.Equal(t, uint8(MarkerNonstarter), Marker(v))
		assert.Equal(t, uint8(220), DecodeNonstarterCCC(v))
		assert.False(t, IsTriple(v))
	})

	t.Run("singleton", func(t *testing.T) {
		v := descSingleton(0x00C5)
		assert.Equal(t, uint8(MarkerSingleton), Marker(v))
		assert.Equal(t, rune(0x00C5), DecodeSingleton(v))
	})

	t.Run("pair with starter tail", func(t *testing.T) {
		v := descPair(0x0066, 0x0069, 0)
		c1, c2, ccc := DecodePair(v)
		assert.Equal(t, rune(0x0066), c1)
		assert.Equal(t, rune(0x0069), c2)
		assert.Equal(t, uint8(0), ccc)
	})

	t.Run("pair with non-starter tail", func(t *testing.T) {
		v := descPair(0x0041, 0x0300, 230)
		c1, c2, ccc := DecodePair(v)
		assert.Equal(t, rune(0x0041), c1)
		assert.Equal(t, rune(0x0300), c2)
		assert.Equal(t, uint8(230), ccc)
	})

	t.Run("expansion", func(t *testing.T) {
		v := descExpansion(513, 7)
		index, count := DecodeExpansion(v)
		assert.Equal(t, uint16(513), index)
		assert.Equal(t, uint8(7), count)
	})

	t.Run("triple", func(t *testing.T) {
		v := descTriple(0x0043, 0x0327, 0x0301, 202, 230)
		c1, c2, c3, c2ccc, c3ccc := DecodeTriple(v)
		assert.Equal(t, rune(0x0043), c1)
		assert.Equal(t, rune(0x0327), c2)
		assert.Equal(t, rune(0x0301), c3)
		assert.Equal(t, uint8(202), c2ccc)
		assert.Equal(t, uint8(230), c3ccc)
		assert.True(t, IsTriple(v))
	})

	t.Run("starter is zero and not a triple", func(t *testing.T) {
		assert.False(t, IsTriple(0))
		assert.Equal(t, uint8(MarkerStarter), Marker(0))
	})
}

func TestPackedCodepointRoundTrip(t *testing.T) {
	p := packCodepoint(0x1E94A, 7)
	code, ccc := UnpackCodepoint(p)
	assert.Equal(t, rune(0x1E94A), code)
	assert.Equal(t, uint8(7), ccc)
}
