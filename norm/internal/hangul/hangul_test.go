package hangul

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecomposeWithTrailing(t *testing.T) {
	// U+AC00 GA = LEADING G + VOWEL A, no trailing.
	lead, vowel, trailing, hasTrailing := Decompose(0xAC00)
	assert.Equal(t, rune(0x1100), lead)
	assert.Equal(t, rune(0x1161), vowel)
	assert.False(t, hasTrailing)
	assert.Equal(t, rune(0), trailing)

	// U+AC01 GAG = LEADING G + VOWEL A + TRAILING G.
	lead, vowel, trailing, hasTrailing = Decompose(0xAC01)
	assert.Equal(t, rune(0x1100), lead)
	assert.Equal(t, rune(0x1161), vowel)
	assert.True(t, hasTrailing)
	assert.Equal(t, rune(0x11A8), trailing)
}

func TestDecomposeGeul(t *testing.T) {
	// U+AE00 "geul", a worked example.
	lead, vowel, trailing, hasTrailing := Decompose(0xAE00)
	assert.True(t, hasTrailing)
	assert.Equal(t, rune(0x1100), lead)
	assert.Equal(t, rune(0x1173), vowel)
	assert.Equal(t, rune(0x11AF), trailing)
}

func TestIsSyllableBounds(t *testing.T) {
	assert.False(t, IsSyllable(0xABFF))
	assert.True(t, IsSyllable(0xAC00))
	assert.True(t, IsSyllable(0xD7A3))
	assert.False(t, IsSyllable(0xD7A4))
}
