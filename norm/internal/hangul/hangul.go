// Package hangul implements the algorithmic decomposition of precomposed
// Hangul syllables into their Leading/Vowel/(Trailing) jamo, per the
// arithmetic in Unicode's Hangul Syllable algorithm. No table lookup is
// involved: the formulas below are exact for the whole syllable block.
package hangul

const (
	SBase  = 0xAC00
	LBase  = 0x1100
	VBase  = 0x1161
	TBase  = 0x11A7
	LCount = 19
	VCount = 21
	TCount = 28
	NCount = VCount * TCount // 588
	SCount = LCount * NCount // 11172
)

// IsSyllable reports whether code is a precomposed Hangul syllable.
func IsSyllable(code rune) bool {
	return code >= SBase && code < SBase+SCount
}

// Decompose splits a Hangul syllable into its jamo. HasTrailing is false
// for the ~1/28 of syllables that have no trailing consonant, in which
// case trailing is meaningless and should not be emitted.
func Decompose(code rune) (lead, vowel, trailing rune, hasTrailing bool) {
	sIndex := code - SBase
	lIndex := sIndex / NCount
	vIndex := (sIndex % NCount) / TCount
	tIndex := sIndex % TCount

	lead = LBase + lIndex
	vowel = VBase + vIndex
	if tIndex == 0 {
		return lead, vowel, 0, false
	}
	return lead, vowel, TBase + tIndex, true
}
