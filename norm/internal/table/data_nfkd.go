package table

// NFKDTables is the canonical-plus-compatibility-decomposition table. Like
// NFDTables, it is a representative excerpt (see its doc comment), not a
// full UCD bake.
var NFKDTables = buildNFKD()

// fractionSlash is U+2044, used unchanged (as a plain starter) inside the
// vulgar-fraction compatibility decompositions below.
const fractionSlash = 0x2044

func buildNFKD() *Tables {
	b := NewBuilder(continuousBlockEnd)
	registerCommonNonstarters(b)
	registerCanonicalLatin(b)
	registerHangul(b)
	registerCompatExtras(b)
	return b.Build()
}

func registerCompatExtras(b *Builder) {
	// NO-BREAK SPACE -> SPACE
	b.Singleton(0x00A0, 0x0020)

	// DIAERESIS, MACRON, ACUTE ACCENT, CEDILLA: spacing forms of a combining
	// mark, compatibility-decomposing to SPACE + the combining mark itself.
	b.Pair(0x00A8, 0x0020, 0x0308, 230)
	b.Pair(0x00AF, 0x0020, 0x0304, 230)
	b.Pair(0x00B4, 0x0020, 0x0301, 230)
	b.Pair(0x00B8, 0x0020, 0x0327, 202)

	// FEMININE/MASCULINE ORDINAL INDICATOR -> base Latin letter
	b.Singleton(0x00AA, 0x0061) // 'a'
	b.Singleton(0x00BA, 0x006F) // 'o'

	// SUPERSCRIPT TWO/THREE -> digit
	b.Singleton(0x00B2, 0x0032) // '2'
	b.Singleton(0x00B3, 0x0033) // '3'

	// MICRO SIGN -> GREEK SMALL LETTER MU
	b.Singleton(0x00B5, 0x03BC)

	// VULGAR FRACTION ONE QUARTER/HALF, THREE QUARTERS -> digit, fraction
	// slash, digit: three starters in a row (Triple supports the all-starter
	// case as readily as the mixed one).
	b.Triple(0x00BC, 0x0031, fractionSlash, 0x0034, 0, 0) // "1/4"
	b.Triple(0x00BD, 0x0031, fractionSlash, 0x0032, 0, 0) // "1/2"
	b.Triple(0x00BE, 0x0033, fractionSlash, 0x0034, 0, 0) // "3/4"

	// LATIN SMALL LIGATURE FI -> "fi"
	b.Pair(0xFB01, 0x0066, 0x0069, 0)
}
