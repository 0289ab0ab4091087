package table

// continuousBlockEnd is shared by both built-in table variants: it covers
// ASCII, Latin-1 Supplement and Latin Extended-A, which is
// where the curated worked examples (U+00C0, U+00C5, U+0178, ...) live.
// 0x180 is block-aligned (3 * 128), as Build requires.
const continuousBlockEnd = 0x17F

// registerCommonNonstarters adds the combining marks exercised by both the
// canonical and compatibility tables: plain non-starters with no further
// decomposition of their own.
func registerCommonNonstarters(b *Builder) {
	// Combining Diacritical Marks (above), canonical combining class 230.
	for _, code := range []rune{
		0x0300, // grave accent
		0x0301, // acute accent
		0x0302, // circumflex accent
		0x0303, // tilde
		0x0304, // macron
		0x0306, // breve
		0x0307, // dot above
		0x0308, // diaeresis
		0x030A, // ring above
		0x030B, // double acute accent
		0x030C, // caron
	} {
		b.Nonstarter(code, 230)
	}

	// Below-the-base marks.
	b.Nonstarter(0x0323, 220) // combining dot below
	b.Nonstarter(0x0325, 220) // combining ring below
	b.Nonstarter(0x0330, 220) // combining tilde below
	b.Nonstarter(0x0331, 220) // combining macron below

	// Below, attached.
	b.Nonstarter(0x0327, 202) // combining cedilla
	b.Nonstarter(0x0328, 202) // combining ogonek

	// Combining Tilde Overlay: canonical combining class 1 (Overlay).
	b.Nonstarter(0x0334, 1)
}

// latinPair is one Latin-1/Extended-A accented letter whose canonical
// decomposition is base letter + one combining mark.
type latinPair struct {
	code rune
	base rune
	mark rune
	ccc  uint8
}

var latinCanonicalPairs = []latinPair{
	{0x00C0, 0x0041, 0x0300, 230}, // A with grave
	{0x00C1, 0x0041, 0x0301, 230}, // A with acute
	{0x00C2, 0x0041, 0x0302, 230}, // A with circumflex
	{0x00C3, 0x0041, 0x0303, 230}, // A with tilde
	{0x00C4, 0x0041, 0x0308, 230}, // A with diaeresis
	{0x00C5, 0x0041, 0x030A, 230}, // A with ring above
	{0x00C7, 0x0043, 0x0327, 202}, // C with cedilla
	{0x00C8, 0x0045, 0x0300, 230}, // E with grave
	{0x00C9, 0x0045, 0x0301, 230}, // E with acute
	{0x00CA, 0x0045, 0x0302, 230}, // E with circumflex
	{0x00CB, 0x0045, 0x0308, 230}, // E with diaeresis
	{0x00CC, 0x0049, 0x0300, 230}, // I with grave
	{0x00CD, 0x0049, 0x0301, 230}, // I with acute
	{0x00CE, 0x0049, 0x0302, 230}, // I with circumflex
	{0x00CF, 0x0049, 0x0308, 230}, // I with diaeresis
	{0x00D1, 0x004E, 0x0303, 230}, // N with tilde
	{0x00D2, 0x004F, 0x0300, 230}, // O with grave
	{0x00D3, 0x004F, 0x0301, 230}, // O with acute
	{0x00D4, 0x004F, 0x0302, 230}, // O with circumflex
	{0x00D5, 0x004F, 0x0303, 230}, // O with tilde
	{0x00D6, 0x004F, 0x0308, 230}, // O with diaeresis
	{0x00D9, 0x0055, 0x0300, 230}, // U with grave
	{0x00DA, 0x0055, 0x0301, 230}, // U with acute
	{0x00DB, 0x0055, 0x0302, 230}, // U with circumflex
	{0x00DC, 0x0055, 0x0308, 230}, // U with diaeresis
	{0x00DD, 0x0059, 0x0301, 230}, // Y with acute
	{0x00E0, 0x0061, 0x0300, 230}, // a with grave
	{0x00E1, 0x0061, 0x0301, 230}, // a with acute
	{0x00E2, 0x0061, 0x0302, 230}, // a with circumflex
	{0x00E3, 0x0061, 0x0303, 230}, // a with tilde
	{0x00E4, 0x0061, 0x0308, 230}, // a with diaeresis
	{0x00E5, 0x0061, 0x030A, 230}, // a with ring above
	{0x00E7, 0x0063, 0x0327, 202}, // c with cedilla
	{0x00E8, 0x0065, 0x0300, 230}, // e with grave
	{0x00E9, 0x0065, 0x0301, 230}, // e with acute
	{0x00EA, 0x0065, 0x0302, 230}, // e with circumflex
	{0x00EB, 0x0065, 0x0308, 230}, // e with diaeresis
	{0x00EC, 0x0069, 0x0300, 230}, // i with grave
	{0x00ED, 0x0069, 0x0301, 230}, // i with acute
	{0x00EE, 0x0069, 0x0302, 230}, // i with circumflex
	{0x00EF, 0x0069, 0x0308, 230}, // i with diaeresis
	{0x00F1, 0x006E, 0x0303, 230}, // n with tilde
	{0x00F2, 0x006F, 0x0300, 230}, // o with grave
	{0x00F3, 0x006F, 0x0301, 230}, // o with acute
	{0x00F4, 0x006F, 0x0302, 230}, // o with circumflex
	{0x00F5, 0x006F, 0x0303, 230}, // o with tilde
	{0x00F6, 0x006F, 0x0308, 230}, // o with diaeresis
	{0x00F9, 0x0075, 0x0300, 230}, // u with grave
	{0x00FA, 0x0075, 0x0301, 230}, // u with acute
	{0x00FB, 0x0075, 0x0302, 230}, // u with circumflex
	{0x00FC, 0x0075, 0x0308, 230}, // u with diaeresis
	{0x00FD, 0x0079, 0x0301, 230}, // y with acute
	{0x00FF, 0x0079, 0x0308, 230}, // y with diaeresis
	{0x0178, 0x0059, 0x0308, 230}, // Y with diaeresis (Latin Extended-A)
	// ANGSTROM SIGN: its mapping to U+00C5 is followed through to A + ring above.
	{0x212B, 0x0041, 0x030A, 230},
}

// latinCanonicalTriples: starter + two more code points, all 16-bit.
type latinTriple struct {
	code                   rune
	c1, c2, c3             rune
	c2ccc, c3ccc           uint8
}

var latinCanonicalTriples = []latinTriple{
	// LATIN CAPITAL/SMALL LETTER C WITH CEDILLA AND ACUTE
	{0x1E08, 0x0043, 0x0327, 0x0301, 202, 230},
	{0x1E09, 0x0063, 0x0327, 0x0301, 202, 230},
}

// canonicalSingletons: starter decomposing to a single different starter.
var canonicalSingletons = []struct{ code, target rune }{
	{0x2126, 0x03A9}, // OHM SIGN -> GREEK CAPITAL LETTER OMEGA
}

// registerCanonicalLatin adds every canonical decomposition shared by both
// the NFD and NFKD tables (compatibility decomposition is canonical
// decomposition plus more, never less).
func registerCanonicalLatin(b *Builder) {
	for _, p := range latinCanonicalPairs {
		b.Pair(p.code, p.base, p.mark, p.ccc)
	}
	for _, t := range latinCanonicalTriples {
		b.Triple(t.code, t.c1, t.c2, t.c3, t.c2ccc, t.c3ccc)
	}
	for _, s := range canonicalSingletons {
		b.Singleton(s.code, s.target)
	}
}

const (
	hangulSyllableBase = 0xAC00
	hangulSyllableLast = 0xD7A3
)

func registerHangul(b *Builder) {
	b.HangulRange(hangulSyllableBase, hangulSyllableLast)
}
