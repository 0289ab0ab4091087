package table

// LastDecomposingCodepointBlock is the 128-entry block ID of
// U+2FA1D, the highest code point with any decomposition in either table
// variant. Every block beyond it is known to carry no decomposition and
// can be short-circuited without consulting the index.
const LastDecomposingCodepointBlock = 0x5F4

// LastDecomposingCodepoint is U+2FA1D itself.
const LastDecomposingCodepoint = 0x2FA1D

// Tables is the baked, read-only data behind one normalizer variant (NFD
// or NFKD). It is immutable once built and safe for concurrent lookups.
type Tables struct {
	// Data holds the continuous flat prefix [0, ContinuousBlockEnd] followed
	// by the unique 128-entry blocks referenced by Index.
	Data []uint64
	// Index maps a 128-code-point block number (code>>7) to the block's
	// position (in units of 128 entries) within Data. Entries for blocks at
	// or below ContinuousBlockEnd are unused but present.
	Index []uint8
	// Expansions is the flat side table of packed code points referenced by
	// MarkerExpansion descriptors.
	Expansions []uint32
	// ContinuousBlockEnd is the last code point stored flat in Data.
	ContinuousBlockEnd uint32
}

// Lookup returns the 64-bit decomposition descriptor for a code point. It
// never panics for code in [0, 0x10FFFF] and runs in constant time.
func (t *Tables) Lookup(code rune) uint64 {
	c := uint32(code)

	if c <= t.ContinuousBlockEnd {
		return t.Data[c]
	}

	block := c >> 7
	if block > LastDecomposingCodepointBlock {
		return 0
	}

	blockID := uint32(t.Index[block])
	return t.Data[(blockID<<7)|(c&0x7F)]
}

// Expansion returns the slice of packed code points referenced by a
// MarkerExpansion descriptor's (index, count) pair.
func (t *Tables) Expansion(index uint16, count uint8) []uint32 {
	i := int(index)
	return t.Expansions[i : i+int(count)]
}
