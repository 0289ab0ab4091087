package table

import "fmt"

// Builder assembles a Tables value from a sparse set of per-code-point
// decomposition assignments, the way the offline UCD baker does: every
// code point that carries no explicit assignment is a plain starter with
// no decomposition (descriptor 0).
//
// The built-in NFD/NFKD tables (data_nfd.go, data_nfkd.go) are assembled
// with it from the curated assignments in this package. The
// cmd/gen-norm-tables command does not use it.
type Builder struct {
	continuousEnd rune
	sparse        map[rune]uint64
	expansions    []uint32
}

// NewBuilder starts a Builder whose continuous flat region covers
// [0, continuousEnd]. continuousEnd+1 must be a multiple of 128 so that
// the block-indexed region beyond it starts on a block boundary; Build
// panics otherwise.
func NewBuilder(continuousEnd rune) *Builder {
	return &Builder{
		continuousEnd: continuousEnd,
		sparse:        make(map[rune]uint64),
	}
}

func (b *Builder) set(code rune, v uint64) {
	if _, exists := b.sparse[code]; exists {
		panic(fmt.Sprintf("table: duplicate assignment for U+%04X", code))
	}
	b.sparse[code] = v
}

// Nonstarter records a non-starter with no further decomposition.
func (b *Builder) Nonstarter(code rune, ccc uint8) {
	b.set(code, descNonstarter(ccc))
}

// Singleton records a starter whose decomposition is a single different starter.
func (b *Builder) Singleton(code, c1 rune) {
	b.set(code, descSingleton(c1))
}

// Pair records a starter decomposing into a starter (c1) and one more code
// point (c2, with combining class c2ccc; 0 if c2 is itself a starter).
func (b *Builder) Pair(code, c1, c2 rune, c2ccc uint8) {
	b.set(code, descPair(c1, c2, c2ccc))
}

// Triple records a starter decomposing into exactly three code points, all
// of which fit in 16 bits. c1 is always a starter; c2 and c3 carry their
// own combining classes (0 for starters).
func (b *Builder) Triple(code, c1, c2, c3 rune, c2ccc, c3ccc uint8) {
	if c1 > 0xFFFF || c2 > 0xFFFF || c3 > 0xFFFF {
		panic(fmt.Sprintf("table: triple decomposition of U+%04X exceeds 16 bits", code))
	}
	b.set(code, descTriple(c1, c2, c3, c2ccc, c3ccc))
}

// ExpansionPart is one element of a decomposition recorded via Expansion.
type ExpansionPart struct {
	Code rune
	CCC  uint8
}

// Expansion records a decomposition of any length (the long-decomposition,
// 18-bit, or non-starter-with-decomposition cases all end up here; the
// builder doesn't need to distinguish them, since the expansions side
// table doesn't care why a decomposition didn't fit inline).
func (b *Builder) Expansion(code rune, parts ...ExpansionPart) {
	if len(parts) == 0 {
		panic(fmt.Sprintf("table: empty expansion for U+%04X", code))
	}
	if len(parts) > 0xFF {
		panic(fmt.Sprintf("table: expansion of U+%04X has too many parts", code))
	}
	if len(b.expansions) > 0xFFFF {
		panic("table: expansions side table overflowed 16-bit index")
	}

	index := uint16(len(b.expansions))
	for _, p := range parts {
		b.expansions = append(b.expansions, packCodepoint(p.Code, p.CCC))
	}
	b.set(code, descExpansion(index, uint8(len(parts))))
}

// HangulRange marks every code point in [lo, hi] as an algorithmically
// decomposed Hangul syllable. The descriptor carries no payload; the
// driver recomputes L/V/T from the code point itself.
func (b *Builder) HangulRange(lo, hi rune) {
	for c := lo; c <= hi; c++ {
		b.set(c, MarkerHangul)
	}
}

// Build compacts the sparse assignments into a Tables value: the
// continuous region is stored flat, and the sparse region beyond it is
// split into 128-entry blocks that are deduplicated by content, so that
// (for example) the thousands of identical all-Hangul blocks collapse
// into a single physical block referenced many times through Index.
func (b *Builder) Build() *Tables {
	if (int(b.continuousEnd)+1)%128 != 0 {
		panic("table: continuousEnd+1 must be a multiple of 128")
	}

	data := make([]uint64, b.continuousEnd+1)
	for c := rune(0); c <= b.continuousEnd; c++ {
		if v, ok := b.sparse[c]; ok {
			data[c] = v
		}
	}

	startBlock := (int(b.continuousEnd) + 1) >> 7
	index := make([]uint8, LastDecomposingCodepointBlock+1)

	type block = [128]uint64
	var blocks []block
	blockIDs := make(map[block]int)
	nextID := startBlock

	for blk := startBlock; blk <= LastDecomposingCodepointBlock; blk++ {
		base := rune(blk << 7)

		var buf block
		for i := 0; i < 128; i++ {
			if v, ok := b.sparse[base+rune(i)]; ok {
				buf[i] = v
			}
		}

		id, exists := blockIDs[buf]
		if !exists {
			id = nextID
			nextID++
			if id > 0xFF {
				panic("table: too many distinct non-continuous blocks (index is a byte)")
			}
			blockIDs[buf] = id
			blocks = append(blocks, buf)
		}

		index[blk] = uint8(id)
	}

	out := make([]uint64, 0, len(data)+128*len(blocks))
	out = append(out, data...)
	for _, blk := range blocks {
		out = append(out, blk[:]...)
	}

	return &Tables{
		Data:               out,
		Index:              index,
		Expansions:         append([]uint32(nil), b.expansions...),
		ContinuousBlockEnd: uint32(b.continuousEnd),
	}
}
