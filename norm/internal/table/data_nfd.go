package table

// NFDTables is the canonical-decomposition-only table.
//
// This is a representative excerpt of the Unicode Character Database, not
// the full repertoire: nothing in this module bakes the complete table
// (cmd/gen-norm-tables only reads and counts a UCD dump). What's here is
// enough to exercise the curated worked examples.
var NFDTables = buildNFD()

func buildNFD() *Tables {
	b := NewBuilder(continuousBlockEnd)
	registerCommonNonstarters(b)
	registerCanonicalLatin(b)
	registerHangul(b)
	return b.Build()
}
