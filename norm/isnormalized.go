package norm

import (
	"github.com/gpawru/decompose/norm/internal/cursor"
	"github.com/gpawru/decompose/norm/internal/table"
)

// isNormalized reports whether src is already in the form described by
// tbl, without building a second copy to compare against: a string is
// already normalized if no code point in it has a decomposition (Hangul
// syllables included) and its non-starters are already in non-decreasing
// canonical-combining-class order.
func isNormalized(tbl *table.Tables, src []byte) bool {
	cur := cursor.New(src)
	var lastCCC uint8

	for !cur.IsEmpty() {
		first := cur.FirstByteUnchecked()

		var code rune
		if first < 0x80 {
			code = rune(first)
		} else {
			code = cur.CharNonASCIIUnchecked(first)
		}

		desc := tbl.Lookup(code)
		switch table.Marker(desc) {
		case table.MarkerStarter:
			lastCCC = 0
		case table.MarkerNonstarter:
			ccc := table.DecodeNonstarterCCC(desc)
			if ccc < lastCCC {
				return false
			}
			lastCCC = ccc
		default:
			return false
		}
	}
	return true
}
