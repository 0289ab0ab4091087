package norm

import (
	"unicode/utf8"

	"github.com/gpawru/decompose/norm/internal/cursor"
	"github.com/gpawru/decompose/norm/internal/hangul"
	"github.com/gpawru/decompose/norm/internal/reorder"
	"github.com/gpawru/decompose/norm/internal/table"
)

// decompose runs a full decomposing normalization pass over src, in one
// shot. Runs of code points with no decomposition are recognised by the
// cursor and copied through verbatim as a single slice operation; only
// code points that actually decompose, and the reordering they trigger,
// cost anything per code point.
func decompose(tbl *table.Tables, src []byte) []byte {
	dst := make([]byte, 0, len(src))
	cur := cursor.New(src)
	buf := reorder.New()

	for !cur.IsEmpty() {
		first := cur.FirstByteUnchecked()

		var code rune
		var width int
		if first < 0x80 {
			code, width = rune(first), 1
		} else {
			width = cursor.SequenceWidth(first)
			code = cur.CharNonASCIIUnchecked(first)
		}

		desc := tbl.Lookup(code)
		plainStarter := desc == 0 && !hangul.IsSyllable(code)

		if plainStarter && buf.Len() == 0 {
			// Fast path: nothing to do yet, let the verbatim stretch grow.
			continue
		}

		if !cur.AtBreakpoint(width) {
			dst = append(dst, cur.BlockSlice(width)...)
		}

		if plainStarter {
			dst = buf.Flush(dst)
			dst = utf8.AppendRune(dst, code)
		} else {
			dst = handleDescriptor(dst, buf, tbl, code, desc)
		}
		cur.SetBreakpoint()
	}

	if !cur.AtBreakpoint(0) {
		dst = append(dst, cur.EndingSlice()...)
	}
	return buf.Flush(dst)
}

// handleDescriptor appends the decomposition of one non-trivial code point
// (anything that isn't a plain, already-normalized starter) to dst,
// flushing or feeding the reordering buffer as required by the canonical
// ordering algorithm: every starter ends the run that precedes it, and
// every non-starter joins whatever run is open.
func handleDescriptor(dst []byte, buf *reorder.Buffer, tbl *table.Tables, code rune, desc uint64) []byte {
	switch table.Marker(desc) {
	case table.MarkerHangul:
		dst = buf.Flush(dst)
		lead, vowel, trailing, hasTrailing := hangul.Decompose(code)
		dst = utf8.AppendRune(dst, lead)
		dst = utf8.AppendRune(dst, vowel)
		if hasTrailing {
			dst = utf8.AppendRune(dst, trailing)
		}
		return dst

	case table.MarkerNonstarter:
		ccc := table.DecodeNonstarterCCC(desc)
		buf.Push(code, ccc)
		return dst

	case table.MarkerSingleton:
		dst = buf.Flush(dst)
		dst = utf8.AppendRune(dst, table.DecodeSingleton(desc))
		return dst

	case table.MarkerPair:
		c1, c2, c2ccc := table.DecodePair(desc)
		dst = buf.Flush(dst)
		dst = utf8.AppendRune(dst, c1)
		dst = emitTailCodepoint(dst, buf, c2, c2ccc)
		return dst

	case table.MarkerExpansion:
		// Every element, including the first, goes through emitTailCodepoint:
		// a starter flushes and is written directly, a non-starter joins the
		// buffer. Unlike Pair/Triple/Hangul there is no unconditional
		// up-front flush here — an expansion can be entirely non-starters,
		// in which case it must extend whatever run is already open, not
		// end it.
		index, count := table.DecodeExpansion(desc)
		for _, packed := range tbl.Expansion(index, count) {
			c, ccc := table.UnpackCodepoint(packed)
			dst = emitTailCodepoint(dst, buf, c, ccc)
		}
		return dst

	default: // triple: the only shape left once every named marker is ruled out
		c1, c2, c3, c2ccc, c3ccc := table.DecodeTriple(desc)
		dst = buf.Flush(dst)
		dst = utf8.AppendRune(dst, c1)
		dst = emitTailCodepoint(dst, buf, c2, c2ccc)
		dst = emitTailCodepoint(dst, buf, c3, c3ccc)
		return dst
	}
}

// emitTailCodepoint handles one non-leading element of a multi-code-point
// decomposition: a starter (ccc 0) ends the run and is written directly,
// while a non-starter joins the reordering buffer.
func emitTailCodepoint(dst []byte, buf *reorder.Buffer, code rune, ccc uint8) []byte {
	if ccc == 0 {
		dst = buf.Flush(dst)
		return utf8.AppendRune(dst, code)
	}
	buf.Push(code, ccc)
	return dst
}
