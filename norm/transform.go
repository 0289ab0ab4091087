package norm

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/gpawru/decompose/norm/internal/reorder"
	"github.com/gpawru/decompose/norm/internal/table"
)

// formTransformer adapts the whole-buffer decomposition driver to
// transform.Transformer's incremental contract. It carries a reordering
// buffer across Transform calls, the same way the buffer carries pending
// non-starters across iterations of the one-shot driver.
type formTransformer struct {
	tbl *table.Tables
	buf *reorder.Buffer
}

func (t *formTransformer) Reset() {
	t.buf = nil
}

// maxExpansion bounds how many bytes a single code point's decomposition
// (plus whatever was already pending in the reordering buffer) can ever
// need, so Transform can check for room up front instead of partway
// through emitting one code point's output. 18 code points is the longest
// any single compatibility decomposition in the Unicode database reaches
// (the same bound the reorder buffer's capacity is sized against); a Pair,
// Triple or Hangul decomposition is far shorter, so this bound covers
// every shape handleDescriptor can emit for one code point.
const maxExpansion = 18 * utf8.UTFMax

func (t *formTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if t.buf == nil {
		t.buf = reorder.New()
	}

	for nSrc < len(src) {
		first := src[nSrc]

		var code rune
		var width int
		if first < 0x80 {
			code, width = rune(first), 1
		} else {
			code, width = utf8.DecodeRune(src[nSrc:])
			if code == utf8.RuneError && width <= 1 {
				if !atEOF {
					return nDst, nSrc, transform.ErrShortSrc
				}
				return nDst, nSrc, fmt.Errorf("norm: invalid UTF-8 at byte %d", nSrc)
			}
			if nSrc+width > len(src) {
				if !atEOF {
					return nDst, nSrc, transform.ErrShortSrc
				}
				return nDst, nSrc, fmt.Errorf("norm: truncated UTF-8 sequence at byte %d", nSrc)
			}
		}

		if cap(dst)-nDst < t.buf.Len()*utf8.UTFMax+maxExpansion {
			return nDst, nSrc, transform.ErrShortDst
		}

		desc := t.tbl.Lookup(code)
		if desc == 0 {
			out := t.buf.Flush(dst[:nDst])
			out = utf8.AppendRune(out, code)
			nDst = len(out)
		} else {
			out := handleDescriptor(dst[:nDst], t.buf, t.tbl, code, desc)
			nDst = len(out)
		}
		nSrc += width
	}

	if atEOF {
		out := t.buf.Flush(dst[:nDst])
		nDst = len(out)
	}
	return nDst, nSrc, nil
}
