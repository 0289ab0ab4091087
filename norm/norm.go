// Package norm implements Unicode decomposing normalization (NFD and
// NFKD), as described by [Unicode Normalization Forms]: turning a string
// into its canonical or compatibility decomposition, then applying the
// canonical ordering algorithm to its combining marks.
//
// This package only decomposes. It does not recompose (there is no NFC or
// NFKC form here): see the package's Non-goals in its design notes for why.
//
// [Unicode Normalization Forms]: https://unicode.org/reports/tr15/
package norm

import (
	"golang.org/x/text/transform"

	"github.com/gpawru/decompose/norm/internal/table"
)

// Form selects which decomposition a Transformer, String or Bytes call
// performs.
type Form int

const (
	// NFD is canonical decomposition: recursively apply each code point's
	// canonical decomposition mapping, then canonically order the result.
	NFD Form = iota
	// NFKD is compatibility decomposition: as NFD, but also applying
	// compatibility decomposition mappings (which may lose formatting
	// distinctions NFD preserves, such as ligatures or superscripts).
	NFKD
)

func (f Form) tables() *table.Tables {
	if f == NFKD {
		return table.NFKDTables
	}
	return table.NFDTables
}

// String returns the Form-normalized form of s.
func (f Form) String(s string) string {
	return string(f.Bytes([]byte(s)))
}

// Bytes returns the Form-normalized form of b. The returned slice may
// share no memory with b.
func (f Form) Bytes(b []byte) []byte {
	return decompose(f.tables(), b)
}

// Transformer returns a golang.org/x/text/transform.Transformer that
// applies this Form across a stream. A Transformer is stateful (it tracks
// a pending reordering buffer between calls): don't share one between
// unrelated streams without calling Reset first.
func (f Form) Transformer() transform.Transformer {
	return &formTransformer{tbl: f.tables()}
}

// IsNormalized reports whether s is already in Form f, without allocating
// a second copy to compare against.
func (f Form) IsNormalized(s string) bool {
	return isNormalized(f.tables(), []byte(s))
}
