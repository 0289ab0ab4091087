// Package reorder implements the buffer of trailing non-starters that the
// normalizer stable-sorts by canonical combining class before flushing,
// realizing the Canonical Ordering Algorithm.
package reorder

import (
	"sort"
	"unicode/utf8"
)

// capacity is the buffer's pre-reserved starting size: generous enough
// that no single code point's decomposition (the longest in the Unicode
// database is 18 code points) ever forces a reallocation. A run of non-starters typed
// directly in the input, as opposed to produced by decomposition, can
// still grow the buffer past capacity via ordinary slice growth — the
// buffer must never flush early just because it filled up, since the
// canonical ordering algorithm requires sorting the whole run between two
// starters, not an arbitrary prefix of it.
const capacity = 18

// entry is one pending non-starter code point and its combining class.
type entry struct {
	code rune
	ccc  uint8
}

// Buffer accumulates non-starters in input order and reorders them by CCC
// on Flush. It is not safe for concurrent use; callers own one Buffer per
// normalization pass.
type Buffer struct {
	entries []entry
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{entries: make([]entry, 0, capacity)}
}

// Push appends a non-starter. The buffer grows past its initial capacity
// like any other slice if the run of non-starters runs long; it is never
// flushed except by an explicit Flush call.
func (b *Buffer) Push(code rune, ccc uint8) {
	b.entries = append(b.entries, entry{code: code, ccc: ccc})
}

// Len reports the number of pending entries.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// Flush stable-sorts the pending entries by CCC, appends their UTF-8
// encoding to dst, and empties the buffer.
func (b *Buffer) Flush(dst []byte) []byte {
	if len(b.entries) == 0 {
		return dst
	}
	if len(b.entries) > 1 {
		sort.SliceStable(b.entries, func(i, j int) bool {
			return b.entries[i].ccc < b.entries[j].ccc
		})
	}
	for _, e := range b.entries {
		dst = utf8.AppendRune(dst, e.code)
	}
	b.entries = b.entries[:0]
	return dst
}
