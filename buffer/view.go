package buffer

import (
	"bytes"

	"github.com/mattn/go-runewidth"

	"github.com/tperdue321/textspan/internal/grapheme"
)

// View is an immutable half-open window [Start, End) into a Buffer's bytes,
// with 0 <= Start <= End <= buffer length.
//
// A View does not own the backing storage and makes no copy of it. It is
// valid only as long as the buffer is neither mutated nor moved; accessing a
// stale view panics. The zero View is empty and always valid.
type View struct {
	buf   *Buffer
	start int
	end   int
	gen   uint32
}

// ViewOf returns a full view over a fresh buffer owning a copy of s.
//
// The buffer is reachable only through the view, so the view can never go
// stale. Useful for scanning literals without managing a Buffer.
func ViewOf(s string) View {
	return New(s).View()
}

func (v View) raw() []byte {
	if v.buf == nil {
		return nil
	}
	if v.buf.moved {
		panic("buffer: view used after buffer was moved")
	}
	if v.gen != v.buf.gen {
		panic("buffer: view used after buffer mutation")
	}
	return v.buf.data[v.start:v.end]
}

// Len returns the view's length in bytes.
func (v View) Len() int {
	return len(v.raw())
}

// IsEmpty reports whether the view covers zero bytes.
func (v View) IsEmpty() bool {
	return v.Len() == 0
}

// Start returns the view's absolute start offset into the backing buffer.
func (v View) Start() int {
	v.raw()
	return v.start
}

// End returns the view's absolute end offset into the backing buffer.
func (v View) End() int {
	v.raw()
	return v.end
}

// String copies the viewed bytes into a string.
func (v View) String() string {
	return string(v.raw())
}

// Bytes copies the viewed bytes out, keeping the backing storage read-only.
func (v View) Bytes() []byte {
	src := v.raw()
	out := make([]byte, len(src))
	copy(out, src)
	return out
}

// ByteAt returns the byte at view-relative offset i.
func (v View) ByteAt(i int) byte {
	return v.raw()[i]
}

// Slice returns the sub-view [i, j) by view-relative byte offsets, clamped
// into the view's bounds. The sub-view shares the backing buffer.
func (v View) Slice(i, j int) View {
	n := len(v.raw())
	i = clampInt(i, 0, n)
	j = clampInt(j, i, n)
	return View{buf: v.buf, start: v.start + i, end: v.start + j, gen: v.gen}
}

// Prefix returns the sub-view of the first n bytes.
func (v View) Prefix(n int) View {
	return v.Slice(0, n)
}

// Suffix returns the sub-view from view-relative offset i to the view's end.
func (v View) Suffix(i int) View {
	return v.Slice(i, v.Len())
}

// Equal reports whether two views hold the same bytes, regardless of which
// buffer or offsets they point at.
func (v View) Equal(o View) bool {
	return bytes.Equal(v.raw(), o.raw())
}

// Graphemes returns the viewed text's grapheme clusters in visual order.
func (v View) Graphemes() []string {
	return grapheme.Split(v.String())
}

// GraphemeCount returns the number of grapheme clusters in the viewed text.
func (v View) GraphemeCount() int {
	return grapheme.Count(v.String())
}

// DisplayWidth returns the viewed text's width in terminal cells.
func (v View) DisplayWidth() int {
	return runewidth.StringWidth(v.String())
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
