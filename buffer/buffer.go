package buffer

// Buffer is the exclusive owner of a contiguous byte sequence.
//
// Every mutation bumps an internal generation counter; views are stamped with
// the generation they were taken at and refuse to read across a bump.
type Buffer struct {
	data  []byte
	gen   uint32
	moved bool
}

// New returns a Buffer owning a copy of text.
func New(text string) *Buffer {
	return &Buffer{data: []byte(text)}
}

func (b *Buffer) use() {
	if b.moved {
		panic("buffer: use of moved buffer")
	}
}

// Len returns the byte length of the buffered text.
func (b *Buffer) Len() int {
	b.use()
	return len(b.data)
}

// String copies the buffered text out.
func (b *Buffer) String() string {
	b.use()
	return string(b.data)
}

// Append appends s to the buffered text in place.
// Outstanding views become stale.
func (b *Buffer) Append(s string) {
	b.use()
	if s == "" {
		return
	}
	b.data = append(b.data, s...)
	b.gen++
}

// Clear empties the buffered text. Outstanding views become stale.
func (b *Buffer) Clear() {
	b.use()
	if len(b.data) == 0 {
		return
	}
	b.data = b.data[:0]
	b.gen++
}

// Clone returns a deep copy. The clone and the source own separate storage
// and stay independently usable.
func (b *Buffer) Clone() *Buffer {
	b.use()
	return &Buffer{data: append([]byte(nil), b.data...)}
}

// Take transfers ownership of the buffered bytes to a fresh Buffer and
// invalidates the source: any later use of the moved-from Buffer panics,
// as does any view taken from it.
func (b *Buffer) Take() *Buffer {
	b.use()
	next := &Buffer{data: b.data}
	b.data = nil
	b.moved = true
	b.gen++
	return next
}

// View returns a read-only view over the full extent of the buffered text.
func (b *Buffer) View() View {
	b.use()
	return View{buf: b, start: 0, end: len(b.data), gen: b.gen}
}
