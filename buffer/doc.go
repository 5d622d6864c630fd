// Package buffer implements an owned text buffer with non-owning views.
//
// A View is a half-open byte window [Start, End) into a Buffer. Views share
// the buffer's storage and copy nothing; in exchange they are valid only
// while the buffer is neither mutated nor moved. A stale view panics on its
// next access instead of observing torn data.
package buffer
