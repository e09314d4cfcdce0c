// Package wire provides bounds-checked buffer views and fixed-width scalar
// I/O for the objwire protocol.
//
// BufferWriter and BufferReader wrap a caller-owned byte slice with a cursor
// scoped to a single encode or decode call. Every operation checks the
// remaining capacity before touching buffer contents; a failed operation
// commits nothing and leaves the cursor at the last fully written offset.
//
// Scalars travel little-endian at their exact width. There is no framing,
// no alignment padding, and no terminator at this layer.
//
// Neither view ever allocates or resizes the underlying storage.
package wire
