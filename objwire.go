package objwire

// Writer is the destination of one encode call: a bounds-checked cursor
// over a fixed-capacity byte region. Implementations never grow the
// underlying storage and never partially commit a failed write.
type Writer interface {
	// Prepare reports whether n more bytes fit without writing anything.
	Prepare(n int) error
	// WriteRaw appends p, failing atomically if it does not fit.
	WriteRaw(p []byte) error
	WriteU8(v uint8) error
	WriteU16(v uint16) error
	WriteU32(v uint32) error
	WriteU64(v uint64) error
	// Skip advances the cursor by n bytes filled with pad.
	Skip(n int, pad byte) error
	// Size returns the number of bytes committed so far.
	Size() int
	// Capacity returns the total length of the underlying region.
	Capacity() int
}

// Reader is the source of one decode call: a bounds-checked cursor over a
// fixed-length byte region. Reads never move past the region's end.
type Reader interface {
	// Ensure reports whether n more bytes remain without consuming anything.
	Ensure(n int) error
	// ReadRaw fills p, failing atomically if fewer than len(p) bytes remain.
	ReadRaw(p []byte) error
	ReadU8() (uint8, error)
	ReadU16() (uint16, error)
	ReadU32() (uint32, error)
	ReadU64() (uint64, error)
	// Skip advances the cursor by n bytes.
	Skip(n int) error
	// Size returns the number of bytes consumed so far.
	Size() int
	// Remaining returns the number of unconsumed bytes.
	Remaining() int
}
