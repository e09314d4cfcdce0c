package wire

import (
	"encoding/binary"

	"github.com/objwire/objwire/errors"
)

// BufferReader is a bounds-checked read cursor over a caller-owned byte
// slice. Reads never move past the end of the wrapped region.
type BufferReader struct {
	buf   []byte
	index int
}

// NewBufferReader wraps buf for one decode call.
func NewBufferReader(buf []byte) *BufferReader {
	return &BufferReader{buf: buf}
}

// Ensure reports whether n more bytes remain. It consumes nothing.
func (r *BufferReader) Ensure(n int) error {
	if n < 0 {
		return errors.InvalidInput(errors.PhaseDecode, "negative ensure length")
	}
	if n > len(r.buf)-r.index {
		return errors.OutOfSpace(errors.PhaseDecode, n, len(r.buf)-r.index)
	}
	return nil
}

// ReadRaw fills p in full, or fails without consuming any byte.
func (r *BufferReader) ReadRaw(p []byte) error {
	if len(p) > len(r.buf)-r.index {
		return errors.OutOfSpace(errors.PhaseDecode, len(p), len(r.buf)-r.index)
	}
	copy(p, r.buf[r.index:])
	r.index += len(p)
	return nil
}

func (r *BufferReader) ReadU8() (uint8, error) {
	if r.index >= len(r.buf) {
		return 0, errors.OutOfSpace(errors.PhaseDecode, 1, 0)
	}
	v := r.buf[r.index]
	r.index++
	return v, nil
}

func (r *BufferReader) ReadU16() (uint16, error) {
	if err := r.Ensure(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.buf[r.index:])
	r.index += 2
	return v, nil
}

func (r *BufferReader) ReadU32() (uint32, error) {
	if err := r.Ensure(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.index:])
	r.index += 4
	return v, nil
}

func (r *BufferReader) ReadU64() (uint64, error) {
	if err := r.Ensure(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.buf[r.index:])
	r.index += 8
	return v, nil
}

// Skip advances the cursor by n bytes without copying them.
func (r *BufferReader) Skip(n int) error {
	if err := r.Ensure(n); err != nil {
		return err
	}
	r.index += n
	return nil
}

// Size returns the number of bytes consumed so far.
func (r *BufferReader) Size() int { return r.index }

// Capacity returns the total length of the wrapped buffer.
func (r *BufferReader) Capacity() int { return len(r.buf) }

// Remaining returns the unconsumed byte count.
func (r *BufferReader) Remaining() int { return len(r.buf) - r.index }

// Empty reports whether the cursor has consumed the whole buffer.
func (r *BufferReader) Empty() bool { return r.index == len(r.buf) }
