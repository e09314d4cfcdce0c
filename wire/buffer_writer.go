package wire

import (
	"encoding/binary"

	"github.com/objwire/objwire/errors"
)

// BufferWriter is a bounds-checked write cursor over a caller-owned byte
// slice. The zero value writes into an empty buffer; use NewBufferWriter to
// wrap real storage.
type BufferWriter struct {
	buf   []byte
	index int
}

// NewBufferWriter wraps buf. The writer never grows buf; its length is the
// total capacity available to one encode call.
func NewBufferWriter(buf []byte) *BufferWriter {
	return &BufferWriter{buf: buf}
}

// Prepare reports whether n more bytes fit. It writes nothing.
func (w *BufferWriter) Prepare(n int) error {
	if n < 0 {
		return errors.InvalidInput(errors.PhaseEncode, "negative prepare length")
	}
	if n > len(w.buf)-w.index {
		return errors.OutOfSpace(errors.PhaseEncode, n, len(w.buf)-w.index)
	}
	return nil
}

// WriteRaw appends p in full, or fails without committing any byte.
func (w *BufferWriter) WriteRaw(p []byte) error {
	if len(p) > len(w.buf)-w.index {
		return errors.OutOfSpace(errors.PhaseEncode, len(p), len(w.buf)-w.index)
	}
	copy(w.buf[w.index:], p)
	w.index += len(p)
	return nil
}

func (w *BufferWriter) WriteU8(v uint8) error {
	if w.index >= len(w.buf) {
		return errors.OutOfSpace(errors.PhaseEncode, 1, 0)
	}
	w.buf[w.index] = v
	w.index++
	return nil
}

func (w *BufferWriter) WriteU16(v uint16) error {
	if err := w.Prepare(2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(w.buf[w.index:], v)
	w.index += 2
	return nil
}

func (w *BufferWriter) WriteU32(v uint32) error {
	if err := w.Prepare(4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(w.buf[w.index:], v)
	w.index += 4
	return nil
}

func (w *BufferWriter) WriteU64(v uint64) error {
	if err := w.Prepare(8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(w.buf[w.index:], v)
	w.index += 8
	return nil
}

// Skip advances the cursor by n bytes filled with pad.
func (w *BufferWriter) Skip(n int, pad byte) error {
	if err := w.Prepare(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		w.buf[w.index+i] = pad
	}
	w.index += n
	return nil
}

// Size returns the number of bytes committed so far.
func (w *BufferWriter) Size() int { return w.index }

// Capacity returns the total length of the wrapped buffer.
func (w *BufferWriter) Capacity() int { return len(w.buf) }

// Remaining returns the unused byte count.
func (w *BufferWriter) Remaining() int { return len(w.buf) - w.index }

// Bytes returns the committed prefix of the wrapped buffer.
func (w *BufferWriter) Bytes() []byte { return w.buf[:w.index] }
