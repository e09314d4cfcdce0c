package wire

import (
	"bytes"
	"errors"
	"testing"

	objerrors "github.com/objwire/objwire/errors"
)

func isOutOfSpace(err error) bool {
	return objerrors.KindOf(err) == objerrors.KindOutOfSpace
}

func TestBufferWriter_Scalars(t *testing.T) {
	buf := make([]byte, 15)
	w := NewBufferWriter(buf)

	if err := w.WriteU8(0x11); err != nil {
		t.Fatalf("WriteU8: %v", err)
	}
	if err := w.WriteU16(0x2233); err != nil {
		t.Fatalf("WriteU16: %v", err)
	}
	if err := w.WriteU32(0x44556677); err != nil {
		t.Fatalf("WriteU32: %v", err)
	}
	if err := w.WriteU64(0x8899aabbccddeeff); err != nil {
		t.Fatalf("WriteU64: %v", err)
	}

	want := []byte{
		0x11,
		0x33, 0x22,
		0x77, 0x66, 0x55, 0x44,
		0xff, 0xee, 0xdd, 0xcc, 0xbb, 0xaa, 0x99, 0x88,
	}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("little-endian layout mismatch:\n got %x\nwant %x", w.Bytes(), want)
	}
	if w.Size() != 15 || w.Remaining() != 0 {
		t.Errorf("Size/Remaining = %d/%d, want 15/0", w.Size(), w.Remaining())
	}
}

func TestBufferWriter_OutOfSpace(t *testing.T) {
	w := NewBufferWriter(make([]byte, 3))

	if err := w.WriteU32(1); !isOutOfSpace(err) {
		t.Fatalf("WriteU32 into 3 bytes: got %v, want out_of_space", err)
	}
	// Failed write commits nothing.
	if w.Size() != 0 {
		t.Errorf("cursor moved on failed write: %d", w.Size())
	}

	if err := w.WriteU16(1); err != nil {
		t.Fatalf("WriteU16: %v", err)
	}
	if err := w.WriteU16(2); !isOutOfSpace(err) {
		t.Fatalf("WriteU16 past end: got %v, want out_of_space", err)
	}
	if w.Size() != 2 {
		t.Errorf("cursor not at last committed offset: %d", w.Size())
	}
}

func TestBufferWriter_Prepare(t *testing.T) {
	w := NewBufferWriter(make([]byte, 8))

	if err := w.Prepare(8); err != nil {
		t.Fatalf("Prepare(8): %v", err)
	}
	if w.Size() != 0 {
		t.Error("Prepare must not consume capacity")
	}
	if err := w.Prepare(9); !isOutOfSpace(err) {
		t.Fatalf("Prepare(9): got %v, want out_of_space", err)
	}
	if err := w.Prepare(-1); objerrors.KindOf(err) != objerrors.KindInvalidInput {
		t.Fatalf("Prepare(-1): got %v, want invalid_input", err)
	}
}

func TestBufferWriter_WriteRawAtomic(t *testing.T) {
	buf := []byte{0xaa, 0xaa, 0xaa, 0xaa}
	w := NewBufferWriter(buf)

	if err := w.WriteRaw([]byte{1, 2}); err != nil {
		t.Fatalf("WriteRaw: %v", err)
	}
	if err := w.WriteRaw([]byte{3, 4, 5}); !isOutOfSpace(err) {
		t.Fatalf("oversized WriteRaw: got %v, want out_of_space", err)
	}
	// Nothing beyond the committed prefix may change.
	if !bytes.Equal(buf, []byte{1, 2, 0xaa, 0xaa}) {
		t.Errorf("failed WriteRaw touched the buffer: %x", buf)
	}
}

func TestBufferWriter_Skip(t *testing.T) {
	buf := make([]byte, 6)
	w := NewBufferWriter(buf)

	if err := w.Skip(4, 0xee); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if !bytes.Equal(buf[:4], []byte{0xee, 0xee, 0xee, 0xee}) {
		t.Errorf("pad bytes not written: %x", buf[:4])
	}
	if err := w.Skip(3, 0); !isOutOfSpace(err) {
		t.Fatalf("Skip past end: got %v, want out_of_space", err)
	}
	if w.Size() != 4 {
		t.Errorf("cursor moved on failed skip: %d", w.Size())
	}
}

func TestBufferReader_Scalars(t *testing.T) {
	payload := []byte{
		0x11,
		0x33, 0x22,
		0x77, 0x66, 0x55, 0x44,
		0xff, 0xee, 0xdd, 0xcc, 0xbb, 0xaa, 0x99, 0x88,
	}
	r := NewBufferReader(payload)

	if v, err := r.ReadU8(); err != nil || v != 0x11 {
		t.Fatalf("ReadU8 = %#x, %v", v, err)
	}
	if v, err := r.ReadU16(); err != nil || v != 0x2233 {
		t.Fatalf("ReadU16 = %#x, %v", v, err)
	}
	if v, err := r.ReadU32(); err != nil || v != 0x44556677 {
		t.Fatalf("ReadU32 = %#x, %v", v, err)
	}
	if v, err := r.ReadU64(); err != nil || v != uint64(0x8899aabbccddeeff) {
		t.Fatalf("ReadU64 = %#x, %v", v, err)
	}
	if !r.Empty() {
		t.Errorf("reader not empty: %d remaining", r.Remaining())
	}
}

func TestBufferReader_OutOfSpace(t *testing.T) {
	r := NewBufferReader([]byte{1, 2, 3})

	if _, err := r.ReadU32(); !isOutOfSpace(err) {
		t.Fatalf("ReadU32 from 3 bytes: want out_of_space")
	}
	if r.Size() != 0 {
		t.Errorf("cursor moved on failed read: %d", r.Size())
	}
	if _, err := r.ReadU16(); err != nil {
		t.Fatal(err)
	}
	if _, err := r.ReadU16(); !isOutOfSpace(err) {
		t.Fatal("ReadU16 past end should fail")
	}
	if r.Size() != 2 || r.Remaining() != 1 {
		t.Errorf("Size/Remaining = %d/%d, want 2/1", r.Size(), r.Remaining())
	}
}

func TestBufferReader_EnsureAndSkip(t *testing.T) {
	r := NewBufferReader(make([]byte, 10))

	if err := r.Ensure(10); err != nil {
		t.Fatalf("Ensure(10): %v", err)
	}
	if r.Size() != 0 {
		t.Error("Ensure must not consume bytes")
	}
	if err := r.Skip(6); err != nil {
		t.Fatalf("Skip(6): %v", err)
	}
	if err := r.Ensure(5); !isOutOfSpace(err) {
		t.Fatalf("Ensure(5) with 4 left: got %v, want out_of_space", err)
	}
	if err := r.Skip(5); !isOutOfSpace(err) {
		t.Fatal("Skip past end should fail")
	}
	if r.Size() != 6 {
		t.Errorf("cursor moved on failed skip: %d", r.Size())
	}
}

func TestBufferReader_ReadRawAtomic(t *testing.T) {
	r := NewBufferReader([]byte{1, 2, 3})

	dst := make([]byte, 4)
	if err := r.ReadRaw(dst); !isOutOfSpace(err) {
		t.Fatal("oversized ReadRaw should fail")
	}
	if r.Size() != 0 {
		t.Errorf("cursor moved on failed ReadRaw: %d", r.Size())
	}

	dst = dst[:3]
	if err := r.ReadRaw(dst); err != nil {
		t.Fatalf("ReadRaw: %v", err)
	}
	if !bytes.Equal(dst, []byte{1, 2, 3}) {
		t.Errorf("ReadRaw = %x", dst)
	}
}

func TestViewsAreIndependent(t *testing.T) {
	// Two views over the same backing array keep independent cursors; the
	// engine requires exclusive access per call, not per buffer lifetime.
	buf := make([]byte, 8)
	w := NewBufferWriter(buf)
	if err := w.WriteU64(42); err != nil {
		t.Fatal(err)
	}

	r1 := NewBufferReader(buf)
	r2 := NewBufferReader(buf)
	v1, err1 := r1.ReadU64()
	v2, err2 := r2.ReadU64()
	if err := errors.Join(err1, err2); err != nil {
		t.Fatal(err)
	}
	if v1 != 42 || v2 != 42 {
		t.Errorf("got %d, %d", v1, v2)
	}
}
