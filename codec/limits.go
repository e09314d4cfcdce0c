package codec

import (
	"math"
	"unsafe"
)

// MaxSequenceLength caps the element count of a dynamic run in either
// direction. Counts above it are treated as malformed rather than honored,
// bounding the work a hostile payload can demand.
const MaxSequenceLength = 1 << 20

// safeMulU32 multiplies without silent wraparound.
func safeMulU32(a, b uint32) (uint32, bool) {
	product := uint64(a) * uint64(b)
	if product > math.MaxUint32 {
		return 0, false
	}
	return uint32(product), true
}

// sliceHeader mirrors the runtime layout of a Go slice. Data stays an
// unsafe.Pointer so the referenced array remains visible to the GC.
type sliceHeader struct {
	Data unsafe.Pointer
	Len  int
	Cap  int
}
