// Package objwire implements a compact binary serialization protocol for
// strongly typed in-memory values.
//
// The protocol covers three shapes of data: fixed-width scalars, fixed
// composite records whose fields are known at compile time, and dynamic
// composites carrying a count followed by exactly that many fixed elements.
// Encoding and decoding operate on caller-owned byte buffers through
// bounds-checked views; the engine never allocates buffers or destination
// storage on the caller's behalf.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	objwire/         Root package with the Writer and Reader interfaces
//	├── wire/        Bounds-checked buffer views and fixed-width scalar I/O
//	├── schema/      Reflection compiler producing wire layouts for Go types
//	├── codec/       Encoder/Decoder walking compiled layouts, word flattening
//	├── abi/         Session entry points with signed byte-count convention
//	├── geom/        Shared protocol types (Vec3, Triangle, Polyhedron)
//	└── errors/      Structured error types for debugging
//
// # Quick Start
//
// Serialize a value into a caller-owned buffer and read it back:
//
//	sess := abi.NewSession()
//
//	poly := geom.Polyhedron{Triangles: []geom.Triangle{ ... }}
//	buf := make([]byte, 1024)
//
//	n := sess.Serialize(&poly, buf)
//	if n < 0 {
//	    log.Fatalf("serialize failed: %s", abi.Code(n))
//	}
//
//	dst := geom.Polyhedron{Triangles: make([]geom.Triangle, 0, 16)}
//	m := sess.Deserialize(&dst, buf[:n])
//
// # Wire Format
//
// All scalars are little-endian and fixed-width. A fixed composite is the
// concatenation of its fields' encodings in declared order with no framing
// or padding. A dynamic composite is a u32 element count followed by that
// many fixed elements. Storage capacity is a local concern of the caller
// and is never serialized.
//
// # Capacity Model
//
// Dynamic composites are backed by Go slices: len is the logical element
// count, cap is the storage reserved by the caller. Decoding never grows
// the destination; a payload whose count exceeds the destination capacity
// fails before any element is written.
//
// # Thread Safety
//
// The engine holds no shared mutable state across calls. Distinct buffers
// and destinations may be processed concurrently without coordination.
// A single buffer or destination must not be passed to two concurrent
// calls; the engine assumes exclusive access for the duration of a call.
//
// # Error Handling
//
// Codec failures use the structured types from the errors package:
//
//	[decode] capacity_exceeded at triangles: count 3 exceeds capacity 2
//	[encode] out_of_space: need 36 bytes, 20 remaining
//
// The abi package folds these into negative integer codes so that callers
// across a foreign boundary can share one error-handling idiom.
package objwire
