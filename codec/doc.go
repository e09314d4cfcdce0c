// Package codec walks compiled schema layouts to move values between Go
// memory and the objwire byte format.
//
// # Key Types
//
//	Encoder - writes Go values through an objwire.Writer
//	Decoder - reads an objwire.Reader into caller-provided Go values
//
// Both operate directly on value memory via the field offsets recorded in
// the compiled layout, so the per-call path does no reflection walks and
// no allocation.
//
// # Encoding Flow
//
//  1. schema.Compiler.Compile(goType) -> CompiledType (cached)
//  2. Encoder.Encode(value, writer)
//     or Encoder.FlattenValue(value) -> []uint64
//
// # Decoding Flow
//
//  1. schema.Compiler.Compile(goType) -> CompiledType (cached)
//  2. Decoder.Decode(&dst, reader)
//     or Decoder.LiftFromWords(&dst, words)
//
// # Dynamic Runs
//
// A slice field encodes as a u32 count followed by that many fixed-size
// elements. On decode the destination slice is the caller's pre-reserved
// storage: a count above cap(dst) fails with capacity_exceeded before any
// element is touched, and the slice is never grown or reallocated.
//
// # Word Flattening
//
// Fixed-size values can bypass the byte format entirely and travel as core
// value words, one uint64 per scalar, using the same value representation
// WebAssembly core functions use (i32/i64/f32/f64 zero-extended into
// uint64). Dynamic runs do not flatten.
//
// # Failure Semantics
//
// Any failure aborts the whole call. A partially written buffer or a
// partially populated destination is unusable by contract; callers must
// discard it. Fixed-size subtrees reserve their full width before writing,
// so a failed call commits no bytes for the subtree that failed.
//
// # Thread Safety
//
// Encoder and Decoder hold no per-call state and are safe for concurrent
// use on distinct buffers and destinations.
package codec
