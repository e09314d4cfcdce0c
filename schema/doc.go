// Package schema compiles Go types into wire layouts for the objwire
// protocol.
//
// A compiled layout pre-computes everything the codec needs per type:
// scalar kinds and widths, record field order and Go offsets, and the
// element layout of dynamic runs. Compilation happens once per Go type
// and is cached, so the per-call encode/decode paths never touch
// reflection metadata beyond the compiled form.
//
// # Type Mapping
//
//	Go type                  Wire kind     Wire size
//	─────────────────────────────────────────────────
//	bool                     bool          1
//	uint8/int8               u8/s8         1
//	uint16/int16             u16/s16       2
//	uint32/int32             u32/s32       4
//	uint64/int64             u64/s64       8
//	float32/float64          f32/f64       4/8
//	struct                   record        sum of fields
//	slice of fixed elements  array         4 + n*elem
//
// Platform-width int/uint, strings, maps, pointers and interfaces inside
// values are rejected at compile time: the protocol only carries types
// whose encoded width is fixed by declaration. Array elements must be
// fixed-size, so dynamic runs do not nest.
//
// Compiler and CompiledType are safe for concurrent use.
package schema
