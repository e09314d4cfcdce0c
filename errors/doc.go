// Package errors provides structured error types for the objwire library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: field path, Go/wire type
// names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindCapacityExceeded).
//		Path("triangles").
//		Detail("count %d exceeds capacity %d", count, capacity).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfSpace(errors.PhaseEncode, need, remaining)
//	err := errors.TypeMismatch(errors.PhaseCompile, path, "string", "scalar or record")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
