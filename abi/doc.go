// Package abi exposes the objwire entry points under a single calling
// convention: every operation takes a typed value or destination plus a
// caller-owned byte buffer and returns a signed byte count, negative on
// failure. The magnitude of a negative return identifies the error kind,
// so callers on the far side of a foreign boundary can share one
// error-handling idiom across all three operations.
//
// # Entry Points
//
//	Session.Serialize(value, out)     -> bytes written  | negative Code
//	Session.Deserialize(dst, in)      -> bytes consumed | negative Code
//	Session.ReferencePayload(out)     -> bytes written  | negative Code
//
// # Sessions
//
// A Session is an explicitly constructed, explicitly owned handle bundling
// the compiler cache, encoder, decoder and logger. There is no package
// global and no hidden lazy initialization; callers that want process-wide
// sharing pass the same Session around. Sessions are safe for concurrent
// use on distinct buffers and destinations.
//
// # Code Enumeration
//
// The code-to-kind mapping is part of the ABI contract and stable:
//
//	 0  success (byte counts are >= 0)
//	-1  out of space
//	-2  capacity exceeded
//	-3  malformed data
//	-4  invalid argument
//	-5  unsupported type
//	-6  internal
package abi
