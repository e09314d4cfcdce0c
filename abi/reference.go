package abi

import (
	"github.com/objwire/objwire/geom"
)

// ReferencePolyhedron returns the fixed payload value used to validate
// interoperability: three triangles whose vertex components count 1
// through 27. Independent implementations of the protocol encode this
// value to the same 112 bytes.
func ReferencePolyhedron() geom.Polyhedron {
	tri := func(base float32) geom.Triangle {
		vec := func(off float32) geom.Vec3 {
			return geom.Vec3{X: base + off, Y: base + off + 1, Z: base + off + 2}
		}
		return geom.Triangle{A: vec(0), B: vec(3), C: vec(6)}
	}
	return geom.Polyhedron{
		Triangles: []geom.Triangle{tri(1), tri(10), tri(19)},
	}
}

// ReferencePayload encodes the reference polyhedron into out and returns
// the number of bytes written, or a negative Code. Repeated calls produce
// identical bytes.
func (s *Session) ReferencePayload(out []byte) int {
	poly := ReferencePolyhedron()
	return s.Serialize(&poly, out)
}
