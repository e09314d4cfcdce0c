// Package geom defines the shared protocol types carried by the objwire
// reference payload: float vectors, triangles built from them, and the
// polyhedron record with its dynamic triangle run.
//
// In a deployment these declarations live in a package shared by every
// party speaking the protocol; wire compatibility is determined entirely
// by field order and field types.
package geom

import "fmt"

// Wire sizes of the protocol types. A triangle is three packed vectors;
// a polyhedron is a u32 count followed by that many triangles.
const (
	Vec3WireSize     = 12
	TriangleWireSize = 3 * Vec3WireSize
)

// Vec3 is a three component vector of floats.
type Vec3 struct {
	X float32
	Y float32
	Z float32
}

// Triangle is composed of three Vec3 vertices.
type Triangle struct {
	A Vec3
	B Vec3
	C Vec3
}

// Polyhedron holds a dynamic run of triangles. len(Triangles) is the
// logical count that travels on the wire; cap(Triangles) is the storage
// reserved by the owner and is never serialized.
type Polyhedron struct {
	Triangles []Triangle
}

// NewPolyhedron returns an empty polyhedron with storage reserved for
// capacity triangles, ready to act as a decode destination.
func NewPolyhedron(capacity int) Polyhedron {
	return Polyhedron{Triangles: make([]Triangle, 0, capacity)}
}

// WireSize returns the exact number of bytes p encodes to.
func (p Polyhedron) WireSize() int {
	return 4 + len(p.Triangles)*TriangleWireSize
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

func (t Triangle) String() string {
	return fmt.Sprintf("{%s %s %s}", t.A, t.B, t.C)
}
