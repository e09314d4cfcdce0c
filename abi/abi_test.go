package abi

import (
	"bytes"
	"testing"

	"go.uber.org/zap"

	"github.com/objwire/objwire/errors"
	"github.com/objwire/objwire/geom"
)

func samplePolyhedron() geom.Polyhedron {
	// Three triangles of float triples 0..8.
	tri := func(base float32) geom.Triangle {
		v := func(f float32) geom.Vec3 { return geom.Vec3{X: f, Y: f, Z: f} }
		return geom.Triangle{A: v(base), B: v(base + 1), C: v(base + 2)}
	}
	return geom.Polyhedron{Triangles: []geom.Triangle{tri(0), tri(3), tri(6)}}
}

func TestSerializeDeserialize_ByteCountConservation(t *testing.T) {
	sess := NewSession()
	poly := samplePolyhedron()

	buf := make([]byte, 1024)
	n := sess.Serialize(&poly, buf)
	if n <= 0 {
		t.Fatalf("Serialize = %d (%s)", n, Code(n))
	}
	if want := 4 + 3*geom.TriangleWireSize; n != want {
		t.Fatalf("Serialize = %d bytes, want %d", n, want)
	}

	dst := geom.NewPolyhedron(10)
	m := sess.Deserialize(&dst, buf[:n])
	if m != n {
		t.Fatalf("Deserialize = %d, Serialize = %d; byte counts must agree", m, n)
	}

	if len(dst.Triangles) != 3 {
		t.Fatalf("decoded %d triangles", len(dst.Triangles))
	}
	for i := range poly.Triangles {
		if dst.Triangles[i] != poly.Triangles[i] {
			t.Errorf("triangle %d mismatch: %s != %s", i, dst.Triangles[i], poly.Triangles[i])
		}
	}
}

func TestDeserialize_CapacityExceeded(t *testing.T) {
	sess := NewSession()
	poly := samplePolyhedron()

	buf := make([]byte, 1024)
	n := sess.Serialize(&poly, buf)
	if n < 0 {
		t.Fatal(Code(n))
	}

	dst := geom.NewPolyhedron(2)
	if m := sess.Deserialize(&dst, buf[:n]); m != int(CodeCapacityExceeded) {
		t.Fatalf("Deserialize = %d, want %d (capacity_exceeded)", m, CodeCapacityExceeded)
	}
}

func TestSerialize_OutOfSpace(t *testing.T) {
	sess := NewSession()
	poly := samplePolyhedron()

	short := make([]byte, poly.WireSize()-1)
	if n := sess.Serialize(&poly, short); n != int(CodeOutOfSpace) {
		t.Fatalf("Serialize = %d, want %d (out_of_space)", n, CodeOutOfSpace)
	}
}

func TestSerialize_InvalidArguments(t *testing.T) {
	sess := NewSession()
	buf := make([]byte, 64)

	if n := sess.Serialize(nil, buf); n != int(CodeInvalidArgument) {
		t.Errorf("Serialize(nil) = %d, want %d", n, CodeInvalidArgument)
	}

	var dst geom.Polyhedron
	if n := sess.Deserialize(dst, buf); n != int(CodeUnsupportedType) {
		t.Errorf("Deserialize(non-pointer) = %d, want %d", n, CodeUnsupportedType)
	}

	type unsupported struct {
		Name string
	}
	if n := sess.Serialize(&unsupported{}, buf); n != int(CodeUnsupportedType) {
		t.Errorf("Serialize(unsupported) = %d, want %d", n, CodeUnsupportedType)
	}
}

func TestReferencePayload(t *testing.T) {
	sess := NewSession()

	buf := make([]byte, 1024)
	n := sess.ReferencePayload(buf)
	if n != 112 {
		t.Fatalf("ReferencePayload = %d bytes, want 112", n)
	}

	dst := geom.NewPolyhedron(16)
	if m := sess.Deserialize(&dst, buf[:n]); m != n {
		t.Fatalf("Deserialize(reference) = %d, want %d", m, n)
	}

	want := ReferencePolyhedron()
	if len(dst.Triangles) != len(want.Triangles) {
		t.Fatalf("decoded %d triangles, want %d", len(dst.Triangles), len(want.Triangles))
	}
	for i := range want.Triangles {
		if dst.Triangles[i] != want.Triangles[i] {
			t.Errorf("triangle %d mismatch", i)
		}
	}
	if dst.Triangles[0].A != (geom.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("first vertex = %s, want (1, 2, 3)", dst.Triangles[0].A)
	}
	if dst.Triangles[2].C != (geom.Vec3{X: 25, Y: 26, Z: 27}) {
		t.Errorf("last vertex = %s, want (25, 26, 27)", dst.Triangles[2].C)
	}
}

func TestReferencePayload_Idempotent(t *testing.T) {
	sess := NewSession()

	a := make([]byte, 256)
	b := make([]byte, 256)
	na := sess.ReferencePayload(a)
	nb := sess.ReferencePayload(b)
	if na != nb {
		t.Fatalf("byte counts differ: %d != %d", na, nb)
	}
	if !bytes.Equal(a[:na], b[:nb]) {
		t.Error("repeated reference payloads differ")
	}

	if n := sess.ReferencePayload(make([]byte, 8)); n != int(CodeOutOfSpace) {
		t.Errorf("tiny buffer = %d, want %d", n, CodeOutOfSpace)
	}
}

func TestSessionWithLogger(t *testing.T) {
	// The option wires a real logger without changing results.
	sess := NewSession(WithLogger(zap.NewNop()), WithLogger(nil))

	buf := make([]byte, 256)
	if n := sess.ReferencePayload(buf); n != 112 {
		t.Fatalf("ReferencePayload = %d", n)
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, CodeOK},
		{"out of space", errors.OutOfSpace(errors.PhaseEncode, 8, 0), CodeOutOfSpace},
		{"capacity", errors.CapacityExceeded(nil, 3, 2), CodeCapacityExceeded},
		{"malformed", errors.Malformed(nil, "bad count"), CodeMalformedData},
		{"overflow", errors.Overflow(errors.PhaseDecode, nil, "mul"), CodeMalformedData},
		{"nil pointer", errors.NilPointer(errors.PhaseDecode, nil, ""), CodeInvalidArgument},
		{"unsupported", errors.Unsupported(errors.PhaseCompile, "map"), CodeUnsupportedType},
		{"type mismatch", errors.TypeMismatch(errors.PhaseCompile, nil, "int", "record"), CodeUnsupportedType},
		{"foreign", bytes.ErrTooLarge, CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCode_String(t *testing.T) {
	if CodeCapacityExceeded.String() != "capacity_exceeded" {
		t.Error(CodeCapacityExceeded)
	}
	if Code(42).String() != "ok" {
		t.Error("positive codes are byte counts")
	}
	if Code(-99).String() != "unknown" {
		t.Error(Code(-99))
	}
}
