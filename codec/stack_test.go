package codec

import (
	"testing"

	"github.com/objwire/objwire/errors"
)

func TestLowerLiftWords_Triangle(t *testing.T) {
	src := tri(1)

	words := make([]uint64, 16)
	n, err := NewEncoder().LowerToWords(&src, words)
	if err != nil {
		t.Fatalf("LowerToWords: %v", err)
	}
	if n != 9 {
		t.Fatalf("lowered %d words, want 9", n)
	}

	var dst triangle
	m, err := NewDecoder().LiftFromWords(&dst, words[:n])
	if err != nil {
		t.Fatalf("LiftFromWords: %v", err)
	}
	if m != n {
		t.Errorf("lifted %d words, lowered %d", m, n)
	}
	if dst != src {
		t.Errorf("word round trip mismatch:\n got %+v\nwant %+v", dst, src)
	}
}

func TestLowerLiftWords_AllScalarKinds(t *testing.T) {
	src := allScalars{
		B: true, U8: 200, S8: -100, U16: 50000, S16: -30000,
		U32: 0xffffffff, S32: -1, U64: 1<<64 - 1, S64: -(1 << 62),
		F32: -0.5, F64: 6.125,
	}

	words := make([]uint64, 11)
	n, err := NewEncoder().LowerToWords(&src, words)
	if err != nil {
		t.Fatalf("LowerToWords: %v", err)
	}
	if n != 11 {
		t.Fatalf("lowered %d words, want 11", n)
	}

	var dst allScalars
	if _, err := NewDecoder().LiftFromWords(&dst, words); err != nil {
		t.Fatalf("LiftFromWords: %v", err)
	}
	if dst != src {
		t.Errorf("word round trip mismatch:\n got %+v\nwant %+v", dst, src)
	}
}

func TestLowerToWords_TooSmall(t *testing.T) {
	src := tri(0)
	words := make([]uint64, 8) // needs 9
	_, err := NewEncoder().LowerToWords(&src, words)
	if errors.KindOf(err) != errors.KindOutOfSpace {
		t.Fatalf("LowerToWords = %v, want out_of_space", err)
	}
}

func TestLowerToWords_DynamicRejected(t *testing.T) {
	src := polyhedron{Triangles: []triangle{tri(0)}}
	_, err := NewEncoder().LowerToWords(&src, make([]uint64, 64))
	if errors.KindOf(err) != errors.KindUnsupported {
		t.Fatalf("LowerToWords = %v, want unsupported", err)
	}

	dst := polyhedron{Triangles: make([]triangle, 0, 4)}
	_, err = NewDecoder().LiftFromWords(&dst, make([]uint64, 64))
	if errors.KindOf(err) != errors.KindUnsupported {
		t.Fatalf("LiftFromWords = %v, want unsupported", err)
	}
}

func TestFlattenValue(t *testing.T) {
	src := tri(4)

	e := NewEncoder()
	words, err := e.FlattenValue(&src)
	if err != nil {
		t.Fatalf("FlattenValue: %v", err)
	}
	if len(words) != 9 {
		t.Fatalf("flattened to %d words, want 9", len(words))
	}

	var dst triangle
	if _, err := NewDecoder().LiftFromWords(&dst, words); err != nil {
		t.Fatal(err)
	}
	if dst != src {
		t.Error("flattened round trip mismatch")
	}

	// Repeated calls reuse pooled scratch without corrupting results.
	again, err := e.FlattenValue(&src)
	if err != nil {
		t.Fatal(err)
	}
	for i := range words {
		if words[i] != again[i] {
			t.Fatalf("word %d differs between calls", i)
		}
	}
}
