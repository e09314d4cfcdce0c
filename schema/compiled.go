package schema

import (
	"reflect"
)

// CountWireSize is the encoded width of a dynamic run's element count.
const CountWireSize = 4

// CompiledType is the pre-computed wire layout of one Go type.
type CompiledType struct {
	GoType    reflect.Type
	ElemType  *CompiledType
	Fields    []Field
	GoSize    uintptr
	WireSize  uint32
	FlatCount int
	Kind      Kind
	Fixed     bool
}

// Field is one record member: its compiled layout plus the offset of the
// field inside the Go struct.
type Field struct {
	Type     *CompiledType
	Name     string
	GoOffset uintptr
}

func (ct *CompiledType) IsScalar() bool {
	return ct.Kind.IsScalar()
}

// IsFixedSize reports whether the encoded width of this type is the same
// for every value, i.e. no dynamic run appears anywhere beneath it. For
// fixed types WireSize is that width; for dynamic types WireSize is the
// width of the fixed portion only.
func (ct *CompiledType) IsFixedSize() bool {
	return ct.Fixed
}

// MinWireSize returns the smallest number of bytes any value of this type
// can encode to. For fixed types this equals WireSize; a dynamic run
// contributes only its count field.
func (ct *CompiledType) MinWireSize() uint32 {
	switch ct.Kind {
	case KindArray:
		return CountWireSize
	case KindRecord:
		if ct.Fixed {
			return ct.WireSize
		}
		var sum uint32
		for _, f := range ct.Fields {
			sum += f.Type.MinWireSize()
		}
		return sum
	default:
		return ct.WireSize
	}
}
