package codec

import (
	"reflect"
	"unsafe"

	"github.com/tetratelabs/wazero/api"

	"github.com/objwire/objwire/errors"
	"github.com/objwire/objwire/schema"
)

// Word flattening carries a fixed-size value as core value words instead of
// bytes: one uint64 per scalar, in declared field order, using the same
// representation WebAssembly core functions use for i32/i64/f32/f64.
// Dynamic runs have no flat form and are rejected at the entry points.

// LowerToWords flattens value into words. Returns the number of words
// written.
func (e *Encoder) LowerToWords(value any, words []uint64) (int, error) {
	ptr, goType, err := valuePointer(value, errors.PhaseEncode)
	if err != nil {
		return 0, err
	}

	ct, err := e.compiler.Compile(goType)
	if err != nil {
		return 0, err
	}
	if !ct.Fixed {
		return 0, errors.Unsupported(errors.PhaseEncode, "dynamic runs do not flatten")
	}
	if ct.FlatCount > len(words) {
		return 0, errors.OutOfSpace(errors.PhaseEncode, ct.FlatCount, len(words))
	}

	return lowerValue(ct, ptr, words, 0), nil
}

// FlattenValue is the allocation-friendly form of LowerToWords: it lowers
// into pooled scratch and returns a fresh word slice.
func (e *Encoder) FlattenValue(value any) ([]uint64, error) {
	ptr, goType, err := valuePointer(value, errors.PhaseEncode)
	if err != nil {
		return nil, err
	}

	ct, err := e.compiler.Compile(goType)
	if err != nil {
		return nil, err
	}
	if !ct.Fixed {
		return nil, errors.Unsupported(errors.PhaseEncode, "dynamic runs do not flatten")
	}

	scratch := getWordBuf(ct.FlatCount)
	defer putWordBuf(scratch)

	n := lowerValue(ct, ptr, *scratch, 0)

	// Copy out: the scratch buffer returns to the pool.
	result := make([]uint64, n)
	copy(result, *scratch)
	return result, nil
}

func lowerValue(ct *schema.CompiledType, ptr unsafe.Pointer, words []uint64, offset int) int {
	switch ct.Kind {
	case schema.KindBool:
		var v uint32
		if *(*bool)(ptr) {
			v = 1
		}
		words[offset] = api.EncodeU32(v)
		return 1

	case schema.KindU8:
		words[offset] = api.EncodeU32(uint32(*(*uint8)(ptr)))
		return 1

	case schema.KindS8:
		words[offset] = api.EncodeI32(int32(*(*int8)(ptr)))
		return 1

	case schema.KindU16:
		words[offset] = api.EncodeU32(uint32(*(*uint16)(ptr)))
		return 1

	case schema.KindS16:
		words[offset] = api.EncodeI32(int32(*(*int16)(ptr)))
		return 1

	case schema.KindU32:
		words[offset] = api.EncodeU32(*(*uint32)(ptr))
		return 1

	case schema.KindS32:
		words[offset] = api.EncodeI32(*(*int32)(ptr))
		return 1

	case schema.KindU64:
		words[offset] = *(*uint64)(ptr)
		return 1

	case schema.KindS64:
		words[offset] = api.EncodeI64(*(*int64)(ptr))
		return 1

	case schema.KindF32:
		words[offset] = api.EncodeF32(*(*float32)(ptr))
		return 1

	case schema.KindF64:
		words[offset] = api.EncodeF64(*(*float64)(ptr))
		return 1

	case schema.KindRecord:
		n := 0
		for i := range ct.Fields {
			f := &ct.Fields[i]
			n += lowerValue(f.Type, unsafe.Add(ptr, f.GoOffset), words, offset+n)
		}
		return n

	default:
		// Fixed check at the entry point keeps arrays out of here.
		return 0
	}
}

// LiftFromWords reconstructs dst (a non-nil pointer to a fixed-size type)
// from words. Returns the number of words consumed.
func (d *Decoder) LiftFromWords(dst any, words []uint64) (int, error) {
	if dst == nil {
		return 0, errors.NilPointer(errors.PhaseDecode, nil, "")
	}

	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer {
		return 0, errors.New(errors.PhaseDecode, errors.KindTypeMismatch).
			GoType(rv.Type().String()).
			Detail("destination must be a pointer").
			Build()
	}
	if rv.IsNil() {
		return 0, errors.NilPointer(errors.PhaseDecode, nil, rv.Type().String())
	}
	ptr := unsafe.Pointer(rv.Pointer())

	ct, err := d.compiler.Compile(rv.Type())
	if err != nil {
		return 0, err
	}
	if !ct.Fixed {
		return 0, errors.Unsupported(errors.PhaseDecode, "dynamic runs do not flatten")
	}
	if ct.FlatCount > len(words) {
		return 0, errors.OutOfSpace(errors.PhaseDecode, ct.FlatCount, len(words))
	}

	return liftValue(ct, ptr, words, 0), nil
}

func liftValue(ct *schema.CompiledType, ptr unsafe.Pointer, words []uint64, offset int) int {
	switch ct.Kind {
	case schema.KindBool:
		*(*bool)(ptr) = api.DecodeU32(words[offset]) != 0
		return 1

	case schema.KindU8:
		*(*uint8)(ptr) = uint8(api.DecodeU32(words[offset]))
		return 1

	case schema.KindS8:
		*(*int8)(ptr) = int8(api.DecodeI32(words[offset]))
		return 1

	case schema.KindU16:
		*(*uint16)(ptr) = uint16(api.DecodeU32(words[offset]))
		return 1

	case schema.KindS16:
		*(*int16)(ptr) = int16(api.DecodeI32(words[offset]))
		return 1

	case schema.KindU32:
		*(*uint32)(ptr) = api.DecodeU32(words[offset])
		return 1

	case schema.KindS32:
		*(*int32)(ptr) = api.DecodeI32(words[offset])
		return 1

	case schema.KindU64:
		*(*uint64)(ptr) = words[offset]
		return 1

	case schema.KindS64:
		*(*int64)(ptr) = int64(words[offset])
		return 1

	case schema.KindF32:
		*(*float32)(ptr) = api.DecodeF32(words[offset])
		return 1

	case schema.KindF64:
		*(*float64)(ptr) = api.DecodeF64(words[offset])
		return 1

	case schema.KindRecord:
		n := 0
		for i := range ct.Fields {
			f := &ct.Fields[i]
			n += liftValue(f.Type, unsafe.Add(ptr, f.GoOffset), words, offset+n)
		}
		return n

	default:
		return 0
	}
}
