package codec

import (
	"math"
	"reflect"
	"unsafe"

	objwire "github.com/objwire/objwire"
	"github.com/objwire/objwire/errors"
	"github.com/objwire/objwire/schema"
)

type Encoder struct {
	compiler *schema.Compiler
}

func NewEncoder() *Encoder {
	return &Encoder{
		compiler: schema.NewCompiler(),
	}
}

// NewEncoderWithCompiler shares a compiler (and its layout cache) with
// other encoders and decoders.
func NewEncoderWithCompiler(c *schema.Compiler) *Encoder {
	return &Encoder{compiler: c}
}

// Encode writes value through w in declared field order. value may be a
// struct, scalar, or slice, passed directly or through a pointer. Any
// failure aborts the call; the bytes committed before the failure are not
// a usable payload.
func (e *Encoder) Encode(value any, w objwire.Writer) error {
	ptr, goType, err := valuePointer(value, errors.PhaseEncode)
	if err != nil {
		return err
	}

	ct, err := e.compiler.Compile(goType)
	if err != nil {
		return err
	}

	return e.encodeValue(ct, ptr, w, nil)
}

func (e *Encoder) encodeValue(ct *schema.CompiledType, ptr unsafe.Pointer, w objwire.Writer, path []string) error {
	switch ct.Kind {
	case schema.KindBool:
		var b uint8
		if *(*bool)(ptr) {
			b = 1
		}
		return w.WriteU8(b)

	case schema.KindU8:
		return w.WriteU8(*(*uint8)(ptr))

	case schema.KindS8:
		return w.WriteU8(uint8(*(*int8)(ptr)))

	case schema.KindU16:
		return w.WriteU16(*(*uint16)(ptr))

	case schema.KindS16:
		return w.WriteU16(uint16(*(*int16)(ptr)))

	case schema.KindU32:
		return w.WriteU32(*(*uint32)(ptr))

	case schema.KindS32:
		return w.WriteU32(uint32(*(*int32)(ptr)))

	case schema.KindU64:
		return w.WriteU64(*(*uint64)(ptr))

	case schema.KindS64:
		return w.WriteU64(uint64(*(*int64)(ptr)))

	case schema.KindF32:
		return w.WriteU32(math.Float32bits(*(*float32)(ptr)))

	case schema.KindF64:
		return w.WriteU64(math.Float64bits(*(*float64)(ptr)))

	case schema.KindRecord:
		return e.encodeRecord(ct, ptr, w, path)

	case schema.KindArray:
		return e.encodeArray(ct, ptr, w, path)

	default:
		return errors.Unsupported(errors.PhaseEncode, "wire kind "+ct.Kind.String())
	}
}

func (e *Encoder) encodeRecord(ct *schema.CompiledType, ptr unsafe.Pointer, w objwire.Writer, path []string) error {
	// A fixed record either fits whole or fails before any field byte.
	if ct.Fixed {
		if err := w.Prepare(int(ct.WireSize)); err != nil {
			return err
		}
	}

	for i := range ct.Fields {
		f := &ct.Fields[i]
		if err := e.encodeValue(f.Type, unsafe.Add(ptr, f.GoOffset), w, append(path, f.Name)); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodeArray(ct *schema.CompiledType, ptr unsafe.Pointer, w objwire.Writer, path []string) error {
	sh := (*sliceHeader)(ptr)
	count := sh.Len

	if count > MaxSequenceLength {
		return errors.New(errors.PhaseEncode, errors.KindOverflow).
			Path(path...).
			Detail("sequence length %d exceeds limit %d", count, MaxSequenceLength).
			Build()
	}

	elem := ct.ElemType
	need, ok := safeMulU32(uint32(count), elem.WireSize)
	if !ok {
		return errors.Overflow(errors.PhaseEncode, path, "sequence byte size overflows u32")
	}

	// Count goes first and is not retracted if an element fails to fit, so
	// check the full run up front.
	if err := w.Prepare(schema.CountWireSize + int(need)); err != nil {
		return err
	}
	if err := w.WriteU32(uint32(count)); err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		elemPtr := unsafe.Add(sh.Data, uintptr(i)*elem.GoSize)
		if err := e.encodeValue(elem, elemPtr, w, path); err != nil {
			return err
		}
	}
	return nil
}

// valuePointer resolves an interface value to the memory holding its data.
// Pointers are dereferenced once; non-pointer values read the interface's
// data word, which the runtime stores indirectly for non-pointer kinds.
func valuePointer(value any, phase errors.Phase) (unsafe.Pointer, reflect.Type, error) {
	if value == nil {
		return nil, nil, errors.NilPointer(phase, nil, "")
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil, errors.NilPointer(phase, nil, rv.Type().String())
		}
		return unsafe.Pointer(rv.Pointer()), rv.Type().Elem(), nil
	}

	eface := (*[2]unsafe.Pointer)(unsafe.Pointer(&value))
	return eface[1], rv.Type(), nil
}
