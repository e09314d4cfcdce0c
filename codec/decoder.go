package codec

import (
	"math"
	"reflect"
	"unsafe"

	objwire "github.com/objwire/objwire"
	"github.com/objwire/objwire/errors"
	"github.com/objwire/objwire/schema"
)

type Decoder struct {
	compiler *schema.Compiler
}

func NewDecoder() *Decoder {
	return &Decoder{
		compiler: schema.NewCompiler(),
	}
}

// NewDecoderWithCompiler shares a compiler (and its layout cache) with
// other encoders and decoders.
func NewDecoderWithCompiler(c *schema.Compiler) *Decoder {
	return &Decoder{compiler: c}
}

// Decode reads r into dst, which must be a non-nil pointer. Slice fields
// in dst must carry enough capacity for the incoming count; decoding never
// grows them. On failure the destination's contents are unspecified and
// must not be used.
func (d *Decoder) Decode(dst any, r objwire.Reader) error {
	if dst == nil {
		return errors.NilPointer(errors.PhaseDecode, nil, "")
	}

	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer {
		return errors.New(errors.PhaseDecode, errors.KindTypeMismatch).
			GoType(rv.Type().String()).
			Detail("destination must be a pointer").
			Build()
	}
	if rv.IsNil() {
		return errors.NilPointer(errors.PhaseDecode, nil, rv.Type().String())
	}

	ct, err := d.compiler.Compile(rv.Type())
	if err != nil {
		return err
	}

	return d.decodeValue(ct, unsafe.Pointer(rv.Pointer()), r, nil)
}

func (d *Decoder) decodeValue(ct *schema.CompiledType, ptr unsafe.Pointer, r objwire.Reader, path []string) error {
	switch ct.Kind {
	case schema.KindBool:
		v, err := r.ReadU8()
		if err != nil {
			return err
		}
		*(*bool)(ptr) = v != 0
		return nil

	case schema.KindU8:
		v, err := r.ReadU8()
		if err != nil {
			return err
		}
		*(*uint8)(ptr) = v
		return nil

	case schema.KindS8:
		v, err := r.ReadU8()
		if err != nil {
			return err
		}
		*(*int8)(ptr) = int8(v)
		return nil

	case schema.KindU16:
		v, err := r.ReadU16()
		if err != nil {
			return err
		}
		*(*uint16)(ptr) = v
		return nil

	case schema.KindS16:
		v, err := r.ReadU16()
		if err != nil {
			return err
		}
		*(*int16)(ptr) = int16(v)
		return nil

	case schema.KindU32:
		v, err := r.ReadU32()
		if err != nil {
			return err
		}
		*(*uint32)(ptr) = v
		return nil

	case schema.KindS32:
		v, err := r.ReadU32()
		if err != nil {
			return err
		}
		*(*int32)(ptr) = int32(v)
		return nil

	case schema.KindU64:
		v, err := r.ReadU64()
		if err != nil {
			return err
		}
		*(*uint64)(ptr) = v
		return nil

	case schema.KindS64:
		v, err := r.ReadU64()
		if err != nil {
			return err
		}
		*(*int64)(ptr) = int64(v)
		return nil

	case schema.KindF32:
		v, err := r.ReadU32()
		if err != nil {
			return err
		}
		*(*float32)(ptr) = math.Float32frombits(v)
		return nil

	case schema.KindF64:
		v, err := r.ReadU64()
		if err != nil {
			return err
		}
		*(*float64)(ptr) = math.Float64frombits(v)
		return nil

	case schema.KindRecord:
		return d.decodeRecord(ct, ptr, r, path)

	case schema.KindArray:
		return d.decodeArray(ct, ptr, r, path)

	default:
		return errors.Unsupported(errors.PhaseDecode, "wire kind "+ct.Kind.String())
	}
}

func (d *Decoder) decodeRecord(ct *schema.CompiledType, ptr unsafe.Pointer, r objwire.Reader, path []string) error {
	// A fixed record either has its full width available or fails before
	// any field is populated.
	if ct.Fixed {
		if err := r.Ensure(int(ct.WireSize)); err != nil {
			return err
		}
	}

	for i := range ct.Fields {
		f := &ct.Fields[i]
		if err := d.decodeValue(f.Type, unsafe.Add(ptr, f.GoOffset), r, append(path, f.Name)); err != nil {
			return err
		}
	}
	return nil
}

func (d *Decoder) decodeArray(ct *schema.CompiledType, ptr unsafe.Pointer, r objwire.Reader, path []string) error {
	count, err := r.ReadU32()
	if err != nil {
		return err
	}
	if count > MaxSequenceLength {
		return errors.New(errors.PhaseDecode, errors.KindMalformedData).
			Path(path...).
			Detail("count %d exceeds sequence limit %d", count, MaxSequenceLength).
			Build()
	}

	// The capacity check precedes any element decode so that an oversized
	// payload never writes into the destination's reserved storage.
	sh := (*sliceHeader)(ptr)
	if int(count) > sh.Cap {
		return errors.CapacityExceeded(path, int(count), sh.Cap)
	}

	elem := ct.ElemType
	need, ok := safeMulU32(count, elem.WireSize)
	if !ok {
		return errors.Overflow(errors.PhaseDecode, path, "sequence byte size overflows u32")
	}
	if err := r.Ensure(int(need)); err != nil {
		return err
	}

	for i := uint32(0); i < count; i++ {
		elemPtr := unsafe.Add(sh.Data, uintptr(i)*elem.GoSize)
		if err := d.decodeValue(elem, elemPtr, r, path); err != nil {
			return err
		}
	}

	sh.Len = int(count)
	return nil
}
