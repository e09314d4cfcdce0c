package schema

import (
	"reflect"
	"sync"

	"github.com/objwire/objwire/errors"
)

// Compiler turns Go types into CompiledType layouts. Compiled layouts are
// cached per reflect.Type, so repeated encode/decode calls share one layout.
type Compiler struct {
	cache sync.Map // reflect.Type -> *CompiledType
}

func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile returns the wire layout for goType. Pointer types compile to the
// layout of their element so that callers can pass either T or *T.
func (c *Compiler) Compile(goType reflect.Type) (*CompiledType, error) {
	if goType == nil {
		return nil, errors.NilPointer(errors.PhaseCompile, nil, "")
	}

	if goType.Kind() == reflect.Pointer {
		goType = goType.Elem()
	}

	if cached, ok := c.cache.Load(goType); ok {
		return cached.(*CompiledType), nil
	}

	ct, err := c.compile(goType, nil)
	if err != nil {
		return nil, err
	}

	c.cache.Store(goType, ct)
	return ct, nil
}

var scalarKinds = map[reflect.Kind]Kind{
	reflect.Bool:    KindBool,
	reflect.Uint8:   KindU8,
	reflect.Int8:    KindS8,
	reflect.Uint16:  KindU16,
	reflect.Int16:   KindS16,
	reflect.Uint32:  KindU32,
	reflect.Int32:   KindS32,
	reflect.Uint64:  KindU64,
	reflect.Int64:   KindS64,
	reflect.Float32: KindF32,
	reflect.Float64: KindF64,
}

func (c *Compiler) compile(goType reflect.Type, path []string) (*CompiledType, error) {
	if kind, ok := scalarKinds[goType.Kind()]; ok {
		return &CompiledType{
			GoType:    goType,
			GoSize:    goType.Size(),
			WireSize:  kind.WireWidth(),
			FlatCount: 1,
			Kind:      kind,
			Fixed:     true,
		}, nil
	}

	switch goType.Kind() {
	case reflect.Struct:
		return c.compileRecord(goType, path)
	case reflect.Slice:
		return c.compileArray(goType, path)
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
			Path(path...).
			GoType(goType.String()).
			Detail("platform-width integers have no fixed wire width; use a sized type").
			Build()
	default:
		return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
			Path(path...).
			GoType(goType.String()).
			Detail("unsupported Go kind %s", goType.Kind()).
			Build()
	}
}

func (c *Compiler) compileRecord(goType reflect.Type, path []string) (*CompiledType, error) {
	n := goType.NumField()
	fields := make([]Field, 0, n)
	fixed := true
	var wireSize uint32
	flatCount := 0

	for i := 0; i < n; i++ {
		goField := goType.Field(i)
		if !goField.IsExported() {
			return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
				Path(path...).
				GoType(goType.String()).
				Detail("unexported field %q cannot be part of the wire format", goField.Name).
				Build()
		}

		fieldPath := append(append([]string{}, path...), goField.Name)
		fieldType, err := c.compile(goField.Type, fieldPath)
		if err != nil {
			return nil, err
		}

		if fieldType.Fixed {
			wireSize += fieldType.WireSize
		} else {
			fixed = false
		}
		flatCount += fieldType.FlatCount

		fields = append(fields, Field{
			Type:     fieldType,
			Name:     goField.Name,
			GoOffset: goField.Offset,
		})
	}

	return &CompiledType{
		GoType:    goType,
		GoSize:    goType.Size(),
		WireSize:  wireSize,
		FlatCount: flatCount,
		Fields:    fields,
		Kind:      KindRecord,
		Fixed:     fixed,
	}, nil
}

func (c *Compiler) compileArray(goType reflect.Type, path []string) (*CompiledType, error) {
	elemPath := append(append([]string{}, path...), "[]")
	elemType, err := c.compile(goType.Elem(), elemPath)
	if err != nil {
		return nil, err
	}

	// Elements must have a declaration-fixed width: runs do not nest.
	if !elemType.Fixed {
		return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
			Path(path...).
			GoType(goType.String()).
			Detail("array elements must be fixed-size").
			Build()
	}

	return &CompiledType{
		GoType:   goType,
		GoSize:   goType.Size(),
		ElemType: elemType,
		Kind:     KindArray,
		Fixed:    false,
	}, nil
}
