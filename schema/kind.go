package schema

type Kind uint8

const (
	KindBool Kind = iota
	KindU8
	KindS8
	KindU16
	KindS16
	KindU32
	KindS32
	KindU64
	KindS64
	KindF32
	KindF64
	KindRecord
	KindArray
)

var kindNames = [...]string{
	KindBool:   "bool",
	KindU8:     "u8",
	KindS8:     "s8",
	KindU16:    "u16",
	KindS16:    "s16",
	KindU32:    "u32",
	KindS32:    "s32",
	KindU64:    "u64",
	KindS64:    "s64",
	KindF32:    "f32",
	KindF64:    "f64",
	KindRecord: "record",
	KindArray:  "array",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

func (k Kind) IsScalar() bool {
	return k <= KindF64
}

var scalarWidths = [...]uint32{
	KindBool: 1,
	KindU8:   1,
	KindS8:   1,
	KindU16:  2,
	KindS16:  2,
	KindU32:  4,
	KindS32:  4,
	KindU64:  8,
	KindS64:  8,
	KindF32:  4,
	KindF64:  8,
}

// WireWidth returns the encoded byte width of a scalar kind, or 0 for
// composite kinds.
func (k Kind) WireWidth() uint32 {
	if k.IsScalar() {
		return scalarWidths[k]
	}
	return 0
}
