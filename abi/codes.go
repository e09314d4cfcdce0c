package abi

import (
	"github.com/objwire/objwire/errors"
)

// Code is a signed ABI result. Non-negative values are byte counts;
// negative values identify the failure by magnitude. The enumeration is
// total: every error the engine can produce maps to exactly one code.
type Code int32

const (
	CodeOK               Code = 0
	CodeOutOfSpace       Code = -1
	CodeCapacityExceeded Code = -2
	CodeMalformedData    Code = -3
	CodeInvalidArgument  Code = -4
	CodeUnsupportedType  Code = -5
	CodeInternal         Code = -6
)

var codeNames = map[Code]string{
	CodeOK:               "ok",
	CodeOutOfSpace:       "out_of_space",
	CodeCapacityExceeded: "capacity_exceeded",
	CodeMalformedData:    "malformed_data",
	CodeInvalidArgument:  "invalid_argument",
	CodeUnsupportedType:  "unsupported_type",
	CodeInternal:         "internal",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	if c > 0 {
		return "ok"
	}
	return "unknown"
}

// CodeOf maps a codec error to its ABI code. Foreign errors fold into
// CodeInternal rather than panic.
func CodeOf(err error) Code {
	if err == nil {
		return CodeOK
	}
	switch errors.KindOf(err) {
	case errors.KindOutOfSpace:
		return CodeOutOfSpace
	case errors.KindCapacityExceeded:
		return CodeCapacityExceeded
	case errors.KindMalformedData, errors.KindOverflow:
		return CodeMalformedData
	case errors.KindNilPointer, errors.KindInvalidInput:
		return CodeInvalidArgument
	case errors.KindUnsupported, errors.KindTypeMismatch:
		return CodeUnsupportedType
	default:
		return CodeInternal
	}
}
