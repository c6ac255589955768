package arrayfunc

import (
	"fmt"
	"reflect"
)

// TypeCode identifies the fixed-width element representation of a buffer.
// The codes follow the single-character convention of typed-array modules.
type TypeCode byte

const (
	TypeInt8   TypeCode = 'b'
	TypeUint8  TypeCode = 'B'
	TypeInt16  TypeCode = 'h'
	TypeUint16 TypeCode = 'H'
	// TypeInt and TypeUint are the C "int" width (32-bit).
	TypeInt  TypeCode = 'i'
	TypeUint TypeCode = 'I'
	// TypeLong and TypeULong are the C "long" width. They are 64-bit here
	// but remain distinct codes from TypeInt64 and TypeUint64.
	TypeLong    TypeCode = 'l'
	TypeULong   TypeCode = 'L'
	TypeInt64   TypeCode = 'q'
	TypeUint64  TypeCode = 'Q'
	TypeFloat32 TypeCode = 'f'
	TypeFloat64 TypeCode = 'd'
)

type typeInfo struct {
	name   string
	kind   reflect.Kind
	size   int
	signed bool
	float  bool
}

var typeInfos = map[TypeCode]typeInfo{
	TypeInt8:    {"int8", reflect.Int8, 1, true, false},
	TypeUint8:   {"uint8", reflect.Uint8, 1, false, false},
	TypeInt16:   {"int16", reflect.Int16, 2, true, false},
	TypeUint16:  {"uint16", reflect.Uint16, 2, false, false},
	TypeInt:     {"int", reflect.Int32, 4, true, false},
	TypeUint:    {"uint", reflect.Uint32, 4, false, false},
	TypeLong:    {"long", reflect.Int64, 8, true, false},
	TypeULong:   {"ulong", reflect.Uint64, 8, false, false},
	TypeInt64:   {"int64", reflect.Int64, 8, true, false},
	TypeUint64:  {"uint64", reflect.Uint64, 8, false, false},
	TypeFloat32: {"float32", reflect.Float32, 4, true, true},
	TypeFloat64: {"float64", reflect.Float64, 8, true, true},
}

// defaultCodes maps a Go element kind to the code Of assigns it.
var defaultCodes = map[reflect.Kind]TypeCode{
	reflect.Int8:    TypeInt8,
	reflect.Uint8:   TypeUint8,
	reflect.Int16:   TypeInt16,
	reflect.Uint16:  TypeUint16,
	reflect.Int32:   TypeInt,
	reflect.Uint32:  TypeUint,
	reflect.Int64:   TypeInt64,
	reflect.Uint64:  TypeUint64,
	reflect.Float32: TypeFloat32,
	reflect.Float64: TypeFloat64,
}

// TypeCodes returns every supported code in a stable order.
func TypeCodes() []TypeCode {
	return []TypeCode{
		TypeInt8, TypeUint8, TypeInt16, TypeUint16, TypeInt, TypeUint,
		TypeLong, TypeULong, TypeInt64, TypeUint64, TypeFloat32, TypeFloat64,
	}
}

// ParseTypeCode returns the code named by s, which is either the
// single-character code ("b") or the type name ("int8").
func ParseTypeCode(s string) (TypeCode, error) {
	if len(s) == 1 && TypeCode(s[0]).Valid() {
		return TypeCode(s[0]), nil
	}
	for code, info := range typeInfos {
		if info.name == s {
			return code, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown type code %q", ErrTypeMismatch, s)
}

// Valid reports whether c is a supported code.
func (c TypeCode) Valid() bool {
	_, ok := typeInfos[c]
	return ok
}

// String returns the single-character code.
func (c TypeCode) String() string {
	if !c.Valid() {
		return fmt.Sprintf("TypeCode(%d)", byte(c))
	}
	return string(rune(c))
}

// Name returns the element type name, e.g. "int8".
func (c TypeCode) Name() string {
	return typeInfos[c].name
}

// Size returns the element width in bytes, or 0 for an invalid code.
func (c TypeCode) Size() int {
	return typeInfos[c].size
}

// IsFloat reports whether c is a floating-point code.
func (c TypeCode) IsFloat() bool {
	return typeInfos[c].float
}

// IsSigned reports whether c can represent negative values.
func (c TypeCode) IsSigned() bool {
	return typeInfos[c].signed
}
