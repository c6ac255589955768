package arrayfunc

import (
	"fmt"
	"reflect"
)

// Buffer is a flat numeric array bound to one TypeCode for its lifetime.
// The only implementation is *Array[T].
type Buffer interface {
	// Code returns the element type code.
	Code() TypeCode
	// Len returns the number of elements.
	Len() int
	String() string

	buffer()
}

// IntElement is the set of Go integer types an Array can hold. Named types
// are excluded so every element type maps to exactly one dispatch routine.
type IntElement interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64
}

// FloatElement is the set of Go floating-point types an Array can hold.
type FloatElement interface {
	float32 | float64
}

// Element is the set of Go types an Array can hold.
type Element interface {
	IntElement | FloatElement
}

// Array is a typed buffer. Arithmetic functions read and write Data in
// place; the slice is never reallocated.
type Array[T Element] struct {
	code TypeCode
	data []T
}

// NewArray binds data to code. It fails with ErrTypeMismatch if T does not
// have the width and kind code describes; TypeLong data must be []int64,
// for example.
func NewArray[T Element](code TypeCode, data []T) (*Array[T], error) {
	info, ok := typeInfos[code]
	if !ok {
		return nil, fmt.Errorf("%w: unknown type code %v", ErrTypeMismatch, code)
	}
	if k := kindOf[T](); k != info.kind {
		return nil, fmt.Errorf("%w: %s elements cannot back a '%s' array", ErrTypeMismatch, k, code)
	}
	return &Array[T]{code: code, data: data}, nil
}

// Of binds data to the default code for T: int32 maps to TypeInt and int64
// to TypeInt64. Use NewArray for TypeLong and TypeULong.
func Of[T Element](data []T) *Array[T] {
	return &Array[T]{code: defaultCodes[kindOf[T]()], data: data}
}

// Code returns the element type code. A nil array has an invalid code.
func (a *Array[T]) Code() TypeCode {
	if a == nil {
		return 0
	}
	return a.code
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return len(a.data)
}

// Data returns the underlying slice.
func (a *Array[T]) Data() []T {
	if a == nil {
		return nil
	}
	return a.data
}

// String formats the array as its code followed by its elements.
func (a *Array[T]) String() string {
	return fmt.Sprintf("%s%v", a.Code(), a.Data())
}

func (a *Array[T]) buffer() {}

func kindOf[T Element]() reflect.Kind {
	var zero T
	return reflect.TypeOf(zero).Kind()
}
