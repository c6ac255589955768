package arrayfunc

import (
	"fmt"

	"github.com/m1griffin/arrayfunc-sub006/internal/kernel"
)

// Sub computes left - right element-wise.
//
// Accepted operand patterns, each optionally followed by MathErrors and/or
// MaxLen:
//
//	Sub(array, scalar)          // array[i] = array[i] - scalar
//	Sub(scalar, array)          // array[i] = scalar - array[i]
//	Sub(array, scalar, out)     // out[i] = array[i] - scalar
//	Sub(scalar, array, out)     // out[i] = scalar - array[i]
//	Sub(array1, array2)         // array1[i] = array1[i] - array2[i]
//	Sub(array1, array2, out)    // out[i] = array1[i] - array2[i]
//
// Options must come after every operand; an Option in an operand position
// fails with ErrArgumentCount.
//
// All arrays must share one TypeCode. The number of elements processed is
// the length of the shortest array, further limited by MaxLen. Elements past
// that length are not modified.
//
// In checked mode (the default) an integer result outside the type's range
// stops processing with a *FaultError wrapping ErrOverflow, and a NaN or
// infinite operand or result stops it with one wrapping ErrArithmetic.
// Elements before the fault keep their new values. MathErrors(true)
// disables those checks.
func Sub(args ...any) error {
	return run(kernel.OpSub, args)
}

// Add computes left + right element-wise. It accepts the same operand
// patterns and options as Sub.
func Add(args ...any) error {
	return run(kernel.OpAdd, args)
}

// Mul computes left * right element-wise. It accepts the same operand
// patterns and options as Sub.
func Mul(args ...any) error {
	return run(kernel.OpMul, args)
}

// MakeArray returns a zeroed array of n elements of the given code.
func MakeArray(code TypeCode, n int) (Buffer, error) {
	b, err := lookup(code)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrLength, n)
	}
	return b.makeArray(n), nil
}

// ParseScalar parses a base-10 value of the given code. The result has the
// Go type backing code and can be passed as a scalar operand.
func ParseScalar(code TypeCode, s string) (any, error) {
	b, err := lookup(code)
	if err != nil {
		return nil, err
	}
	return b.parseScalar(s)
}

// ParseArray parses each field as a value of code and returns the array.
func ParseArray(code TypeCode, fields []string) (Buffer, error) {
	b, err := lookup(code)
	if err != nil {
		return nil, err
	}
	return b.parseArray(fields)
}

// Limits returns the smallest and largest finite values of code in base 10.
func Limits(code TypeCode) (minVal, maxVal string, err error) {
	b, err := lookup(code)
	if err != nil {
		return "", "", err
	}
	return b.minStr, b.maxStr, nil
}

func lookup(code TypeCode) (*binding, error) {
	b, ok := bindings[code]
	if !ok {
		return nil, fmt.Errorf("%w: unknown type code %v", ErrTypeMismatch, code)
	}
	return b, nil
}
