package arrayfunc

import (
	"errors"
	"fmt"

	"github.com/m1griffin/arrayfunc-sub006/internal/kernel"
)

var (
	// ErrArgumentCount is returned when a call has too few or too many
	// operands or options.
	ErrArgumentCount = errors.New("arrayfunc: wrong number of arguments")

	// ErrInvalidShape is returned when neither primary operand is an array or
	// the output position holds something other than an array.
	ErrInvalidShape = errors.New("arrayfunc: invalid operand shape")

	// ErrTypeMismatch is returned when operands, the output array or option
	// values have incompatible types.
	ErrTypeMismatch = errors.New("arrayfunc: type mismatch")

	// ErrLength is returned when a bound array has no elements.
	ErrLength = errors.New("arrayfunc: array length error")

	// ErrOverflow is returned when an integer result or scalar does not fit
	// the element type.
	ErrOverflow = errors.New("arrayfunc: arithmetic overflow")

	// ErrArithmetic is returned when a floating-point operation involves NaN
	// or an infinity.
	ErrArithmetic = errors.New("arrayfunc: arithmetic error")
)

// FaultKind classifies an arithmetic fault.
type FaultKind = kernel.FaultKind

const (
	FaultOverflow        = kernel.FaultOverflow
	FaultUnderflow       = kernel.FaultUnderflow
	FaultNonFiniteInput  = kernel.FaultNonFiniteInput
	FaultNonFiniteResult = kernel.FaultNonFiniteResult
)

// FaultError reports the first element at which a checked operation failed.
// Elements before Index were written with correct results; the element at
// Index and those after it were not written.
//
// It unwraps to ErrOverflow for integer faults and ErrArithmetic for
// floating-point faults.
type FaultError struct {
	Op    string
	Code  TypeCode
	Index int
	Kind  FaultKind
	cause error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("%v: %s on '%s' array: %s at index %d", e.cause, e.Op, e.Code, e.Kind, e.Index)
}

func (e *FaultError) Unwrap() error { return e.cause }

func newFaultError(op kernel.Op, code TypeCode, f kernel.Fault) error {
	if f.OK() {
		return nil
	}
	cause := ErrOverflow
	if f.Kind == kernel.FaultNonFiniteInput || f.Kind == kernel.FaultNonFiniteResult {
		cause = ErrArithmetic
	}
	return &FaultError{
		Op:    op.String(),
		Code:  code,
		Index: f.Index,
		Kind:  f.Kind,
		cause: cause,
	}
}
