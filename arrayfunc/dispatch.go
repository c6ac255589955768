// Copyright 2025 arrayfunc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arrayfunc

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"unsafe"

	"github.com/m1griffin/arrayfunc-sub006/internal/kernel"
	"github.com/m1griffin/arrayfunc-sub006/internal/wide"
	"github.com/samber/lo"
)

// call is the validated form of one arithmetic function invocation.
type call struct {
	op    kernel.Op
	shape kernel.Shape
	code  TypeCode
	// left and right are Buffers or raw scalars, according to shape.
	left, right any
	// out is nil for in-place calls.
	out  Buffer
	n    int
	opts options
}

// routine executes a call for one (type code, shape) pair.
type routine func(c *call) error

// binding holds everything bound to one type code: its routines, limits
// and text codecs.
type binding struct {
	routines    [3]routine
	minStr      string
	maxStr      string
	makeArray   func(n int) Buffer
	parseScalar func(s string) (any, error)
	parseArray  func(fields []string) (Buffer, error)
}

var shapes = [...]kernel.Shape{kernel.ArrayScalar, kernel.ScalarArray, kernel.ArrayArray}

// bindings is the dispatch table. It is built once during package
// initialisation and only read afterwards.
var bindings = map[TypeCode]*binding{
	TypeInt8:    bindInteger[int8](TypeInt8),
	TypeUint8:   bindInteger[uint8](TypeUint8),
	TypeInt16:   bindInteger[int16](TypeInt16),
	TypeUint16:  bindInteger[uint16](TypeUint16),
	TypeInt:     bindInteger[int32](TypeInt),
	TypeUint:    bindInteger[uint32](TypeUint),
	TypeLong:    bindInteger[int64](TypeLong),
	TypeULong:   bindInteger[uint64](TypeULong),
	TypeInt64:   bindInteger[int64](TypeInt64),
	TypeUint64:  bindInteger[uint64](TypeUint64),
	TypeFloat32: bindFloat[float32](TypeFloat32),
	TypeFloat64: bindFloat[float64](TypeFloat64),
}

// typed carries the per-type operand conversions used by a routine.
type typed[T Element] struct {
	code   TypeCode
	scalar func(v any) (T, error)
}

func bindInteger[T IntElement](code TypeCode) *binding {
	lim := kernel.LimitsOf[T]()
	t := typed[T]{code: code, scalar: integerScalar[T](code, lim)}

	b := newBinding(code, parseInteger[T])
	b.minStr, b.maxStr = lim.Min.String(), lim.Max.String()
	for _, shape := range shapes {
		b.routines[shape] = func(c *call) error {
			left, right, dst, err := t.operands(c, shape)
			if err != nil {
				return err
			}
			f := kernel.Integer(c.op, dst, left, right, c.n, lim, !c.opts.mathErrors)
			return newFaultError(c.op, code, f)
		}
	}
	return b
}

func bindFloat[T FloatElement](code TypeCode) *binding {
	t := typed[T]{code: code, scalar: floatScalar[T](code)}

	b := newBinding(code, parseFloat[T])
	var zero T
	maxVal := math.MaxFloat64
	if unsafe.Sizeof(zero) == 4 {
		maxVal = math.MaxFloat32
	}
	bits := 8 * int(unsafe.Sizeof(zero))
	b.minStr = strconv.FormatFloat(-maxVal, 'g', -1, bits)
	b.maxStr = strconv.FormatFloat(maxVal, 'g', -1, bits)
	for _, shape := range shapes {
		b.routines[shape] = func(c *call) error {
			left, right, dst, err := t.operands(c, shape)
			if err != nil {
				return err
			}
			f := kernel.Float(c.op, dst, left, right, c.n, !c.opts.mathErrors)
			return newFaultError(c.op, code, f)
		}
	}
	return b
}

func newBinding[T Element](code TypeCode, parse func(code TypeCode, s string) (T, error)) *binding {
	return &binding{
		makeArray: func(n int) Buffer {
			return &Array[T]{code: code, data: make([]T, n)}
		},
		parseScalar: func(s string) (any, error) {
			return parse(code, s)
		},
		parseArray: func(fields []string) (Buffer, error) {
			data := make([]T, len(fields))
			for i, f := range fields {
				v, err := parse(code, f)
				if err != nil {
					return nil, fmt.Errorf("element %d: %w", i, err)
				}
				data[i] = v
			}
			return &Array[T]{code: code, data: data}, nil
		},
	}
}

// operands resolves a call's operands to typed slices and scalars. dst is
// the output array when one was given, otherwise the first array operand.
func (t typed[T]) operands(c *call, shape kernel.Shape) (left, right kernel.Operand[T], dst []T, err error) {
	switch shape {
	case kernel.ArrayScalar:
		a, err := t.array(c.left)
		if err != nil {
			return left, right, nil, err
		}
		s, err := t.scalar(c.right)
		if err != nil {
			return left, right, nil, err
		}
		left, right, dst = kernel.Array(a), kernel.Scalar(s), a
	case kernel.ScalarArray:
		s, err := t.scalar(c.left)
		if err != nil {
			return left, right, nil, err
		}
		a, err := t.array(c.right)
		if err != nil {
			return left, right, nil, err
		}
		left, right, dst = kernel.Scalar(s), kernel.Array(a), a
	case kernel.ArrayArray:
		a1, err := t.array(c.left)
		if err != nil {
			return left, right, nil, err
		}
		a2, err := t.array(c.right)
		if err != nil {
			return left, right, nil, err
		}
		left, right, dst = kernel.Array(a1), kernel.Array(a2), a1
	default:
		return left, right, nil, fmt.Errorf("%w: %v", ErrInvalidShape, shape)
	}

	if c.out != nil {
		if dst, err = t.array(c.out); err != nil {
			return left, right, nil, err
		}
	}
	return left, right, dst, nil
}

func (t typed[T]) array(v any) ([]T, error) {
	a, ok := v.(*Array[T])
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a '%s' array", ErrTypeMismatch, v, t.code)
	}
	return a.data, nil
}

// integerScalar converts Go integers of any width to T. Values outside T's
// range fail with ErrOverflow; floats and non-numeric values fail with
// ErrTypeMismatch.
func integerScalar[T IntElement](code TypeCode, lim kernel.Limits) func(v any) (T, error) {
	return func(v any) (T, error) {
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			x := rv.Int()
			if lim.Check(wide.FromInt64(x)) != kernel.FaultNone {
				return 0, fmt.Errorf("%w: scalar %d out of range for '%s' array", ErrOverflow, x, code)
			}
			return T(x), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			x := rv.Uint()
			if lim.Check(wide.FromUint64(x)) != kernel.FaultNone {
				return 0, fmt.Errorf("%w: scalar %d out of range for '%s' array", ErrOverflow, x, code)
			}
			return T(x), nil
		case reflect.Float32, reflect.Float64:
			return 0, fmt.Errorf("%w: floating-point scalar for '%s' array", ErrTypeMismatch, code)
		default:
			return 0, fmt.Errorf("%w: %T is not a numeric scalar", ErrTypeMismatch, v)
		}
	}
}

// floatScalar converts any Go number to T. Conversion rounds to nearest;
// a float64 beyond float32 range becomes an infinity.
func floatScalar[T FloatElement](code TypeCode) func(v any) (T, error) {
	return func(v any) (T, error) {
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return T(rv.Int()), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return T(rv.Uint()), nil
		case reflect.Float32, reflect.Float64:
			return T(rv.Float()), nil
		default:
			return 0, fmt.Errorf("%w: %T is not a numeric scalar for '%s' array", ErrTypeMismatch, v, code)
		}
	}
}

func parseInteger[T IntElement](code TypeCode, s string) (T, error) {
	bits := 8 * code.Size()
	if code.IsSigned() {
		v, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return 0, numError(code, s, err)
		}
		return T(v), nil
	}
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		if _, serr := strconv.ParseInt(s, 10, 64); serr == nil {
			// A well-formed negative value is below the unsigned range.
			err = strconv.ErrRange
		}
		return 0, numError(code, s, err)
	}
	return T(v), nil
}

func parseFloat[T FloatElement](code TypeCode, s string) (T, error) {
	v, err := strconv.ParseFloat(s, 8*code.Size())
	if err != nil {
		return 0, numError(code, s, err)
	}
	return T(v), nil
}

func numError(code TypeCode, s string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %q out of range for '%s'", ErrOverflow, s, code)
	}
	return fmt.Errorf("%w: %q is not a valid '%s' value", ErrTypeMismatch, s, code)
}

// parseCall validates args against the calling convention:
//
//	op(array, scalar [, out])
//	op(scalar, array [, out])
//	op(array1, array2 [, out])
//
// followed by up to two Options. Checks run in order: argument count,
// options, shape, type codes, lengths.
func parseCall(op kernel.Op, args []any) (*call, error) {
	isOption := func(a any) bool {
		_, ok := a.(Option)
		return ok
	}
	_, first, found := lo.FindIndexOf(args, isOption)
	if !found {
		first = len(args)
	}
	operands, trailing := args[:first], args[first:]
	if !lo.EveryBy(trailing, isOption) {
		return nil, fmt.Errorf("%w: options must follow the operands", ErrArgumentCount)
	}
	opts := lo.Map(trailing, func(a any, _ int) Option {
		return a.(Option)
	})

	if len(operands) < 2 || len(operands) > 3 {
		return nil, fmt.Errorf("%w: %s takes 2 or 3 operands, got %d", ErrArgumentCount, op, len(operands))
	}
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	c := &call{op: op, left: operands[0], right: operands[1], opts: o}
	lb, lok := operands[0].(Buffer)
	rb, rok := operands[1].(Buffer)
	var bound []Buffer
	switch {
	case lok && rok:
		c.shape, c.code = kernel.ArrayArray, lb.Code()
		bound = append(bound, lb, rb)
	case lok:
		c.shape, c.code = kernel.ArrayScalar, lb.Code()
		bound = append(bound, lb)
	case rok:
		c.shape, c.code = kernel.ScalarArray, rb.Code()
		bound = append(bound, rb)
	default:
		return nil, fmt.Errorf("%w: %s needs at least one array operand", ErrInvalidShape, op)
	}

	if len(operands) == 3 {
		ob, ok := operands[2].(Buffer)
		if !ok {
			return nil, fmt.Errorf("%w: output operand must be an array, got %T", ErrInvalidShape, operands[2])
		}
		c.out = ob
		bound = append(bound, ob)
	}

	if !c.code.Valid() {
		return nil, fmt.Errorf("%w: array has invalid type code", ErrTypeMismatch)
	}
	for _, b := range bound[1:] {
		if b.Code() != c.code {
			return nil, fmt.Errorf("%w: '%s' array mixed with '%s' array", ErrTypeMismatch, c.code, b.Code())
		}
	}

	lengths := lo.Map(bound, func(b Buffer, _ int) int { return b.Len() })
	c.n = lo.Min(lengths)
	if c.n == 0 {
		return nil, fmt.Errorf("%w: %s on an empty array", ErrLength, op)
	}
	if o.maxLen > 0 && o.maxLen < c.n {
		c.n = o.maxLen
	}
	return c, nil
}

// selectRoutine returns the routine compiled for code and shape.
func selectRoutine(code TypeCode, shape kernel.Shape) (routine, error) {
	b, err := lookup(code)
	if err != nil {
		return nil, err
	}
	if shape < 0 || int(shape) >= len(b.routines) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShape, shape)
	}
	return b.routines[shape], nil
}

func run(op kernel.Op, args []any) error {
	c, err := parseCall(op, args)
	if err != nil {
		return err
	}
	r, err := selectRoutine(c.code, c.shape)
	if err != nil {
		return err
	}
	logger.Load().logDispatch(context.Background(), c)
	return r(c)
}
