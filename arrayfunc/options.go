package arrayfunc

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"github.com/samber/lo"
)

const (
	optMathErrors = "matherrors"
	optMaxLen     = "maxlen"

	// maxOptions is the number of distinct named options a call accepts.
	maxOptions = 2
)

// Option is a named call option. Pass options after the operands:
//
//	err := arrayfunc.Sub(a, 5, arrayfunc.MaxLen(3), arrayfunc.MathErrors(true))
type Option struct {
	name  string
	apply func(*options) error
}

// Name returns the option's keyword.
func (o Option) Name() string {
	return o.name
}

type options struct {
	// mathErrors selects unchecked arithmetic.
	mathErrors bool
	// maxLen caps the effective length when positive.
	maxLen int
}

// MathErrors disables overflow, underflow and NaN/Inf detection when ignore
// is true. Integer results then wrap and floating-point results follow
// IEEE-754.
func MathErrors(ignore bool) Option {
	return Option{
		name: optMathErrors,
		apply: func(o *options) error {
			o.mathErrors = ignore
			return nil
		},
	}
}

// MaxLen limits processing to the first n elements. Zero, or a value at
// least as large as the arrays, leaves the length unchanged. Negative
// values are rejected with ErrTypeMismatch.
func MaxLen(n int) Option {
	return Option{
		name: optMaxLen,
		apply: func(o *options) error {
			if n < 0 {
				return fmt.Errorf("%w: %s must not be negative, got %d", ErrTypeMismatch, optMaxLen, n)
			}
			o.maxLen = n
			return nil
		},
	}
}

// ParseOptions converts keyword options into Options. Keys are "matherrors"
// (bool or a string strconv.ParseBool accepts) and "maxlen" (an integer or
// a base-10 string). Ill-typed values fail with ErrTypeMismatch and unknown
// keys with ErrArgumentCount.
func ParseOptions(kwargs map[string]any) ([]Option, error) {
	keys := lo.Keys(kwargs)
	slices.Sort(keys)

	opts := make([]Option, 0, len(keys))
	for _, key := range keys {
		val := kwargs[key]
		switch key {
		case optMathErrors:
			b, err := parseBoolOption(key, val)
			if err != nil {
				return nil, err
			}
			opts = append(opts, MathErrors(b))
		case optMaxLen:
			n, err := parseIntOption(key, val)
			if err != nil {
				return nil, err
			}
			opts = append(opts, MaxLen(n))
		default:
			return nil, fmt.Errorf("%w: unexpected option %q", ErrArgumentCount, key)
		}
	}
	return opts, nil
}

func parseBoolOption(key string, val any) (bool, error) {
	switch v := val.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("%w: %s must be a boolean, got %q", ErrTypeMismatch, key, v)
		}
		return b, nil
	default:
		return false, fmt.Errorf("%w: %s must be a boolean, got %T", ErrTypeMismatch, key, val)
	}
}

func parseIntOption(key string, val any) (int, error) {
	if s, ok := val.(string); ok {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrTypeMismatch, key, s)
		}
		return n, nil
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > uint64(int(^uint(0)>>1)) {
			return 0, fmt.Errorf("%w: %s %d out of range", ErrTypeMismatch, key, u)
		}
		return int(u), nil
	default:
		return 0, fmt.Errorf("%w: %s must be an integer, got %T", ErrTypeMismatch, key, val)
	}
}

// applyOptions folds opts into an options value. Each option may appear
// at most once.
func applyOptions(opts []Option) (options, error) {
	var o options
	if len(opts) > maxOptions {
		return o, fmt.Errorf("%w: at most %d options, got %d", ErrArgumentCount, maxOptions, len(opts))
	}
	seen := make(map[string]bool, len(opts))
	for _, opt := range opts {
		if opt.apply == nil {
			return o, fmt.Errorf("%w: zero Option value", ErrTypeMismatch)
		}
		if seen[opt.name] {
			return o, fmt.Errorf("%w: option %q given more than once", ErrArgumentCount, opt.name)
		}
		seen[opt.name] = true
		if err := opt.apply(&o); err != nil {
			return o, err
		}
	}
	return o, nil
}
