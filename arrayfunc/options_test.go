package arrayfunc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions(map[string]any{"maxlen": "3", "matherrors": "true"})
	require.NoError(t, err)
	require.Len(t, opts, 2)
	// Keys are applied in sorted order.
	assert.Equal(t, "matherrors", opts[0].Name())
	assert.Equal(t, "maxlen", opts[1].Name())

	o, err := applyOptions(opts)
	require.NoError(t, err)
	assert.Equal(t, options{mathErrors: true, maxLen: 3}, o)

	for _, v := range []any{7, int8(7), uint16(7), uint64(7), "7"} {
		opts, err := ParseOptions(map[string]any{"maxlen": v})
		require.NoError(t, err, "%T", v)
		o, err := applyOptions(opts)
		require.NoError(t, err)
		assert.Equal(t, 7, o.maxLen, "%T", v)
	}

	opts, err = ParseOptions(nil)
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestParseOptionsErrors(t *testing.T) {
	tests := []struct {
		name   string
		kwargs map[string]any
		want   error
	}{
		{"unknown key", map[string]any{"length": 3}, ErrArgumentCount},
		{"maxlen float", map[string]any{"maxlen": 1.5}, ErrTypeMismatch},
		{"maxlen text", map[string]any{"maxlen": "three"}, ErrTypeMismatch},
		{"maxlen huge", map[string]any{"maxlen": uint64(1 << 63)}, ErrTypeMismatch},
		{"matherrors int", map[string]any{"matherrors": 1}, ErrTypeMismatch},
		{"matherrors text", map[string]any{"matherrors": "maybe"}, ErrTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOptions(tt.kwargs)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNegativeMaxLen(t *testing.T) {
	opts, err := ParseOptions(map[string]any{"maxlen": -1})
	require.NoError(t, err)
	_, err = applyOptions(opts)
	require.ErrorIs(t, err, ErrTypeMismatch)

	a := Of([]int8{1, 2})
	require.ErrorIs(t, Sub(a, 1, MaxLen(-1)), ErrTypeMismatch)
	assert.Equal(t, []int8{1, 2}, a.Data())
}

func TestTypeCodes(t *testing.T) {
	codes := TypeCodes()
	require.Len(t, codes, 12)
	seen := map[TypeCode]bool{}
	for _, c := range codes {
		assert.True(t, c.Valid(), "%v", c)
		assert.False(t, seen[c], "duplicate %v", c)
		seen[c] = true

		byChar, err := ParseTypeCode(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, byChar)
		byName, err := ParseTypeCode(c.Name())
		require.NoError(t, err)
		assert.Equal(t, c, byName)
	}

	assert.Equal(t, "l", TypeLong.String())
	assert.Equal(t, "long", TypeLong.Name())
	assert.Equal(t, 8, TypeLong.Size())
	assert.True(t, TypeLong.IsSigned())
	assert.False(t, TypeULong.IsSigned())
	assert.True(t, TypeFloat32.IsFloat())
	assert.True(t, TypeFloat32.IsSigned())
	assert.False(t, TypeInt.IsFloat())
	assert.Equal(t, 4, TypeInt.Size())

	bad := TypeCode('z')
	assert.False(t, bad.Valid())
	assert.Equal(t, "TypeCode(122)", bad.String())
	assert.Zero(t, bad.Size())

	for _, s := range []string{"", "z", "int128", "Int8"} {
		_, err := ParseTypeCode(s)
		assert.ErrorIs(t, err, ErrTypeMismatch, s)
	}
}

func TestNewArrayAndOf(t *testing.T) {
	l, err := NewArray(TypeLong, []int64{1})
	require.NoError(t, err)
	assert.Equal(t, TypeLong, l.Code())

	_, err = NewArray(TypeLong, []int32{1})
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = NewArray(TypeUint, []int32{1})
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = NewArray(TypeCode('z'), []int32{1})
	assert.ErrorIs(t, err, ErrTypeMismatch)

	assert.Equal(t, TypeInt8, Of([]int8{}).Code())
	assert.Equal(t, TypeUint8, Of([]uint8{}).Code())
	assert.Equal(t, TypeInt16, Of([]int16{}).Code())
	assert.Equal(t, TypeUint16, Of([]uint16{}).Code())
	assert.Equal(t, TypeInt, Of([]int32{}).Code())
	assert.Equal(t, TypeUint, Of([]uint32{}).Code())
	assert.Equal(t, TypeInt64, Of([]int64{}).Code())
	assert.Equal(t, TypeUint64, Of([]uint64{}).Code())
	assert.Equal(t, TypeFloat32, Of([]float32{}).Code())
	assert.Equal(t, TypeFloat64, Of([]float64{}).Code())

	var nilArr *Array[int8]
	assert.Zero(t, nilArr.Len())
	assert.Nil(t, nilArr.Data())
	assert.Equal(t, "b[1 2]", Of([]int8{1, 2}).String())
}

func TestParseHelpers(t *testing.T) {
	b, err := MakeArray(TypeUint16, 3)
	require.NoError(t, err)
	assert.Equal(t, "H[0 0 0]", b.String())
	_, err = MakeArray(TypeUint16, -1)
	assert.ErrorIs(t, err, ErrLength)
	_, err = MakeArray(TypeCode('z'), 1)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	v, err := ParseScalar(TypeLong, "-5")
	require.NoError(t, err)
	assert.Equal(t, int64(-5), v)
	v, err = ParseScalar(TypeFloat32, "2.5")
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), v)
	_, err = ParseScalar(TypeUint8, "256")
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = ParseScalar(TypeUint8, "-1")
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = ParseScalar(TypeInt8, "1.0")
	assert.ErrorIs(t, err, ErrTypeMismatch)

	b, err = ParseArray(TypeInt, []string{"1", "-2"})
	require.NoError(t, err)
	assert.Equal(t, TypeInt, b.Code())
	assert.Equal(t, []int32{1, -2}, b.(*Array[int32]).Data())
	_, err = ParseArray(TypeInt, []string{"1", "x"})
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Contains(t, err.Error(), "element 1")

	minVal, maxVal, err := Limits(TypeInt16)
	require.NoError(t, err)
	assert.Equal(t, "-32768", minVal)
	assert.Equal(t, "32767", maxVal)
	_, _, err = Limits(TypeCode('z'))
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

// Every array the constructors can build must be accepted by the routine
// its code selects.
func TestConstructedArraysDispatch(t *testing.T) {
	check := func(t *testing.T, b Buffer) {
		t.Helper()
		require.NoError(t, Sub(b, 1), "%s", b)
		require.NoError(t, Add(1, b, MathErrors(true)), "%s", b)
		require.NoError(t, Mul(b, b), "%s", b)
	}

	check(t, Of([]int8{2}))
	check(t, Of([]uint8{2}))
	check(t, Of([]int16{2}))
	check(t, Of([]uint16{2}))
	check(t, Of([]int32{2}))
	check(t, Of([]uint32{2}))
	check(t, Of([]int64{2}))
	check(t, Of([]uint64{2}))
	check(t, Of([]float32{2}))
	check(t, Of([]float64{2}))

	l, err := NewArray(TypeLong, []int64{2})
	require.NoError(t, err)
	check(t, l)
	ul, err := NewArray(TypeULong, []uint64{2})
	require.NoError(t, err)
	check(t, ul)

	for _, code := range TypeCodes() {
		b, err := MakeArray(code, 1)
		require.NoError(t, err)
		require.NoError(t, Add(b, 2), "%s", code)
	}
}
