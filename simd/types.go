// Package simd describes the element types arrayfunc kernels operate on,
// the register width of the running CPU, and Vec, a portable register of
// that width.
//
// Vec operations are written in Go and process one register of lanes per
// call. The detected level sets the lane count, and with it how many
// elements each Load, Sub and Store moves. Results are identical on every
// target:
//
//	a := simd.Load(src)            // up to MaxLanes[int16]() elements
//	d := simd.Sub(a, simd.Set[int16](2))
//	simd.Store(d, dst)
package simd

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all fixed-width integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in a typed buffer.
type Lanes interface {
	Floats | Integers
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T Integers]() bool {
	var zero T
	return ^zero < 0
}
