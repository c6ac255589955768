package simd

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel is the instruction set the running CPU offers.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchAVX2
	DispatchAVX512
	DispatchNEON
)

// levelInfo maps each level to its name and register width in bytes.
// Scalar uses 16-byte blocks so block boundaries match SSE2 and NEON.
var levelInfo = [...]struct {
	name  string
	width int
}{
	DispatchScalar: {"scalar", 16},
	DispatchSSE2:   {"sse2", 16},
	DispatchAVX2:   {"avx2", 32},
	DispatchAVX512: {"avx512", 64},
	DispatchNEON:   {"neon", 16},
}

func (d DispatchLevel) String() string {
	if d < 0 || int(d) >= len(levelInfo) {
		return "unknown"
	}
	return levelInfo[d].name
}

// Width returns the register width of d in bytes.
func (d DispatchLevel) Width() int {
	if d < 0 || int(d) >= len(levelInfo) {
		return levelInfo[DispatchScalar].width
	}
	return levelInfo[d].width
}

// current is chosen by init in dispatch_*.go and read-only afterwards.
var current = DispatchScalar

// CurrentLevel returns the detected instruction set.
func CurrentLevel() DispatchLevel { return current }

// CurrentWidth returns the register width of the detected level in bytes.
func CurrentWidth() int { return current.Width() }

// CurrentName returns the name of the detected level.
func CurrentName() string { return current.String() }

// NoSimdEnv reports whether ARRAYFUNC_NO_SIMD asks for scalar blocks.
// Values strconv.ParseBool reads as false disable it; anything else
// non-empty enables it.
func NoSimdEnv() bool {
	val := os.Getenv("ARRAYFUNC_NO_SIMD")
	if val == "" {
		return false
	}
	b, err := strconv.ParseBool(val)
	return err != nil || b
}

// selectLevel installs the level init detected, unless the environment
// forces scalar mode.
func selectLevel(detected DispatchLevel) {
	if NoSimdEnv() {
		detected = DispatchScalar
	}
	current = detected
}

// MaxLanes returns how many T fit in one register at the current level:
// 32 int8 or 4 float64 lanes under AVX2.
func MaxLanes[T Lanes]() int {
	var zero T
	return CurrentWidth() / int(unsafe.Sizeof(zero))
}
