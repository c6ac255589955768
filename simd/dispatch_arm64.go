//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func init() {
	// ASIMD is baseline on ARMv8-A.
	if cpu.ARM64.HasASIMD {
		selectLevel(DispatchNEON)
		return
	}
	selectLevel(DispatchScalar)
}
