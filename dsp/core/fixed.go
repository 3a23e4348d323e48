package core

import "unsafe"

// Signed is the set of integer types usable as fixed-point sample and
// accumulator storage.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// BitWidth returns the width of T in bits, sign bit included.
func BitWidth[T Signed]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// RoundShift descales v by n bits rounding half up:
//
//	(v + 2^(n-1)) >> n
//
// For n == 0 it returns v unchanged. The shift is arithmetic, so negative
// halfway values round toward +Inf (-0.5 -> 0).
func RoundShift[T Signed](v T, n uint) T {
	if n == 0 {
		return v
	}
	return (v + T(1)<<(n-1)) >> n
}
