// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"unsafe"
)

// Sample is the set of PCM word types a buffer can hold.
type Sample interface {
	~int16 | ~int32
}

// RoundToInt64 rounds x to the nearest integer, halves away from zero.
func RoundToInt64(x float64) int64 {
	return int64(math.Round(x))
}

// Narrow converts a widened sample back to the word type T.
// Values outside the range of T wrap around like a two's complement cast.
func Narrow[T Sample](v int64) T {
	return T(v)
}

// HalfRange returns 2^(bits-1) for the word type T, i.e. 0x8000 for int16
// and 0x80000000 for int32.
func HalfRange[T Sample]() int64 {
	var zero T
	return int64(1) << (unsafe.Sizeof(zero)*8 - 1)
}
