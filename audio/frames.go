// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/ik5/a2dpsink/utils"
)

// FrameFunc receives the left and right sample of one frame widened to int64
// and returns the values to store back. Results are narrowed to the buffer's
// sample width with wraparound.
type FrameFunc func(left, right int64) (int64, int64)

// SampleFunc is the per-sample counterpart of FrameFunc.
type SampleFunc func(s int64) int64

// ForEachFrame walks buf as interleaved little-endian stereo PCM of the given
// depth and rewrites every whole frame in place with fn. A trailing partial
// frame is left alone.
//
// An empty buffer is a no-op. An unsupported depth returns an error wrapping
// ErrUnsupportedBitDepth and leaves buf untouched.
func ForEachFrame(buf []byte, bits BitDepth, fn FrameFunc) error {
	if len(buf) == 0 {
		return nil
	}

	switch bits {
	case Bits16:
		eachFrame[int16](buf, fn)
	case Bits32:
		eachFrame[int32](buf, fn)
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	}

	return nil
}

// ForEachSample is like ForEachFrame but visits every sample of every whole
// frame independently.
func ForEachSample(buf []byte, bits BitDepth, fn SampleFunc) error {
	return ForEachFrame(buf, bits, func(left, right int64) (int64, int64) {
		return fn(left), fn(right)
	})
}

func eachFrame[T utils.Sample](buf []byte, fn FrameFunc) {
	size := sampleSize[T]()
	frameSize := size * Channels
	frames := len(buf) / frameSize

	for f := range frames {
		l := buf[f*frameSize : f*frameSize+size]
		r := buf[f*frameSize+size : (f+1)*frameSize]

		left, right := fn(load[T](l), load[T](r))

		store[T](l, left)
		store[T](r, right)
	}
}

func sampleSize[T utils.Sample]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func load[T utils.Sample](b []byte) int64 {
	if sampleSize[T]() == 2 {
		return int64(int16(binary.LittleEndian.Uint16(b)))
	}
	return int64(int32(binary.LittleEndian.Uint32(b)))
}

func store[T utils.Sample](b []byte, v int64) {
	s := utils.Narrow[T](v)
	if sampleSize[T]() == 2 {
		binary.LittleEndian.PutUint16(b, uint16(s))
		return
	}
	binary.LittleEndian.PutUint32(b, uint32(s))
}
