// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/a2dpsink/utils"
)

// Channels is the number of interleaved channels in every buffer handled by
// this package: left then right.
const Channels = 2

// BitDepth is the width of one PCM sample as announced by the host together
// with each buffer.
type BitDepth uint8

const (
	Bits16 BitDepth = 16
	Bits32 BitDepth = 32
)

// ParseBitDepth validates a raw bits-per-sample value.
func ParseBitDepth(bits int) (BitDepth, error) {
	switch bits {
	case 16:
		return Bits16, nil
	case 32:
		return Bits32, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	}
}

// Valid reports whether b is one of the supported depths.
func (b BitDepth) Valid() bool {
	return b == Bits16 || b == Bits32
}

// SampleSize is the size in bytes of one sample, or 0 for an unsupported depth.
func (b BitDepth) SampleSize() int {
	if !b.Valid() {
		return 0
	}
	return int(b) / 8
}

// FrameSize is the size in bytes of one stereo frame, or 0 for an
// unsupported depth.
func (b BitDepth) FrameSize() int {
	return b.SampleSize() * Channels
}

// Frames returns how many whole frames fit in n bytes.
func (b BitDepth) Frames(n int) int {
	fs := b.FrameSize()
	if fs == 0 {
		return 0
	}
	return n / fs
}

func (b BitDepth) String() string {
	return fmt.Sprintf("%d-bit", uint8(b))
}

// HalfRange is 2^(bits-1), the offset between signed and unsigned encodings
// of a sample of this depth. It is 0 for an unsupported depth.
func (b BitDepth) HalfRange() int64 {
	switch b {
	case Bits16:
		return utils.HalfRange[int16]()
	case Bits32:
		return utils.HalfRange[int32]()
	default:
		return 0
	}
}
