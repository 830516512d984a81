// SPDX-License-Identifier: EPL-2.0

package audio

// Transform mutates a PCM buffer in place.
//
// Implementations treat an empty buffer, or their own disabled state, as a
// no-op. Depths other than Bits16 and Bits32 are rejected with an error
// wrapping ErrUnsupportedBitDepth without touching the buffer. No
// implementation keeps a reference to buf after returning.
type Transform interface {
	Apply(buf []byte, bits BitDepth) error
}

// ChannelSwap exchanges the left and right sample of every frame while
// enabled. The zero value is disabled.
type ChannelSwap struct {
	enabled bool
}

// NewChannelSwap returns a ChannelSwap in the given state.
func NewChannelSwap(enabled bool) *ChannelSwap {
	return &ChannelSwap{enabled: enabled}
}

func (c *ChannelSwap) SetEnabled(enabled bool) { c.enabled = enabled }
func (c *ChannelSwap) Enabled() bool           { return c.enabled }

func (c *ChannelSwap) Apply(buf []byte, bits BitDepth) error {
	if len(buf) == 0 || !c.enabled {
		return nil
	}
	return ForEachFrame(buf, bits, swapFrame)
}

func swapFrame(left, right int64) (int64, int64) {
	return right, left
}

// SignBias moves every sample by half of its word range (0x8000 for 16-bit,
// 0x80000000 for 32-bit) with wraparound, which turns signed PCM into
// unsigned-centred PCM and back. Applying it twice restores the input
// bytes.
//
// SignBias has no enabled state; whoever builds the pipeline decides when to
// call it.
type SignBias struct{}

func (SignBias) Apply(buf []byte, bits BitDepth) error {
	if len(buf) == 0 {
		return nil
	}
	bias := bits.HalfRange()
	return ForEachSample(buf, bits, func(s int64) int64 {
		return s + bias
	})
}
