// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-place PCM buffer primitives of the sink
// pipeline.
//
// Buffers are plain byte slices holding interleaved little-endian stereo PCM.
// Every buffer travels with a BitDepth tag, either Bits16 or Bits32:
//
//	buf := make([]byte, 4*audio.Bits16.FrameSize()) // 4 frames
//	err := audio.NewChannelSwap(true).Apply(buf, audio.Bits16)
//
// # Frame Iteration
//
// ForEachFrame and ForEachSample implement the iteration contract shared by
// every transform. Samples are widened to int64 before the callback runs and
// narrowed back with wraparound afterwards, so a 32-bit sample multiplied by
// a 13-bit gain factor never overflows:
//
//	err := audio.ForEachFrame(buf, audio.Bits32, func(l, r int64) (int64, int64) {
//	    return l / 2, r / 2
//	})
//
// The contract:
//   - an empty buffer is a no-op
//   - only Bits16 and Bits32 are accepted, anything else returns an error
//     wrapping ErrUnsupportedBitDepth and leaves the buffer untouched
//   - a trailing partial frame is never visited
//   - nothing is allocated and nothing is retained
//
// # Transforms
//
// Transform is the interface implemented by ChannelSwap, SignBias and the
// volume curves in the volume package:
//   - ChannelSwap exchanges left and right while enabled
//   - SignBias converts between signed and unsigned-centred PCM and is its
//     own inverse
//
// # Sources
//
// Source, Decoder and Registry describe where PCM comes from when the
// pipeline is driven from a file rather than a Bluetooth stack. The
// formats/wav and formats/aiff packages provide decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get(".WAV")
package audio
