// SPDX-License-Identifier: EPL-2.0

// Package a2dpsink is the audio side of a Bluetooth A2DP sink: the in-place
// transforms applied to every PCM buffer the Bluetooth stack delivers, and
// the per-device volume memory that goes with them.
//
// The transforms work on raw interleaved stereo buffers of 16 or 32-bit
// little-endian samples:
//
//   - volume scaling along one of several curves (package volume)
//   - mono downmix
//   - left/right channel swap (package audio)
//   - signed to unsigned conversion (package audio)
//
// Package peervolume remembers the last volume of recently connected
// devices so each one resumes where it left off. Package sink ties the
// transforms and the cache to the callbacks a Bluetooth stack fires.
//
// # Quick Start
//
//	s, _ := sink.New(sink.DefaultConfig(), log)
//
//	// on connect
//	s.OnPeerConnected(addr)
//	// on AVRCP absolute volume
//	s.OnVolumeChange(addr, level)
//	// on every decoded buffer
//	s.OnAudioData(buf, audio.Bits16)
//
// # Files
//
// Stream runs any audio.Source through a Sink into an audio.FrameWriter,
// which is how the a2dpsink-pcm command processes WAV and AIFF files with
// the decoders in formats/wav and formats/aiff:
//
//	src, _ := wav.Decoder{}.Decode(in)
//	w, _ := wav.NewWriter(out, src.SampleRate(), src.BitDepth())
//	frames, err := a2dpsink.Stream(src, w, s, 0)
//	w.Close()
//
// # Performance
//
// Transforms run in place with no allocations. Samples are widened to int64
// for the arithmetic, so 32-bit audio at full scale never overflows.
package a2dpsink
