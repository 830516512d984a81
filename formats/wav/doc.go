// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes stereo integer PCM WAV files for the sink
// pipeline, on top of github.com/go-audio/wav.
//
// Only what an A2DP sink produces or consumes is accepted: two channels of
// 16 or 32-bit integer PCM (plain or WAVE_FORMAT_EXTENSIBLE). Other files
// are rejected with ErrNotWavFile, ErrNotPCM, ErrNotStereo or
// ErrUnsupportedBitDepth.
//
// # Decoding
//
//	f, _ := os.Open("in.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	buf := make([]byte, 512*src.BitDepth().FrameSize())
//	n, err := src.ReadPCM(buf)
//
// Samples come back as interleaved little-endian bytes, the same layout the
// transforms work on.
//
// # Encoding
//
// Writer needs an io.WriteSeeker because the header sizes are patched on
// Close:
//
//	f, _ := os.Create("out.wav")
//	w, _ := wav.NewWriter(f, 44100, audio.Bits16)
//	w.Write(pcm)
//	w.Close()
//	f.Close()
package wav
