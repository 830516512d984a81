// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding for
// the sink pipeline.
//
// This package uses github.com/go-audio/aiff to decode AIFF files. Only
// stereo 16 or 32-bit files are accepted; AIFF stores samples big-endian
// and the Source returned here converts them to the interleaved
// little-endian layout the transforms expect.
//
//	f, _ := os.Open("audio.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrNotStereo) {
//	    // mono or multi-channel file
//	}
//	buf := make([]byte, 512*src.BitDepth().FrameSize())
//	n, err := src.ReadPCM(buf)
//
// Readers that cannot seek are loaded into memory first, because the
// underlying decoder has to jump between chunks.
package aiff
