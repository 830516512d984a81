// SPDX-License-Identifier: EPL-2.0

package a2dpsink

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/a2dpsink/audio"
	"github.com/ik5/a2dpsink/sink"
)

// DefaultBufferFrames is the buffer size Stream uses when asked for zero
// frames. It is in the range of what Bluetooth stacks hand to the sink per
// callback.
const DefaultBufferFrames = 512

// Stream pumps src through s into dst the way a Bluetooth stack drives the
// sink: fixed-size buffers, each passed to s.OnAudioData before it is
// written out. It returns the number of frames written.
//
// Stream stops at the end of src or at the first read or write error. The
// source and destination must agree on the bit depth.
//
// Example:
//
//	src, _ := wav.Decoder{}.Decode(in)
//	w, _ := wav.NewWriter(out, src.SampleRate(), src.BitDepth())
//	frames, err := a2dpsink.Stream(src, w, s, 0)
//	w.Close()
func Stream(src audio.Source, dst audio.FrameWriter, s *sink.Sink, bufferFrames int) (int, error) {
	bits := src.BitDepth()
	if !bits.Valid() {
		return 0, fmt.Errorf("%w: %d", audio.ErrUnsupportedBitDepth, bits)
	}
	if dst.BitDepth() != bits {
		return 0, fmt.Errorf("%w: source %v, destination %v", audio.ErrBitDepthMismatch, bits, dst.BitDepth())
	}

	if bufferFrames <= 0 {
		bufferFrames = DefaultBufferFrames
	}
	buf := make([]byte, bufferFrames*bits.FrameSize())

	frames := 0
	for {
		n, err := src.ReadPCM(buf)
		if n > 0 {
			chunk := buf[:n]
			s.OnAudioData(chunk, bits)

			if _, werr := dst.Write(chunk); werr != nil {
				return frames, fmt.Errorf("writing pcm: %w", werr)
			}
			frames += bits.Frames(n)
		}

		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return frames, fmt.Errorf("reading pcm: %w", err)
		}
	}
}
