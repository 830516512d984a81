// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/a2dpsink/audio"
)

// Writer encodes interleaved little-endian stereo PCM as a WAV stream. The
// header sizes are only valid after Close.
type Writer struct {
	enc    *wav.Encoder
	bits   audio.BitDepth
	buf    *goaudio.IntBuffer
	frames int
}

// NewWriter starts a WAV stream on w. w must be seekable so Close can
// patch the header.
func NewWriter(w io.WriteSeeker, sampleRate int, bits audio.BitDepth) (*Writer, error) {
	if !bits.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	}

	return &Writer{
		enc:  wav.NewEncoder(w, sampleRate, int(bits), audio.Channels, formatPCM),
		bits: bits,
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: audio.Channels, SampleRate: sampleRate},
			SourceBitDepth: int(bits),
		},
	}, nil
}

func (w *Writer) BitDepth() audio.BitDepth { return w.bits }

// Frames reports how many frames were written so far.
func (w *Writer) Frames() int { return w.frames }

// Write encodes every whole frame of p. A trailing partial frame is not
// written and reported as ErrPartialFrame.
func (w *Writer) Write(p []byte) (int, error) {
	frames := w.bits.Frames(len(p))
	size := w.bits.SampleSize()
	samples := frames * audio.Channels

	if cap(w.buf.Data) < samples {
		w.buf.Data = make([]int, samples)
	}
	w.buf.Data = w.buf.Data[:samples]

	for i := range w.buf.Data {
		if w.bits == audio.Bits16 {
			w.buf.Data[i] = int(int16(binary.LittleEndian.Uint16(p[i*size:])))
		} else {
			w.buf.Data[i] = int(int32(binary.LittleEndian.Uint32(p[i*size:])))
		}
	}

	if samples > 0 {
		if err := w.enc.Write(w.buf); err != nil {
			return 0, fmt.Errorf("wav: encoding: %w", err)
		}
	}
	w.frames += frames

	n := samples * size
	if n < len(p) {
		return n, ErrPartialFrame
	}
	return n, nil
}

// Close writes the final header. It does not close the underlying writer.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("wav: finalising header: %w", err)
	}
	return nil
}
