// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/ik5/a2dpsink/audio"
)

// Frames16 packs stereo frames into interleaved little-endian 16-bit PCM.
func Frames16(frames ...[2]int16) []byte {
	buf := make([]byte, 0, len(frames)*4)
	for _, f := range frames {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(f[0]))
		buf = binary.LittleEndian.AppendUint16(buf, uint16(f[1]))
	}
	return buf
}

// Frames32 packs stereo frames into interleaved little-endian 32-bit PCM.
func Frames32(frames ...[2]int32) []byte {
	buf := make([]byte, 0, len(frames)*8)
	for _, f := range frames {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(f[0]))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(f[1]))
	}
	return buf
}

// Unpack16 is the inverse of Frames16. A trailing partial frame is dropped.
func Unpack16(buf []byte) [][2]int16 {
	frames := make([][2]int16, len(buf)/4)
	for i := range frames {
		frames[i][0] = int16(binary.LittleEndian.Uint16(buf[i*4:]))
		frames[i][1] = int16(binary.LittleEndian.Uint16(buf[i*4+2:]))
	}
	return frames
}

// Unpack32 is the inverse of Frames32. A trailing partial frame is dropped.
func Unpack32(buf []byte) [][2]int32 {
	frames := make([][2]int32, len(buf)/8)
	for i := range frames {
		frames[i][0] = int32(binary.LittleEndian.Uint32(buf[i*8:]))
		frames[i][1] = int32(binary.LittleEndian.Uint32(buf[i*8+4:]))
	}
	return frames
}

// RampFrames builds n frames of the given depth with distinct, sign-varying
// values on each channel, handy for property checks.
func RampFrames(bits audio.BitDepth, n int) []byte {
	buf := make([]byte, n*bits.FrameSize())
	_ = audio.ForEachFrame(buf, bits, func(_, _ int64) (int64, int64) {
		n--
		if bits == audio.Bits16 {
			return int64(n*997%65536) - 32768, 32767 - int64(n*331%65536)
		}
		return int64(n)*123457 - 1<<31 + 17, 1<<31 - 1 - int64(n)*98765
	})
	return buf
}

// MockSource is a test helper that generates stereo PCM.
// It implements the audio.Source interface.
type MockSource struct {
	sampleRate  int
	bits        audio.BitDepth
	totalFrames int // Total frames to generate
	generated   int // Frames generated so far
	waveform    func(frame int, channel int) int64
	closed      bool
}

// NewMockSource creates a new mock PCM source.
// waveform returns the sample value for a frame index and channel.
func NewMockSource(sampleRate int, bits audio.BitDepth, totalFrames int, waveform func(frame int, channel int) int64) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		bits:        bits,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate int, bits audio.BitDepth, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, bits, totalFrames, func(int, int) int64 {
		return 0
	})
}

// NewConstantSource creates a mock source with constant left and right values.
func NewConstantSource(sampleRate int, bits audio.BitDepth, totalFrames int, left, right int64) *MockSource {
	return NewMockSource(sampleRate, bits, totalFrames, func(_ int, channel int) int64 {
		if channel == 0 {
			return left
		}
		return right
	})
}

// NewSineSource creates a mock source that generates a sine wave at half
// scale on both channels.
func NewSineSource(sampleRate int, bits audio.BitDepth, totalFrames int, frequency float64) *MockSource {
	amplitude := float64(bits.HalfRange()/2 - 1)
	return NewMockSource(sampleRate, bits, totalFrames, func(frame int, _ int) int64 {
		t := float64(frame) / float64(sampleRate)
		return int64(amplitude * math.Sin(2*math.Pi*frequency*t))
	})
}

func (m *MockSource) SampleRate() int          { return m.sampleRate }
func (m *MockSource) Channels() int            { return audio.Channels }
func (m *MockSource) BitDepth() audio.BitDepth { return m.bits }
func (m *MockSource) Close() error             { m.closed = true; return nil }

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset resets the generated frame counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadPCM(dst []byte) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	framesToWrite := min(m.bits.Frames(len(dst)), m.totalFrames-m.generated)
	if framesToWrite == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	out := dst[:framesToWrite*m.bits.FrameSize()]
	frame := m.generated
	_ = audio.ForEachFrame(out, m.bits, func(_, _ int64) (int64, int64) {
		l, r := m.waveform(frame, 0), m.waveform(frame, 1)
		frame++
		return l, r
	})

	m.generated += framesToWrite
	if m.generated >= m.totalFrames {
		return len(out), io.EOF
	}

	return len(out), nil
}

// MemoryWriter collects PCM written by the pipeline.
// It implements the audio.FrameWriter interface.
type MemoryWriter struct {
	bytes.Buffer
	Bits audio.BitDepth
}

func (w *MemoryWriter) BitDepth() audio.BitDepth { return w.Bits }
