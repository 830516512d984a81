// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"io"
)

// mockSource is a test helper that serves a fixed PCM payload.
// It implements the Source interface.
type mockSource struct {
	bits BitDepth
	data []byte
	off  int
}

func newMockSource(bits BitDepth, data []byte) *mockSource {
	return &mockSource{bits: bits, data: data}
}

func (m *mockSource) SampleRate() int    { return 44100 }
func (m *mockSource) Channels() int      { return Channels }
func (m *mockSource) BitDepth() BitDepth { return m.bits }
func (m *mockSource) Close() error       { return nil }

func (m *mockSource) ReadPCM(dst []byte) (int, error) {
	if m.off >= len(m.data) {
		return 0, io.EOF
	}
	n := copy(dst[:m.bits.Frames(len(dst))*m.bits.FrameSize()], m.data[m.off:])
	m.off += n
	return n, nil
}

// frames16 packs stereo frames into little-endian 16-bit PCM.
func frames16(frames ...[2]int16) []byte {
	buf := make([]byte, 0, len(frames)*4)
	for _, f := range frames {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(f[0]))
		buf = binary.LittleEndian.AppendUint16(buf, uint16(f[1]))
	}
	return buf
}

// frames32 packs stereo frames into little-endian 32-bit PCM.
func frames32(frames ...[2]int32) []byte {
	buf := make([]byte, 0, len(frames)*8)
	for _, f := range frames {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(f[0]))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(f[1]))
	}
	return buf
}

// rampBuffer returns n frames with every byte value represented.
func rampBuffer(bits BitDepth, n int) []byte {
	buf := make([]byte, n*bits.FrameSize())
	for i := range buf {
		buf[i] = byte(i*37 + 11)
	}
	return buf
}
