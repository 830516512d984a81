// SPDX-License-Identifier: EPL-2.0

// Package intpcm adapts go-audio integer decoders to audio.Source.
package intpcm

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/a2dpsink/audio"
)

// Reader is the part of the go-audio wav and aiff decoders used here.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// ReadSeeker returns r itself when it can seek, otherwise its whole content
// in memory. go-audio decoders need to seek between chunks.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}
	return bytes.NewReader(data), nil
}

// Source turns the integer samples of a go-audio decoder into interleaved
// little-endian stereo PCM.
type Source struct {
	dec        Reader
	sampleRate int
	bits       audio.BitDepth
	closer     io.Closer

	intBuf *goaudio.IntBuffer
	tail   goaudio.IntBuffer
}

// NewSource wraps dec. closer may be nil; when set, Close calls it.
func NewSource(dec Reader, sampleRate int, bits audio.BitDepth, closer io.Closer) *Source {
	format := &goaudio.Format{NumChannels: audio.Channels, SampleRate: sampleRate}
	return &Source{
		dec:        dec,
		sampleRate: sampleRate,
		bits:       bits,
		closer:     closer,
		intBuf:     &goaudio.IntBuffer{Format: format, SourceBitDepth: int(bits)},
		tail:       goaudio.IntBuffer{Format: format, SourceBitDepth: int(bits)},
	}
}

func (s *Source) SampleRate() int          { return s.sampleRate }
func (s *Source) Channels() int            { return audio.Channels }
func (s *Source) BitDepth() audio.BitDepth { return s.bits }

func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// ReadPCM fills dst with as many whole frames as fit. It returns 0, io.EOF
// once the decoder is drained. On a decoder error the whole frames decoded
// before it are returned along with the error.
func (s *Source) ReadPCM(dst []byte) (int, error) {
	frames := s.bits.Frames(len(dst))
	if frames == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	want := frames * audio.Channels
	if cap(s.intBuf.Data) < want {
		s.intBuf.Data = make([]int, want)
	}
	data := s.intBuf.Data[:want]

	// the decoders may return short reads; keep asking until the request
	// is filled or the stream ends
	var decErr error
	got := 0
	for got < want {
		s.tail.Data = data[got:]
		n, err := s.dec.PCMBuffer(&s.tail)
		got += n
		if err != nil && !errors.Is(err, io.EOF) {
			decErr = fmt.Errorf("decoding pcm: %w", err)
			break
		}
		if n == 0 || err != nil {
			break
		}
	}

	// drop a dangling sample from a truncated last frame
	got -= got % audio.Channels
	if got == 0 {
		if decErr != nil {
			return 0, decErr
		}
		return 0, io.EOF
	}

	size := s.bits.SampleSize()
	for i, v := range data[:got] {
		if s.bits == audio.Bits16 {
			binary.LittleEndian.PutUint16(dst[i*size:], uint16(int16(v)))
		} else {
			binary.LittleEndian.PutUint32(dst[i*size:], uint32(int32(v)))
		}
	}

	return got * size, decErr
}
