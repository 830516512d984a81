// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/a2dpsink/audio"
	"github.com/ik5/a2dpsink/formats/internal/intpcm"
)

const (
	formatPCM        = 1
	formatExtensible = 0xfffe
)

// Decoder reads 16 or 32-bit integer PCM stereo WAV data. WAVE_FORMAT_EXTENSIBLE
// files are accepted only when their sub-format is PCM.
type Decoder struct{}

// Decode parses the WAV header of r and returns a Source positioned at the
// first sample. If r is an io.Closer, closing the Source closes r.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := intpcm.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	switch dec.WavAudioFormat {
	case formatPCM:
	case formatExtensible:
		tag, err := subFormat(rs)
		if err != nil {
			return nil, fmt.Errorf("wav: reading extensible format: %w", err)
		}
		if tag != formatPCM {
			return nil, fmt.Errorf("%w: extensible sub-format %#x", ErrNotPCM, tag)
		}
		// subFormat rewound rs, start over
		dec = wav.NewDecoder(rs)
		if !dec.IsValidFile() {
			return nil, ErrNotWavFile
		}
	default:
		return nil, fmt.Errorf("%w: format tag %#x", ErrNotPCM, dec.WavAudioFormat)
	}
	if dec.NumChans != audio.Channels {
		return nil, fmt.Errorf("%w: %d channels", ErrNotStereo, dec.NumChans)
	}
	bits, err := audio.ParseBitDepth(int(dec.BitDepth))
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("wav: locating data chunk: %w", err)
	}

	closer, _ := r.(io.Closer)
	return intpcm.NewSource(dec, int(dec.SampleRate), bits, closer), nil
}
