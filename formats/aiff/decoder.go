// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/a2dpsink/audio"
	"github.com/ik5/a2dpsink/formats/internal/intpcm"
)

// Decoder reads 16 or 32-bit stereo AIFF data. Samples are converted from
// the big-endian file layout to interleaved little-endian PCM.
type Decoder struct{}

// Decode parses the AIFF header of r. If r is an io.Closer, closing the
// Source closes r.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, err := intpcm.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("aiff: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}
	if format.NumChannels != audio.Channels {
		return nil, fmt.Errorf("%w: %d channels", ErrNotStereo, format.NumChannels)
	}
	bits, err := audio.ParseBitDepth(int(dec.BitDepth))
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	closer, _ := r.(io.Closer)
	return intpcm.NewSource(dec, format.SampleRate, bits, closer), nil
}
