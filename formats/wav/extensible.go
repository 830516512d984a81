// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// extensibleFmtSize is the length of a WAVE_FORMAT_EXTENSIBLE fmt chunk. The
// SubFormat GUID sits at offset 24 and starts with the real format tag.
const (
	extensibleFmtSize = 40
	subFormatOffset   = 24
)

// subFormat reads the format tag carried in the SubFormat GUID of an
// extensible fmt chunk. rs is rewound to the start on return.
func subFormat(rs io.ReadSeeker) (tag uint16, err error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	defer func() {
		if _, serr := rs.Seek(0, io.SeekStart); serr != nil && err == nil {
			err = serr
		}
	}()

	p := riff.New(rs)
	if err := p.ParseHeaders(); err != nil {
		return 0, err
	}

	for {
		ch, err := p.NextChunk()
		if err != nil {
			return 0, err
		}
		if ch.ID != riff.FmtID {
			ch.Drain()
			continue
		}

		if ch.Size < extensibleFmtSize {
			return 0, fmt.Errorf("%w: extensible fmt chunk of %d bytes", ErrNotPCM, ch.Size)
		}
		var hdr [extensibleFmtSize]byte
		if err := ch.ReadLE(&hdr); err != nil {
			return 0, err
		}
		return binary.LittleEndian.Uint16(hdr[subFormatOffset:]), nil
	}
}
