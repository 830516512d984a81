// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrNotPCM              = errors.New("WAV data is not integer PCM")
	ErrNotStereo           = errors.New("WAV data is not stereo")
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
	ErrPartialFrame        = errors.New("write ends in a partial frame")
)
