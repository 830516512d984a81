// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrUnsupportedBitDepth is returned for any width other than 16 or 32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported bits per sample")
	ErrInvalidDstSize      = errors.New("dst size must hold at least one frame")
	ErrBitDepthMismatch    = errors.New("source and destination bit depth differ")
)
