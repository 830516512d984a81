// SPDX-License-Identifier: EPL-2.0

package peervolume

import "errors"

var (
	ErrInvalidAddress = errors.New("invalid device address")
)
