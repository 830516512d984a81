// SPDX-License-Identifier: EPL-2.0

package volume

import "errors"

var (
	ErrUnknownKind = errors.New("unknown volume curve")
)
