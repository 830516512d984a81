// SPDX-License-Identifier: EPL-2.0

package volume

import (
	"fmt"
	"strings"
)

// Kind names a curve variant.
type Kind uint8

const (
	KindDefault Kind = iota
	KindExponential
	KindLinear
	KindNone
)

var kindNames = [...]string{
	KindDefault:     "default",
	KindExponential: "exponential",
	KindLinear:      "linear",
	KindNone:        "none",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind accepts the names returned by Kind.String, case-insensitively.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// New builds a fresh curve of kind k. Scaling and downmix start disabled and
// the factor starts at full scale.
func New(k Kind) (Curve, error) {
	switch k {
	case KindDefault:
		return NewDefault(), nil
	case KindExponential:
		return NewExponential(), nil
	case KindLinear:
		return NewLinear(), nil
	case KindNone:
		return NewNone(), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, k)
	}
}
