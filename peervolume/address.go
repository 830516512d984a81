// SPDX-License-Identifier: EPL-2.0

package peervolume

import (
	"fmt"
	"strconv"
	"strings"
)

// Address is a 48-bit Bluetooth device address packed into an integer.
// Octet 0 is the least significant byte.
type Address uint64

const addressOctets = 6

// AddressFromOctets packs the six octets of a device address as received
// from the Bluetooth stack.
func AddressFromOctets(o [6]byte) Address {
	var a Address
	for i := addressOctets - 1; i >= 0; i-- {
		a = a<<8 | Address(o[i])
	}
	return a
}

// Octets is the inverse of AddressFromOctets.
func (a Address) Octets() [6]byte {
	var o [6]byte
	for i := range o {
		o[i] = byte(a >> (8 * i))
	}
	return o
}

// String formats the address as six colon separated hex octets, octet 0
// first.
func (a Address) String() string {
	o := a.Octets()
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", o[0], o[1], o[2], o[3], o[4], o[5])
}

// ParseAddress reads the form produced by String. Case is ignored.
func ParseAddress(s string) (Address, error) {
	parts := strings.Split(s, ":")
	if len(parts) != addressOctets {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	var o [6]byte
	for i, p := range parts {
		if len(p) != 2 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
		}
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %w", ErrInvalidAddress, s, err)
		}
		o[i] = byte(v)
	}

	return AddressFromOctets(o), nil
}
