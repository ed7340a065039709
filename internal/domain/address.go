package domain

import (
	"fmt"
)

// Address is an IPv4 address as four octets, most significant first.
type Address [4]byte

// AddressFromUint32 unpacks a 32-bit value into four octets.
func AddressFromUint32(v uint32) Address {
	return Address{
		byte(v >> 24),
		byte(v >> 16),
		byte(v >> 8),
		byte(v),
	}
}

// AddressFromBytes builds an Address from a raw byte slice.
// The slice must be exactly 4 bytes long.
func AddressFromBytes(b []byte) (Address, error) {
	if len(b) != 4 {
		return Address{}, fmt.Errorf("%w: got %d bytes, want 4", ErrInvalidByteLength, len(b))
	}
	return Address{b[0], b[1], b[2], b[3]}, nil
}

// Uint32 packs the four octets into a single 32-bit value,
// octet 0 occupying bits 24-31.
func (a Address) Uint32() uint32 {
	return uint32(a[0])<<24 | uint32(a[1])<<16 | uint32(a[2])<<8 | uint32(a[3])
}

// String returns the dotted-decimal form.
//
// String implements fmt.Stringer.
func (a Address) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a[0], a[1], a[2], a[3])
}

// Binary returns the dotted-binary form: each octet rendered as exactly
// eight zero-padded binary digits, groups joined with dots.
func (a Address) Binary() string {
	return fmt.Sprintf("%08b.%08b.%08b.%08b", a[0], a[1], a[2], a[3])
}

// MarshalJSON renders the address as a dotted-decimal string.
func (a Address) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// Class is a legacy classful address class (A-E).
type Class byte

const (
	ClassA Class = 'A'
	ClassB Class = 'B'
	ClassC Class = 'C'
	ClassD Class = 'D'
	ClassE Class = 'E'
)

// String implements fmt.Stringer.
func (c Class) String() string {
	return string(rune(c))
}

// MarshalJSON renders the class as its letter, not a byte value.
func (c Class) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// DefaultPrefixBits returns the classful default network prefix length.
// Classes D and E have no default subnet mask and report 0.
func (c Class) DefaultPrefixBits() int {
	switch c {
	case ClassA:
		return 8
	case ClassB:
		return 16
	case ClassC:
		return 24
	}
	return 0
}

// Class determines the classful class from the first octet only.
// The supplied prefix length plays no part in classification.
func (a Address) Class() Class {
	switch first := a[0]; {
	case first <= 127:
		return ClassA
	case first <= 191:
		return ClassB
	case first <= 223:
		return ClassC
	case first <= 239:
		return ClassD
	default:
		return ClassE
	}
}
