package domain

import "errors"

var (
	ErrMissingDelimiter     = errors.New("missing '/' delimiter")
	ErrMalformedCIDR        = errors.New("malformed cidr notation")
	ErrInvalidAddressFormat = errors.New("invalid address format")
	ErrInvalidPrefixFormat  = errors.New("invalid prefix format")
	ErrPrefixOutOfRange     = errors.New("prefix out of range")
	ErrInvalidByteLength    = errors.New("invalid byte length")
)
