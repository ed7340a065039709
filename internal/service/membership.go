package service

import (
	"fmt"
	"net/netip"

	"github.com/rs/zerolog"
	"go4.org/netipx"

	"github.com/yitingyao/IP-Network-Calculator/internal/domain"
)

// Membership answers whether an address belongs to a subnet and whether
// it is assignable to a host there.
type Membership struct {
	logger zerolog.Logger
}

// NewMembership creates a new membership service
func NewMembership(logger zerolog.Logger) *Membership {
	return &Membership{
		logger: logger,
	}
}

// MembershipResult describes where an address sits relative to a subnet.
type MembershipResult struct {
	Prefix   netip.Prefix `json:"prefix"`
	Addr     netip.Addr   `json:"address"`
	Contains bool         `json:"contains"`
	// Usable is true when the address can be assigned to a host:
	// inside the subnet and neither the network nor the broadcast
	// address. /31 point-to-point links treat both addresses as usable.
	Usable bool `json:"usable"`
}

// Check parses the subnet and address and reports membership.
// Both must be IPv4; literal text only, no name resolution.
func (m *Membership) Check(cidr, addr string) (MembershipResult, error) {
	prefix, err := netip.ParsePrefix(cidr)
	if err != nil {
		return MembershipResult{}, fmt.Errorf("%w: %q", domain.ErrMalformedCIDR, cidr)
	}
	if !prefix.Addr().Is4() {
		return MembershipResult{}, fmt.Errorf("%w: %q is not IPv4", domain.ErrInvalidAddressFormat, cidr)
	}

	ip, err := netip.ParseAddr(addr)
	if err != nil || !ip.Is4() {
		return MembershipResult{}, fmt.Errorf("%w: %q", domain.ErrInvalidAddressFormat, addr)
	}

	result := MembershipResult{
		Prefix:   prefix,
		Addr:     ip,
		Contains: prefix.Contains(ip),
	}
	result.Usable = result.Contains && m.isUsable(prefix, ip)

	m.logger.Debug().
		Str("prefix", prefix.String()).
		Str("address", ip.String()).
		Bool("contains", result.Contains).
		Bool("usable", result.Usable).
		Msg("Checked subnet membership")

	return result, nil
}

// isUsable excludes the network and broadcast addresses, except on /31
// links where both addresses are hosts. A /32 is a single host route.
func (m *Membership) isUsable(prefix netip.Prefix, ip netip.Addr) bool {
	if prefix.Bits() >= 31 {
		return true
	}
	r := netipx.RangeOfPrefix(prefix)
	return r.From() != ip && r.To() != ip
}
