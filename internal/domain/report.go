package domain

import "strconv"

// Report holds every value derived from a validated (address, prefix) pair.
// It is computed fresh per calculation and never mutated afterwards.
type Report struct {
	Address    Address `json:"address"`
	PrefixBits int     `json:"prefix_bits"`

	SubnetMask   Address `json:"subnet_mask"`
	WildcardMask Address `json:"wildcard_mask"`
	Network      Address `json:"network"`
	Broadcast    Address `json:"broadcast"`

	// FirstHost and LastHost are meaningful only when HasHostRange is true.
	// Prefixes of /31 and /32 leave no room for a classic host range.
	FirstHost    Address `json:"first_host"`
	LastHost     Address `json:"last_host"`
	HasHostRange bool    `json:"has_host_range"`

	Class             Class `json:"class"`
	DefaultPrefixBits int   `json:"default_prefix_bits"`

	// BorrowedBits may be negative for supernetted input; reported as-is.
	BorrowedBits int `json:"borrowed_bits"`
	HostBits     int `json:"host_bits"`

	// UsableHosts is 0 when the prefix leaves fewer than two host addresses.
	// TotalSubnets is 0 when BorrowedBits is negative.
	UsableHosts  uint64 `json:"usable_hosts"`
	TotalSubnets uint64 `json:"total_subnets"`
}

// CIDR returns the network in cidr notation, e.g. "192.168.1.0/24".
func (r Report) CIDR() string {
	return r.Network.String() + "/" + strconv.Itoa(r.PrefixBits)
}
