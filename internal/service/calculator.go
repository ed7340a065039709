package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yitingyao/IP-Network-Calculator/internal/domain"
)

// Each octet is 0-255: one or two digits, 100-199, 200-249 or 250-255.
// Two-digit forms with a leading zero still decode to a valid octet and
// are accepted; 256 and above never match.
var addressPattern = regexp.MustCompile(
	`^(?:[0-9]{1,2}|1[0-9]{2}|2[0-4][0-9]|25[0-5])` +
		`(?:\.(?:[0-9]{1,2}|1[0-9]{2}|2[0-4][0-9]|25[0-5])){3}$`)

// Calculator derives subnet parameters from CIDR notation input.
// It holds no state between calls.
type Calculator struct {
	logger zerolog.Logger
}

// NewCalculator creates a new calculator service
func NewCalculator(logger zerolog.Logger) *Calculator {
	return &Calculator{
		logger: logger,
	}
}

// Calculate runs the full pipeline: validate the raw input, then derive
// every subnet parameter. The first validation failure is terminal and
// no partial result is produced.
func (c *Calculator) Calculate(input string) (domain.Report, error) {
	addr, bits, err := c.Parse(input)
	if err != nil {
		return domain.Report{}, err
	}
	return c.Describe(addr, bits), nil
}

// Parse validates a CIDR string and returns the address and prefix length.
// The address segment is parsed as literal text, never resolved.
func (c *Calculator) Parse(input string) (domain.Address, int, error) {
	if !strings.Contains(input, "/") {
		return domain.Address{}, 0, fmt.Errorf("%w: cidr notation requires a slash followed by the network bits", domain.ErrMissingDelimiter)
	}

	parts := strings.Split(input, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return domain.Address{}, 0, fmt.Errorf("%w: expected address/prefix, e.g. 192.168.1.1/24", domain.ErrMalformedCIDR)
	}

	addr, err := c.parseAddress(parts[0])
	if err != nil {
		return domain.Address{}, 0, err
	}

	bits, err := strconv.Atoi(parts[1])
	if err != nil {
		return domain.Address{}, 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidPrefixFormat, parts[1])
	}
	if bits < 0 || bits > 32 {
		return domain.Address{}, 0, fmt.Errorf("%w: %d is not between 0 and 32", domain.ErrPrefixOutOfRange, bits)
	}

	c.logger.Debug().
		Str("address", addr.String()).
		Int("prefix_bits", bits).
		Msg("Parsed CIDR input")

	return addr, bits, nil
}

// parseAddress validates and decodes the dotted-decimal address segment.
func (c *Calculator) parseAddress(s string) (domain.Address, error) {
	if !addressPattern.MatchString(s) {
		return domain.Address{}, fmt.Errorf("%w: %q", domain.ErrInvalidAddressFormat, s)
	}

	var addr domain.Address
	for i, group := range strings.SplitN(s, ".", 4) {
		// The pattern guarantees 0-255, so Atoi cannot fail here.
		n, _ := strconv.Atoi(group)
		addr[i] = byte(n)
	}
	return addr, nil
}

// Describe derives every subnet parameter from a validated address and
// prefix length. All arithmetic is unsigned 32-bit.
func (c *Calculator) Describe(addr domain.Address, bits int) domain.Report {
	hostBits := 32 - bits

	// Go defines unsigned shifts by >= 32 as zero, so /0 needs no special case.
	mask := ^uint32(0) << hostBits
	wildcard := ^mask

	ip := addr.Uint32()
	network := ip & mask
	broadcast := ip | wildcard

	class := addr.Class()
	defaultBits := class.DefaultPrefixBits()
	borrowed := bits - defaultBits

	report := domain.Report{
		Address:           addr,
		PrefixBits:        bits,
		SubnetMask:        domain.AddressFromUint32(mask),
		WildcardMask:      domain.AddressFromUint32(wildcard),
		Network:           domain.AddressFromUint32(network),
		Broadcast:         domain.AddressFromUint32(broadcast),
		Class:             class,
		DefaultPrefixBits: defaultBits,
		BorrowedBits:      borrowed,
		HostBits:          hostBits,
	}

	// A /31 or /32 leaves no room for a network+host+broadcast layout;
	// the host range and usable count are reported as absent, never wrapped.
	if hostBits >= 2 {
		report.HasHostRange = true
		report.FirstHost = domain.AddressFromUint32(network + 1)
		report.LastHost = domain.AddressFromUint32(broadcast - 1)
		report.UsableHosts = 1<<uint(hostBits) - 2
	}

	// Supernetted input (prefix shorter than the classful default) has no
	// whole number of subnets; reported as zero rather than a fraction.
	if borrowed >= 0 {
		report.TotalSubnets = 1 << uint(borrowed)
	}

	c.logger.Debug().
		Str("cidr", report.CIDR()).
		Str("broadcast", report.Broadcast.String()).
		Str("class", class.String()).
		Int("borrowed_bits", borrowed).
		Msg("Derived subnet parameters")

	return report
}
