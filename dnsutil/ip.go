package dnsutil

import (
	"fmt"
	"net/netip"
	"strings"
)

// IPToReverseQName converts an IP address into the reverse name normally looked up in the
// reverse path. It includes the reverse suffix, is fully qualified and is ready for use as
// a PTR owner name.
//
// ipv4 addresses have their octets reversed. ipv6 addresses are exploded into all 32
// nibbles which are then reversed and dot-separated. An ipv4-mapped ipv6 address is
// treated as ipv6 as that is how it was presented. An empty string is returned if the
// address is the zero netip.Addr.
func IPToReverseQName(addr netip.Addr) string {
	if !addr.IsValid() { // Emulate net.ParseIP and be nice.
		return ""
	}
	if addr.Is4() {
		b := addr.As4()
		return fmt.Sprintf("%d.%d.%d.%d%s", b[3], b[2], b[1], b[0], V4Suffix)
	}

	b := addr.As16()
	joiner := make([]string, 0, 32)
	for ix := 15; ix >= 0; ix-- {
		joiner = append(joiner, fmt.Sprintf("%x", b[ix]&0xf))
		joiner = append(joiner, fmt.Sprintf("%x", b[ix]&0xf0>>4))
	}

	return strings.Join(joiner, ".") + V6Suffix
}
