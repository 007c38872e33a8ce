package dnsutil

import (
	"net"
	"net/netip"

	"github.com/miekg/dns"
)

// SynthesizeAddress creates the forward RR for owner and addr. An ipv4 address produces a
// dns.A and everything else, including ipv4-mapped ipv6 addresses, produces a
// dns.AAAA. The TTL is left at zero as csv2 fragments inherit the zone default.
//
// The owner parameter is assumed to be fully qualified and canonical.
func SynthesizeAddress(owner string, addr netip.Addr) dns.RR {
	hdr := dns.RR_Header{Name: owner, Class: dns.ClassINET}
	if addr.Is4() {
		hdr.Rrtype = dns.TypeA
		b := addr.As4()
		return &dns.A{Hdr: hdr, A: net.IP(b[:])}
	}

	hdr.Rrtype = dns.TypeAAAA
	b := addr.As16()

	return &dns.AAAA{Hdr: hdr, AAAA: net.IP(b[:])}
}
