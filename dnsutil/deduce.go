package dnsutil

import (
	"net/netip"

	"github.com/miekg/dns"
)

// DeducePtr converts a dns.A/AAAA RR into a dns.PTR and returns the RR if it's already a
// recognizable/convertible PTR. If the wrong type of RR is supplied a nil value is
// returned. The "key" value is the IP address regardless of the RR type. It lets callers
// match a PTR against the forward records it was deduced from.
func DeducePtr(rr dns.RR) (ptr *dns.PTR, key netip.Addr) {
	switch rrt := rr.(type) {
	case *dns.A:
		addr, ok := netip.AddrFromSlice(rrt.A)
		if !ok {
			return
		}
		key = addr.Unmap() // dns.A may hold a 16 byte net.IP
		ptr = newPtr(&rrt.Hdr, key)

	case *dns.AAAA:
		addr, ok := netip.AddrFromSlice(rrt.AAAA)
		if !ok || !addr.Is6() {
			return
		}
		key = addr
		ptr = newPtr(&rrt.Hdr, key)

	case *dns.PTR:
		addr, truncated, err := InvertPtrToIP(rrt.Hdr.Name) // See if it's well-formed first
		if err == nil && !truncated {
			ptr = rrt
			key = addr
		}
	}

	return
}

func newPtr(hdr *dns.RR_Header, addr netip.Addr) *dns.PTR {
	ptr := &dns.PTR{}
	ptr.Hdr.Name = IPToReverseQName(addr)
	ptr.Hdr.Rrtype = dns.TypePTR
	ptr.Hdr.Class = hdr.Class
	ptr.Hdr.Ttl = hdr.Ttl
	ptr.Ptr = hdr.Name

	return ptr
}
