package dnsutil

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/miekg/dns"
)

// Csv2String renders an A, AAAA or PTR RR as a single csv2 record:
//
//	<owner>\t<TYPE>\t<rdata> ~
//
// There is no trailing newline. Any other RR type returns an empty string as csv2
// fragments only ever carry these three types.
func Csv2String(rr dns.RR) string {
	var rdata string
	switch rrt := rr.(type) {
	case *dns.A:
		addr, ok := netip.AddrFromSlice(rrt.A)
		if !ok {
			return ""
		}
		rdata = addr.Unmap().String()

	case *dns.AAAA:
		addr, ok := netip.AddrFromSlice(rrt.AAAA)
		if !ok {
			return ""
		}
		rdata = addr.String() // Keeps ::ffff: on mapped addresses

	case *dns.PTR:
		rdata = rrt.Ptr

	default:
		return ""
	}

	hdr := rr.Header()

	return hdr.Name + "\t" + TypeToString(hdr.Rrtype) + "\t" + rdata + Terminator
}

// ParseCsv2 is the inverse of Csv2String. The terminator is removed and the remainder is
// handed to dns.NewRR which accepts the owner/type/rdata form as class and TTL are
// optional in presentation format.
func ParseCsv2(line string) (dns.RR, error) {
	if !strings.HasSuffix(line, Terminator) {
		return nil, fmt.Errorf("Missing '%s' terminator in '%s'",
			strings.TrimSpace(Terminator), line)
	}
	rr, err := dns.NewRR(strings.TrimSuffix(line, Terminator))
	if err != nil {
		return nil, err
	}
	if rr == nil { // NewRR returns nil, nil for blank input
		return nil, fmt.Errorf("Empty record in '%s'", line)
	}

	return rr, nil
}
