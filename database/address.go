package database

import (
	"net/netip"

	"github.com/miekg/dns"

	"github.com/markdingo/dnsconvert/dnsutil"
)

// LookupPTR returns all PTRs for the address.
func (t *Database) LookupPTR(addr netip.Addr) []dns.RR {
	ar, _ := t.LookupRR(dns.TypePTR, dnsutil.IPToReverseQName(addr))

	return ar
}

// HasAddress returns true if qName has an A or AAAA record for the address.
func (t *Database) HasAddress(qName string, addr netip.Addr) bool {
	qType := dns.TypeAAAA
	if addr.Is4() {
		qType = dns.TypeA
	}
	ar, _ := t.LookupRR(qType, qName)
	for _, rr := range ar {
		if _, key := dnsutil.DeducePtr(rr); key == addr {
			return true
		}
	}

	return false
}
