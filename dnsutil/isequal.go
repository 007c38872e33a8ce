package dnsutil

import (
	"strings"

	"github.com/miekg/dns"
)

// RRIsEqual returns true if the RRs are "effectively" identical. That means they are
// identical excepting for TTL and case. Miekg does not offer a public function that
// compares the non-header part of an RR so the presentation forms are compared with the
// header text removed.
func RRIsEqual(a, b dns.RR) bool {
	ah := a.Header()
	bh := b.Header()

	if ah.Class != bh.Class ||
		ah.Rrtype != bh.Rrtype ||
		dns.CanonicalName(ah.Name) != dns.CanonicalName(bh.Name) {
		return false
	}

	as := strings.TrimPrefix(a.String(), ah.String())
	bs := strings.TrimPrefix(b.String(), bh.String())

	return strings.EqualFold(as, bs)
}
