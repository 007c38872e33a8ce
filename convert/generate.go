package convert

import (
	"net/netip"

	"github.com/miekg/dns"

	"github.com/markdingo/dnsconvert/dnsutil"
)

// Generate appends the records for a validated Entry to out and returns the counts of
// what was appended. Each address family present produces one forward record per name,
// followed by a single PTR for the primary name.
func (t *Config) Generate(e *Entry, out *Output) (c Counts) {
	if e.IPv4.IsValid() {
		t.generateFamily(e.Names, e.IPv4, PTR4, out)
		c.A += len(e.Names)
		c.PTR4++
	}
	if e.IPv6.IsValid() {
		t.generateFamily(e.Names, e.IPv6, PTR6, out)
		c.AAAA += len(e.Names)
		c.PTR6++
	}

	return
}

func (t *Config) generateFamily(names []string, addr netip.Addr, ptrCat Category, out *Output) {
	var primary dns.RR
	for _, name := range names {
		rr := dnsutil.SynthesizeAddress(t.qualify(name), addr)
		if primary == nil {
			primary = rr
		}
		out.append(Forward, dnsutil.Csv2String(rr))
	}

	ptr, _ := dnsutil.DeducePtr(primary)
	out.append(ptrCat, dnsutil.Csv2String(ptr))
}
