package convert

import (
	"net/netip"

	"github.com/miekg/dns"
)

// Entry is a Record which has passed validation. A zero netip.Addr means that address
// family is absent.
type Entry struct {
	Line  int
	IPv4  netip.Addr
	IPv6  netip.Addr
	Names []string
}

// Validate checks a Record against the Config and returns the corresponding Entry. Checks
// occur in a fixed order: addresses present, names present, ipv4, ipv6, then each name in
// turn. The first failure is returned as a *LineError.
func (t *Config) Validate(rec *Record) (*Entry, error) {
	if len(rec.IPv4) == 0 && len(rec.IPv6) == 0 {
		return nil, &LineError{Line: rec.Line, Err: ErrNoAddress}
	}
	if len(rec.Names) == 0 {
		return nil, &LineError{Line: rec.Line, Err: ErrNoNames}
	}

	e := &Entry{Line: rec.Line, Names: rec.Names}

	if len(rec.IPv4) > 0 {
		addr, err := netip.ParseAddr(rec.IPv4)
		if err != nil || !addr.Is4() {
			return nil, newLineError(rec.Line, ErrInvalidIPv4, "%s", rec.IPv4)
		}
		if !t.IPv4Range.Contains(addr) {
			return nil, newLineError(rec.Line, ErrAddressOutOfRange,
				"%s not in %s", addr, t.IPv4Range)
		}
		e.IPv4 = addr
	}

	if len(rec.IPv6) > 0 {
		addr, err := netip.ParseAddr(rec.IPv6)
		if err != nil || !addr.Is6() || len(addr.Zone()) > 0 {
			return nil, newLineError(rec.Line, ErrInvalidIPv6, "%s", rec.IPv6)
		}
		if !t.IPv6Range.Contains(addr) {
			return nil, newLineError(rec.Line, ErrAddressOutOfRange,
				"%s not in %s", addr, t.IPv6Range)
		}
		e.IPv6 = addr
	}

	for _, name := range rec.Names {
		if !t.Hostname.MatchString(name) {
			return nil, newLineError(rec.Line, ErrInvalidHostname, "'%s'", name)
		}
		if _, ok := dns.IsDomainName(t.qualify(name)); !ok { // Label and name lengths
			return nil, newLineError(rec.Line, ErrInvalidHostname,
				"'%s' is not a legal domain name in %s", name, t.Domain)
		}
	}

	return e, nil
}

// qualify appends the domain to a hostname.
func (t *Config) qualify(name string) string {
	return name + "." + t.Domain
}
