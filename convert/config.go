package convert

import (
	"fmt"
	"net/netip"
	"regexp"

	"github.com/miekg/dns"
)

// The defaults describe the network this tool was first written for. Most installations
// override them with a config file.
const (
	DefaultDomain          = "example.net."
	DefaultIPv4Range       = "192.168.0.0/16"
	DefaultIPv6Range       = "fd00:f00::/64"
	DefaultHostnamePattern = `^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`
)

// Config is everything a run needs to know about the target network. It is constructed
// with NewConfig and never modified afterwards.
type Config struct {
	Domain    string // Canonical and fully qualified
	IPv4Range netip.Prefix
	IPv6Range netip.Prefix
	Hostname  *regexp.Regexp
}

// NewConfig validates and converts the textual settings. The domain is made fully
// qualified and canonical. Both ranges must be of the correct family and must not have
// host bits set, e.g. 192.168.1.0/16 is rejected.
func NewConfig(domain, ipv4Range, ipv6Range, hostnamePattern string) (*Config, error) {
	if len(domain) == 0 {
		return nil, fmt.Errorf("Domain must not be empty")
	}
	domain = dns.Fqdn(domain)
	if _, ok := dns.IsDomainName(domain); !ok || domain == "." {
		return nil, fmt.Errorf("Invalid domain name: %s", domain)
	}

	t := &Config{Domain: dns.CanonicalName(domain)}

	var err error
	t.IPv4Range, err = parseRange("IPv4", ipv4Range, true)
	if err != nil {
		return nil, err
	}
	t.IPv6Range, err = parseRange("IPv6", ipv6Range, false)
	if err != nil {
		return nil, err
	}

	t.Hostname, err = regexp.Compile(hostnamePattern)
	if err != nil {
		return nil, fmt.Errorf("Hostname pattern %s: %w", hostnamePattern, err)
	}

	return t, nil
}

func parseRange(family, cidr string, want4 bool) (netip.Prefix, error) {
	prefix, err := netip.ParsePrefix(cidr)
	if err != nil {
		return prefix, fmt.Errorf("%s range %s: %w", family, cidr, err)
	}
	if prefix.Addr().Is4() != want4 {
		return prefix, fmt.Errorf("%s range %s is the wrong address family", family, cidr)
	}
	if prefix.Masked() != prefix {
		return prefix, fmt.Errorf("%s range %s has host bits set", family, cidr)
	}

	return prefix, nil
}
