package dnsutil

import (
	"net/netip"
	"testing"

	"github.com/miekg/dns"
)

func TestSynthesizeAddress(t *testing.T) {
	testCases := []struct {
		addr   string
		rrType uint16
		csv2   string
	}{
		{"192.168.1.1", dns.TypeA, "a.example.net.\tA\t192.168.1.1 ~"},
		{"fd00:f00::1", dns.TypeAAAA, "a.example.net.\tAAAA\tfd00:f00::1 ~"},
		{"::ffff:192.168.1.1", dns.TypeAAAA, "a.example.net.\tAAAA\t::ffff:192.168.1.1 ~"},
	}

	for ix, tc := range testCases {
		rr := SynthesizeAddress("a.example.net.", netip.MustParseAddr(tc.addr))
		if rr.Header().Rrtype != tc.rrType {
			t.Error(ix, "Wrong type", TypeToString(rr.Header().Rrtype))
		}
		if rr.Header().Class != dns.ClassINET {
			t.Error(ix, "Wrong class", rr.Header().Class)
		}
		got := Csv2String(rr)
		if got != tc.csv2 {
			t.Errorf("%d Got %q Want %q", ix, got, tc.csv2)
		}
	}
}
