package dnsutil

import (
	"net/netip"
	"testing"
)

func TestInvertToIPv4(t *testing.T) {
	testCases := []struct {
		input     string
		expect    string
		truncated bool
	}{
		{"1.2.3.4", "4.3.2.1", false},
		{"255.255.255.255", "255.255.255.255", false},
		{"255.255.255", "255.255.255.0", true},
		{"255.255.255.255.255", "", false},
		{"001.2.3.4", "", false},
		{"a.b.c.d.e", "", false},
		{"11.120.0.205", "205.0.120.11", false},
		{"", "", false},
	}

	for ix, tc := range testCases {
		addr, truncated, err := InvertPtrToIPv4(tc.input)
		if err != nil {
			if len(tc.expect) == 0 {
				continue
			}
			t.Error(ix, "Unexpected error with", tc.input, err)
			continue
		}
		if len(tc.expect) == 0 { // Expect error?
			t.Error(ix, "Expected error, got none with", tc.input, "and", addr)
			continue
		}
		if addr.String() != tc.expect {
			t.Error(ix, "Mismatch. Input:", tc.input, "got", addr)
		}
		if truncated != tc.truncated {
			t.Error(ix, "Truncated mismatch. Input:", tc.input, "got", truncated)
		}
	}
}

func TestInvertToIPv6(t *testing.T) {
	testCases := []struct{ input, expect string }{
		{"1.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0", "::1"},
		{"3.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.f.8.0.a.0.0.0.3.0.3.0.4.2",
			"2403:300:a08:f000::3"},
		{"7.d.0.5.2.d.a.c.5.c.b.7.1.8.8.0.0.3.e.f.e.d.5.9.3.6.3.e.d.2.d.f",
			"fd2d:e363:95de:fe30:881:7bc5:cad2:50d7"},
		{"7.D.0.5.2.d.a.c.5.c.b.7.1.8.8.0.0.3.e.f.e.d.5.9.3.6.3.e.d.2.d.f",
			"fd2d:e363:95de:fe30:881:7bc5:cad2:50d7"},
		{"7.d.0.5.2.d.a.c.5..b.7.1.8.8.0.0.3.e.f.e.d.5.9.3.6.3.e.d.2.d.f", ""},
		{"7.d.0.5.2.d.a.c.5.g.b.7.1.8.8.0.0.3.e.f.e.d.5.9.3.6.3.e.d.2.d.f", ""},
		{"001.2.3.4", ""},
		{"11.120.0.205", ""},
		{"X.d.0.5.2.d.a.c.5.c.b.7.1.8.8.0.0.3.e.f.e.d.5.9.3.6.3.e.d.2.d.X", ""},
	}

	for ix, tc := range testCases {
		addr, _, err := InvertPtrToIPv6(tc.input)
		if err != nil {
			if len(tc.expect) == 0 {
				continue
			}
			t.Error(ix, "Unexpected error with", tc.input, err)
			continue
		}
		if len(tc.expect) == 0 { // Expect error?
			t.Error(ix, "Expected error, got none with", tc.input, "and", addr)
			continue
		}
		if addr.String() != tc.expect {
			t.Error(ix, "Mismatch. Input:", tc.input, "got", addr)
		}
	}
}

func TestInvertRoundTrip(t *testing.T) {
	for ix, s := range []string{"192.168.1.1", "10.20.30.40", "fd00:f00::1", "2001:db8::abcd"} {
		addr := netip.MustParseAddr(s)
		got, truncated, err := InvertPtrToIP(IPToReverseQName(addr))
		if err != nil {
			t.Error(ix, "Unexpected error", err)
			continue
		}
		if truncated || got != addr {
			t.Error(ix, "Round trip failed. Want", addr, "got", got, truncated)
		}
	}

	_, _, err := InvertPtrToIP("example.net.")
	if err == nil {
		t.Error("Expected error from forward name")
	}
}

func TestConvertDecimalOctet(t *testing.T) {
	testCases := []struct {
		input  string
		expect int
	}{
		{"", -1},
		{"z", -1},
		{".255.", -1},
		{"123", 123},
		{"0", 0},
		{"255", 255},
		{"256", -1},
		{"25x", -1},
		{"001", -1},
	}

	for ix, tc := range testCases {
		ret := convertDecimalOctet(tc.input)
		if ret != tc.expect {
			t.Error(ix, "Input:", tc.input, "Expected:", tc.expect, "Got:", ret)
		}
	}
}
