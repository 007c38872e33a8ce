package database

import (
	"net/netip"
	"testing"
)

func TestAddressLookups(t *testing.T) {
	db := NewDatabase()
	db.AddRR(newRR("host1.example.net. IN A 192.168.1.1"))
	db.AddRR(newRR("host1.example.net. IN AAAA fd00:f00::1"))
	db.AddRR(newRR("1.1.168.192.in-addr.arpa. IN PTR host1.example.net."))

	a4 := netip.MustParseAddr("192.168.1.1")
	a6 := netip.MustParseAddr("fd00:f00::1")
	other := netip.MustParseAddr("192.168.1.2")

	if len(db.LookupPTR(a4)) != 1 {
		t.Error("Expected one PTR for", a4)
	}
	if len(db.LookupPTR(a6)) != 0 {
		t.Error("Did not expect a PTR for", a6)
	}
	if len(db.LookupPTR(other)) != 0 {
		t.Error("Did not expect a PTR for", other)
	}

	testCases := []struct {
		qName  string
		addr   netip.Addr
		expect bool
	}{
		{"host1.example.net.", a4, true},
		{"HOST1.example.net", a4, true},
		{"host1.example.net.", a6, true},
		{"host1.example.net.", other, false},
		{"host2.example.net.", a4, false},
		{"example.net.", a4, false},
	}
	for ix, tc := range testCases {
		if db.HasAddress(tc.qName, tc.addr) != tc.expect {
			t.Error(ix, "HasAddress", tc.qName, tc.addr, "should be", tc.expect)
		}
	}
}
