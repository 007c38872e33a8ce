package zonefile

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"

	"github.com/markdingo/dnsconvert/convert"
	"github.com/markdingo/dnsconvert/database"
	"github.com/markdingo/dnsconvert/dnsutil"
	"github.com/markdingo/dnsconvert/log"
)

// Verify re-parses every generated record with the miekg zone parser and cross-checks
// forward and reverse records against each other. Every PTR must invert to an address of
// the name it points at and every forward address must have a PTR. It guards against a
// formatting regression producing fragments the DNS server cannot load.
func Verify(out *convert.Output) error {
	db := database.NewDatabase()
	var forward, ptrs []dns.RR
	for _, c := range convert.Categories() {
		for ix, line := range lines(out.Text(c)) {
			rr, err := dnsutil.ParseCsv2(line)
			if err == nil {
				err = checkType(c, rr)
			}
			if err != nil {
				return fmt.Errorf("%s record %d: %w", c, ix+1, err)
			}
			if !db.AddRR(rr) {
				log.Debugf("Verify: duplicate %s record %d: %s", c, ix+1, line)
			}
			if c == convert.Forward {
				forward = append(forward, rr)
			} else {
				ptrs = append(ptrs, rr)
			}
		}
	}

	for _, rr := range ptrs {
		err := verifyPtr(db, rr)
		if err != nil {
			return err
		}
	}
	for _, rr := range forward {
		_, addr := dnsutil.DeducePtr(rr)
		if len(db.LookupPTR(addr)) == 0 {
			return fmt.Errorf("%s of %s has no PTR", addr, rr.Header().Name)
		}
	}

	log.Debugf("Verify: %d records cross-checked", db.Count())

	return nil
}

// checkType makes sure the RR is of a type and family which belongs in the category.
func checkType(c convert.Category, rr dns.RR) error {
	rrType := rr.Header().Rrtype
	ptr, addr := dnsutil.DeducePtr(rr)
	switch c {
	case convert.Forward:
		if rrType != dns.TypeA && rrType != dns.TypeAAAA {
			return fmt.Errorf("unexpected type %s", dnsutil.TypeToString(rrType))
		}
		if ptr == nil {
			return fmt.Errorf("no address in %s", rr.Header().Name)
		}

	case convert.PTR4, convert.PTR6:
		if rrType != dns.TypePTR {
			return fmt.Errorf("unexpected type %s", dnsutil.TypeToString(rrType))
		}
		if ptr == nil {
			return fmt.Errorf("'%s' is not a well-formed PTR", rr.Header().Name)
		}
		if (c == convert.PTR4) != addr.Is4() {
			return fmt.Errorf("%s PTR is in the wrong fragment", addr)
		}
	}

	return nil
}

func verifyPtr(db *database.Database, rr dns.RR) error {
	ptr, addr := dnsutil.DeducePtr(rr)
	if !db.HasAddress(ptr.Ptr, addr) {
		return fmt.Errorf("%s PTR to %s has no matching forward record", addr, ptr.Ptr)
	}

	return nil
}

func lines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if len(text) == 0 {
		return nil
	}

	return strings.Split(text, "\n")
}
