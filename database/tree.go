package database

import (
	"strings"

	"github.com/miekg/dns"

	"github.com/markdingo/dnsconvert/dnsutil"
)

// If RR is a.b.c. IN A 1.2.3.4, then the reference to the RR is:
//
// rrSet := database.root.children[c].children[b].children[a].tm[A]

type typeMap map[uint16][]dns.RR

type node struct {
	tm       typeMap  // Both of these maps are created on-demand so that the
	children labelMap // presence of a map implies at least one map entry.
}

type labelMap map[string]*node

// Database is constructed with NewDatabase() - using a default construction will result
// in a panic due to an unconstructed root.
type Database struct {
	root  *node
	count int // RRs added
}

// NewDatabase *must* be used to construct a new database
func NewDatabase() *Database {
	return &Database{root: &node{}}
}

// AddRR adds the RR into the tree. Return true if it was added. Return false if it's a
// duplicate or not class IN. Duplicates are legitimate in generated output when the
// input repeats a name and address, so callers decide whether they matter.
func (t *Database) AddRR(rr dns.RR) bool {
	if rr.Header().Class != dns.ClassINET {
		return false
	}

	parent := t.root
	for _, label := range reverseLabels(rr.Header().Name) { // Iterate down the labels
		if parent.children == nil {
			parent.children = make(labelMap)
		}
		child := parent.children[label]
		if child == nil {
			child = &node{}
			parent.children[label] = child
		}
		parent = child
	}

	// "parent" points to the bottom of the qName tree which is not necessarily the
	// bottom of the database tree.

	if parent.tm == nil {
		parent.tm = make(typeMap)
	}

	qType := rr.Header().Rrtype
	rrset := parent.tm[qType]
	for _, eRR := range rrset {
		if dnsutil.RRIsEqual(eRR, rr) {
			return false
		}
	}

	parent.tm[qType] = append(rrset, rr)
	t.count++

	return true
}

// LookupRR returns the matching RRs which must not be modified by the caller. nxDomain is
// true if there is no node for the qName. A node is only ever created when there is
// something to add into it so the presence of a node implies RRs or children.
func (t *Database) LookupRR(qType uint16, qName string) (ans []dns.RR, nxDomain bool) {
	parent := t.root
	for _, label := range reverseLabels(qName) {
		child := parent.children[label] // Reading a nil map is fine
		if child == nil {
			return nil, true
		}
		parent = child
	}

	// "parent" points to the bottom of the qName tree

	return parent.tm[qType], false
}

// Count returns the total count of all RRs in the database.
func (t *Database) Count() int {
	return t.count
}

// reverseLabels returns the labels of the canonical name from the root down. The root
// name returns no labels.
func reverseLabels(qName string) []string {
	qName = dnsutil.ChompCanonicalName(qName)
	if len(qName) == 0 {
		return nil
	}
	labels := strings.Split(qName, ".")
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}

	return labels
}
