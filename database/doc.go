/*
Package database provides a hierarchical lookup of the records generated by one conversion
run. LookupRR() requires a type and FQDN and returns a set of RRs or an NXDOMAIN
indication.

The database is only used to cross-check generated fragments before they are committed,
so it holds class IN records only and has no concurrency protection.

Expected usage is:

    db := database.NewDatabase()
    for {
        db.AddRR(dns.RR)
    }

    fmt.Println("Size", db.Count())
    for {
        rrset, nxDomain := db.LookupRR(...)
    }

Lookups keyed by address rather than name are provided by LookupPTR() and HasAddress().
*/
package database
