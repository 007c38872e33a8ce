package dnsutil

const (
	V4Suffix = ".in-addr.arpa." // The leading '.' is important here as some callers
	V6Suffix = ".ip6.arpa."     // rely on strings.HasSuffix() to label match.

	// Terminator ends every record in a csv2 zone fragment. MaraDNS allows records to
	// span lines so the '~' is what actually separates them.
	Terminator = " ~"
)
