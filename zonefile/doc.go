/*
Package zonefile commits the fragments produced by convert to disk and can self-check them
beforehand.

Each fragment goes to its own file, named by appending a fixed suffix to a caller supplied
prefix:

	<prefix>_address  A and AAAA records
	<prefix>_ip4ptr   in-addr.arpa PTR records
	<prefix>_ip6ptr   ip6.arpa PTR records

A commit either replaces (override) or appends to these files. In both cases the complete
new content of every file is staged in a temporary file alongside the target and only
once all three are staged are they renamed into place. A failure while staging leaves all
targets untouched.
*/
package zonefile
