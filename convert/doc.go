/*
Package convert turns host inventory lines into csv2 zone fragments.

Each data line carries an ipv4 address, an ipv6 address and a comma separated list of
hostnames:

	# ipv4        ipv6           names
	192.168.1.1   fd00:f00::1    host1,www
	192.168.1.2   none           host2

Either address may be "none". Every name gets an A and/or AAAA record in the configured
domain and each address family present gets one PTR pointing at the first name.

Conversion is all-or-nothing. Config.Run reads the whole input and returns either a
complete Result or the first *LineError encountered. Nothing is written anywhere by this
package. Committing a Result to files is left to the zonefile package so that no output
file is touched unless every line is valid.
*/
package convert
