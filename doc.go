// Copyright (c) 2021, 2022 Mark Delany. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

// This file exists so that "go doc github.com/markdingo/dnsconvert" displays something
// useful.

/*

Package dnsconvert converts a simple host list into forward and reverse zone fragments in
the MaraDNS csv2 format. Each input line names an IPv4 address, an IPv6 address and a
list of hostnames. dnsconvert generates A and AAAA records for every hostname and a PTR
for the first hostname of each address.

The input is checked in full before any output is written. Addresses must lie within the
configured ranges and hostnames must match the configured pattern. One bad line means no
output file is touched.

The command lives in cmd/dnsconvert.

Project site: https://github.com/markdingo/dnsconvert

*/
package dnsconvert
