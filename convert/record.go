package convert

import (
	"strings"
)

const (
	commentPrefix = "#"
	noAddress     = "none" // Placeholder for an absent address
	nameSeparator = ","
)

// Record is one parsed but not yet validated input line. Empty address strings mean the
// line said "none".
type Record struct {
	Line  int
	IPv4  string
	IPv6  string
	Names []string // Names[0] is the primary name used for PTRs
}

// ParseLine splits a raw input line into a Record. Comment and blank lines return a nil
// Record and a nil error. Data lines must have exactly three whitespace separated fields
// otherwise an ErrMalformedLine LineError is returned.
func ParseLine(lineNo int, line string) (*Record, error) {
	if strings.HasPrefix(line, commentPrefix) {
		return nil, nil
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}
	if len(fields) != 3 {
		return nil, newLineError(lineNo, ErrMalformedLine, "got %d", len(fields))
	}

	rec := &Record{Line: lineNo, IPv4: fields[0], IPv6: fields[1]}
	if rec.IPv4 == noAddress {
		rec.IPv4 = ""
	}
	if rec.IPv6 == noAddress {
		rec.IPv6 = ""
	}
	rec.Names = strings.Split(fields[2], nameSeparator)

	return rec, nil
}
