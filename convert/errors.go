package convert

import (
	"errors"
	"fmt"
)

// Every line-level failure wraps exactly one of these. They are all fatal to a run.
var (
	ErrMalformedLine     = errors.New("Malformed line, expected 3 fields")
	ErrNoAddress         = errors.New("Neither IPv4 nor IPv6 address specified")
	ErrNoNames           = errors.New("No names specified")
	ErrInvalidIPv4       = errors.New("Invalid IPv4 address")
	ErrInvalidIPv6       = errors.New("Invalid IPv6 address")
	ErrAddressOutOfRange = errors.New("Address not in permitted range")
	ErrInvalidHostname   = errors.New("Invalid name")
)

// LineError identifies the offending input line and why it was rejected. Use errors.Is
// against the Err* sentinels to determine the reason.
type LineError struct {
	Line   int
	Err    error
	Detail string // Optional specifics, such as the offending value
}

func newLineError(line int, err error, format string, a ...interface{}) *LineError {
	return &LineError{Line: line, Err: err, Detail: fmt.Sprintf(format, a...)}
}

func (t *LineError) Error() string {
	s := fmt.Sprintf("line %d: %s", t.Line, t.Err)
	if len(t.Detail) > 0 {
		s += ": " + t.Detail
	}

	return s
}

func (t *LineError) Unwrap() error {
	return t.Err
}
