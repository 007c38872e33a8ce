package convert

import (
	"bufio"
	"fmt"
	"io"

	"github.com/markdingo/dnsconvert/log"
)

const maxLineLength = 1024 * 1024

// Result is the outcome of a successful run. Output is empty when records were not
// generated.
type Result struct {
	Output *Output
	Counts Counts
}

// Run reads every line from r, parsing and validating each one and, if generate is true,
// accumulating the generated records. The first malformed or invalid line aborts the run
// with a *LineError and a nil Result. Nothing is written anywhere other than the returned
// Result, so a failed run leaves no trace.
//
// Line numbers start at 1 and include comment and blank lines so they match what an
// editor shows.
func (t *Config) Run(r io.Reader, generate bool) (*Result, error) {
	res := &Result{Output: &Output{}}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		rec, err := ParseLine(lineNo, scanner.Text())
		if err != nil {
			return nil, err
		}
		if rec == nil {
			continue // Comment or blank
		}

		e, err := t.Validate(rec)
		if err != nil {
			return nil, err
		}

		c := Counts{Lines: 1}
		if generate {
			gc := t.Generate(e, res.Output)
			c.add(&gc)
		}
		res.Counts.add(&c)

		if log.IfDebug() {
			log.Debugf("%d: v4=%s v6=%s names=%v", lineNo, e.IPv4, e.IPv6, e.Names)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("Read failed after line %d: %w", lineNo, err)
	}

	return res, nil
}
