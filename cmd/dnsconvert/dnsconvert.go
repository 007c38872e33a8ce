package main

import (
	"fmt"
	"os"
	"time"

	"github.com/markdingo/dnsconvert/convert"
	"github.com/markdingo/dnsconvert/log"
	"github.com/markdingo/dnsconvert/osutil"
	"github.com/markdingo/dnsconvert/zonefile"
)

// The dnsConvert container exists so that most of the "main" functionality can be
// delegated to support functions and help keep the flow of main() nice and clean.
type dnsConvert struct {
	cfg        *config
	convertCfg *convert.Config // Set by ValidateCommandLineOptions
	startTime  time.Time
	signals    chan os.Signal // Trapped while output files are committed
}

func newDNSConvert(cfg *config) *dnsConvert {
	t := &dnsConvert{cfg: cfg, startTime: time.Now(), signals: make(chan os.Signal, 1)}
	if t.cfg == nil {
		t.cfg = newConfig()
	}

	return t
}

// execute runs the two phases: convert the whole input in memory, then, only if that
// succeeded, commit the result to the output files.
func (t *dnsConvert) execute() error {
	f, err := os.Open(t.cfg.inputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := t.convertCfg.Run(f, !t.cfg.checkOnlyFlag)
	if err != nil {
		return fmt.Errorf("%s %w", t.cfg.inputPath, err)
	}

	if t.cfg.checkOnlyFlag {
		log.Majorf("Check only: %s is valid with %d lines", t.cfg.inputPath, res.Counts.Lines)
		return nil
	}

	if log.IfMinor() {
		log.Minor(res.Output.Dump())
	}

	if t.cfg.verifyFlag {
		err = zonefile.Verify(res.Output)
		if err != nil {
			return fmt.Errorf("Generated records failed verification: %w", err)
		}
	}

	// Up to here the default signal action kills the process with nothing written. Once
	// Commit starts, all three files have to be replaced so signals are held back until
	// it finishes.
	osutil.SignalNotify(t.signals)
	defer osutil.SignalStop(t.signals)

	err = zonefile.Commit(t.cfg.outputPrefix, res.Output, t.cfg.overrideFlag)
	if err != nil {
		return err
	}

	t.statsReport(&res.Counts)

	select {
	case s := <-t.signals:
		return fmt.Errorf("Interrupted by %s after output was committed", s)
	default:
	}

	return nil
}

// Writes summary stats via the log
func (t *dnsConvert) statsReport(c *convert.Counts) {
	if !log.IfMajor() {
		return
	}
	mode := "Appended"
	if t.cfg.overrideFlag {
		mode = "Wrote"
	}
	log.Majorf("%s %d records to %s{%s,%s,%s} in %s", mode, c.Records(), t.cfg.outputPrefix,
		zonefile.AddressSuffix, zonefile.IPv4PTRSuffix, zonefile.IPv6PTRSuffix,
		time.Since(t.startTime).Round(time.Millisecond))
	log.Major("Stats: ", c.String())
}
