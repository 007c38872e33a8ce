package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/markdingo/dnsconvert/log"
	"github.com/markdingo/dnsconvert/pregen"
)

func reportError(severity string, err error, messages ...string) {
	msg := severity
	if len(messages) > 0 {
		msg += ": " + strings.Join(messages, " ")
	}
	if err != nil {
		msg += ": " + err.Error()
	}
	fmt.Fprintln(log.Out(), msg)
}

func fatal(err error, messages ...string) {
	reportError("Fatal", err, messages...)
	os.Exit(1)
}

func warning(err error, messages ...string) {
	reportError("Warning", err, messages...)
}

//////////////////////////////////////////////////////////////////////

func main() {
	dc := newDNSConvert(nil)
	switch dc.parseOptions(os.Args) {
	case parseStop:
		return
	case parseFailed:
		os.Exit(1)
	case parseContinue:
	}

	// Transfer logging options to the log package

	if dc.cfg.logMajorFlag {
		log.SetLevel(log.MajorLevel)
	}
	if dc.cfg.logMinorFlag {
		log.SetLevel(log.MinorLevel)
	}
	if dc.cfg.logDebugFlag {
		log.SetLevel(log.DebugLevel)
	}

	log.Minorf("%s %s Starting with Log Level: %s", programName, pregen.Version, log.Level())

	// Validate everything that is likely a typo or usage error before touching any
	// input or output files.
	err := dc.ValidateCommandLineOptions()
	if err != nil {
		fatal(err)
	}

	err = dc.execute()
	if err != nil {
		fatal(err)
	}
}
