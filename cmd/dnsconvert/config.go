package main

import (
	"fmt"
	"runtime/debug"

	"github.com/markdingo/dnsconvert/configfile"
	"github.com/markdingo/dnsconvert/log"
	"github.com/markdingo/dnsconvert/pregen"
)

const (
	programName = "dnsconvert"

	// Uppercase HTTPS implies BuildInfo was empty, which is of some use when looking at
	// version output from an odd build.
	defaultProjectURL = "HTTPS://github.com/markdingo/dnsconvert"
)

// config defines the settings of one dnsconvert invocation. It is populated by the flags
// package and then checked by ValidateCommandLineOptions.
type config struct {
	projectURL string

	logMajorFlag bool // Summary of the run
	logMinorFlag bool // Dump of generated fragments and files written
	logDebugFlag bool // Trace of every accepted line

	checkOnlyFlag bool // Validate input only - never touch output files
	overrideFlag  bool // Replace rather than append to output files
	verifyFlag    bool // Re-parse and cross-check generated records before commit

	configPath string          // YAML config file, if any
	network    configfile.File // Network settings from the command line

	inputPath    string // Positional arguments
	outputPrefix string
}

func newConfig() *config {
	t := &config{projectURL: defaultProjectURL}
	info, ok := debug.ReadBuildInfo()
	if ok && len(info.Main.Path) > 0 {
		t.projectURL = info.Main.Path // Override with embedded if present
	}

	return t
}

func (t *config) printVersion() {
	fmt.Fprintf(log.Out(), "Program:     %s %s (%s)\n",
		programName, pregen.Version, pregen.ReleaseDate)
	fmt.Fprintf(log.Out(), "Project:     %s\n", t.projectURL)
	fmt.Fprintf(log.Out(), "Zone format: %s\n", "https://maradns.samiam.org/tutorial/man.csv2.html")
}
