package main

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/markdingo/dnsconvert/convert"
	"github.com/markdingo/dnsconvert/log"
	"github.com/markdingo/dnsconvert/zonefile"
)

type parseResult int // This is a ternary variable
const (
	parseStop     parseResult = iota // No error, but don't continue
	parseContinue                    // No errors and continue
	parseFailed                      // Errors, do not continue
)

// parseOptions populates t.cfg from the command line. Usage and version output is handled
// here and results in parseStop.
//
// As with most flag packages, pflag silently accepts duplicate options with the last one
// winning. That's a trap with options like --domain where a forgotten earlier value in a
// wrapper script could silently be overridden, so duplicates are rejected.
func (t *dnsConvert) parseOptions(args []string) parseResult {
	var helpFlag, versionFlag bool

	name := programName
	if len(args) > 0 {
		name = args[0]
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Consider '-h' for command-line usage")
	}

	fs.SetOutput(log.Out())

	// Non-config flags

	fs.BoolVarP(&helpFlag, "help", "h", false, "Print command-line usage")
	fs.BoolVarP(&versionFlag, "version", "v", false, "Print version and origin URL")

	// config flags

	fs.BoolVarP(&t.cfg.checkOnlyFlag, "check-only", "c", false,
		`Do not output a DNS server config, just check the input.
outputprefix may be omitted.`)
	fs.BoolVarP(&t.cfg.overrideFlag, "override-output", "O", false,
		"Flush the output files before writing to them")
	fs.BoolVar(&t.cfg.verifyFlag, "verify", true,
		`Re-parse all generated records and confirm every PTR
matches a forward record before writing any output.`)

	fs.BoolVar(&t.cfg.logMajorFlag, "log-major", true, "Log a summary of the run to Stderr")
	fs.BoolVar(&t.cfg.logMinorFlag, "log-minor", false,
		`Log generated records and files written to Stderr - this
implies --log-major`)
	fs.BoolVar(&t.cfg.logDebugFlag, "log-debug", false,
		"Log each accepted input line to Stderr - this implies --log-minor")

	// config StringVars

	fs.StringVarP(&t.cfg.configPath, "config", "f", "",
		`YAML file containing any of domain, ipv4-range, ipv6-range
and hostname-pattern. Command-line options take precedence.
`)
	fs.StringVar(&t.cfg.network.Domain, "domain", "",
		"Domain appended to every name (default "+convert.DefaultDomain+")")
	fs.StringVar(&t.cfg.network.IPv4Range, "ipv4-range", "",
		"CIDR all ipv4 addresses must be within (default "+convert.DefaultIPv4Range+")")
	fs.StringVar(&t.cfg.network.IPv6Range, "ipv6-range", "",
		"CIDR all ipv6 addresses must be within (default "+convert.DefaultIPv6Range+")")
	fs.StringVar(&t.cfg.network.HostnamePattern, "hostname-pattern", "",
		`Regular expression every name must match
(default `+convert.DefaultHostnamePattern+`)`)

	////////////////////////////////////////

	dupes := make(map[string]bool) // True means dupes are ok

	dupes["help"] = true    // Documentation options that never run dnsconvert can be
	dupes["version"] = true // duplicated because the user may be fumbling around.

	err := fs.ParseAll(args[1:],
		func(f *flag.Flag, v string) error {
			if tf, ok := dupes[f.Name]; ok {
				if tf {
					return fs.Set(f.Name, v)
				}
				return fmt.Errorf("Duplicate option '--%v %v' not allowed",
					f.Name, v)
			}
			dupes[f.Name] = false
			return fs.Set(f.Name, v)
		})

	if err != nil {
		fmt.Fprintln(log.Out(), "Error:", err.Error())
		return parseFailed
	}

	// Handle all documentation options locally

	if helpFlag {
		printUsage(fs)
		fmt.Fprintln(log.Out())
		t.cfg.printVersion()
		return parseStop
	}

	if versionFlag {
		t.cfg.printVersion()
		return parseStop
	}

	return t.parsePositional(fs.Args())
}

// parsePositional transfers inputfile and outputprefix to the config. outputprefix is
// only optional with --check-only.
func (t *dnsConvert) parsePositional(args []string) parseResult {
	want := 2
	if t.cfg.checkOnlyFlag && len(args) == 1 {
		want = 1
	}

	if len(args) < want {
		if len(args) == 0 {
			fmt.Fprintln(log.Out(), "Error: Missing inputfile and outputprefix")
		} else {
			fmt.Fprintln(log.Out(), "Error: Missing outputprefix")
		}
		return parseFailed
	}

	if len(args) > want {
		fmt.Fprintf(log.Out(), "Error: Unexpected goop on command line: '%s'\n",
			strings.Join(args[want:], " "))
		return parseFailed
	}

	t.cfg.inputPath = args[0]
	if want == 2 {
		t.cfg.outputPrefix = args[1]
	}

	return parseContinue
}

func printUsage(fs *flag.FlagSet) {
	o := log.Out()
	fmt.Fprintln(o, "NAME")
	fmt.Fprintln(o, " ", programName, "-- convert a host list into csv2 forward and reverse zone fragments")
	fmt.Fprintln(o)
	fmt.Fprintln(o, "SYNOPSIS")
	fmt.Fprintln(o, "     dnsconvert -h | --help | -v | --version")
	fmt.Fprintln(o, `     dnsconvert [-c | --check-only] [-O | --override-output] [--verify=true]
                [-f | --config path] [--domain domain]
                [--ipv4-range CIDR] [--ipv6-range CIDR] [--hostname-pattern regexp]
                [--log-major=true] [--log-minor] [--log-debug]
                inputfile outputprefix`)
	fmt.Fprintf(o, `
DESCRIPTION
     dnsconvert takes a csv file specifying name-IP mappings and outputs MaraDNS
     csv2 zone fragments containing A, AAAA and PTR records.

     The csv file uses any whitespace as delimiters and no quote handling is
     done. Lines starting with # or containing only whitespace are ignored.
     Every other line needs exactly 3 columns:

       - An IPv4 address
       - An IPv6 address
       - A list of hostnames, separated by ','

     One of the addresses may be replaced by 'none'. For PTR records, the first
     hostname in the list is used.

     The input is only accepted if every line is valid and every address is
     within the configured ranges. If the input is rejected, no output file is
     touched.

     Output is written to three files formed by appending a suffix to
     outputprefix:

       %-10s A and AAAA records
       %-10s IPv4 PTR records
       %-10s IPv6 PTR records

     Without --override-output, records are appended to existing files.
`, zonefile.AddressSuffix, zonefile.IPv4PTRSuffix, zonefile.IPv6PTRSuffix)

	fmt.Fprintln(o)
	fmt.Fprintln(o, "OPTIONS")
	op := fs.Output() // Save and restore
	fs.SetOutput(o)
	fs.PrintDefaults()
	fs.SetOutput(op)

	fmt.Fprint(o, `
CONFIG FILE
     domain: example.net.
     ipv4-range: 192.168.0.0/16
     ipv6-range: fd00:f00::/64
     hostname-pattern: '^[a-z0-9]([a-z0-9-]*[a-z0-9])?$'

EXIT STATUS
     0 on success, 1 if the command line, config or any input line is invalid or
     if the output files could not be written.
`)
}
