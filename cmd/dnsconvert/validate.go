package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/markdingo/dnsconvert/configfile"
)

// Check everything that could likely be a typo or usage error. Settings are merged in
// order of precedence: command line, --config file, then built-in defaults.
func (t *dnsConvert) ValidateCommandLineOptions() error {
	if len(t.cfg.configPath) > 0 {
		f, err := configfile.Load(t.cfg.configPath)
		if err != nil {
			return fmt.Errorf("--config %s: %w", t.cfg.configPath, err)
		}
		t.cfg.network.Merge(f)
	}
	t.cfg.network.Merge(configfile.Defaults())

	var err error
	t.convertCfg, err = t.cfg.network.Config()
	if err != nil {
		return err
	}

	// Names directly under a public suffix belong to someone else. It's legitimate in
	// a lab so it only warrants a warning.
	domain := strings.TrimSuffix(t.convertCfg.Domain, ".")
	if suffix, icann := publicsuffix.PublicSuffix(domain); icann && suffix == domain {
		warning(nil, "--domain", t.convertCfg.Domain, "is a public suffix")
	}

	if len(t.cfg.inputPath) == 0 {
		return fmt.Errorf("Must supply an inputfile")
	}

	if t.cfg.checkOnlyFlag {
		return nil
	}

	if len(t.cfg.outputPrefix) == 0 {
		return fmt.Errorf("Must supply an outputprefix unless --check-only is set")
	}
	dir := filepath.Dir(t.cfg.outputPrefix)
	fi, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("outputprefix directory: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("outputprefix directory %s is not a directory", dir)
	}

	return nil
}
