// Package configfile loads the network settings for dnsconvert from a YAML file.
//
//	domain: example.net.
//	ipv4-range: 192.168.0.0/16
//	ipv6-range: fd00:f00::/64
//	hostname-pattern: '^[a-z0-9]([a-z0-9-]*[a-z0-9])?$'
//
// All keys are optional. Values are only syntax-checked by convert.NewConfig once the file,
// the command line and the defaults have been merged.
package configfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/markdingo/dnsconvert/convert"
)

// File holds the network settings. The same struct carries command-line values so that
// the precedence rules live in one place.
type File struct {
	Domain          string `yaml:"domain"`
	IPv4Range       string `yaml:"ipv4-range"`
	IPv6Range       string `yaml:"ipv6-range"`
	HostnamePattern string `yaml:"hostname-pattern"`
}

// Defaults returns the built-in settings.
func Defaults() *File {
	return &File{
		Domain:          convert.DefaultDomain,
		IPv4Range:       convert.DefaultIPv4Range,
		IPv6Range:       convert.DefaultIPv6Range,
		HostnamePattern: convert.DefaultHostnamePattern,
	}
}

// Load reads and decodes the YAML file at path. Unknown keys are an error as they are
// most likely a typo of a known key. An empty file is acceptable.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Reading config file: %w", err)
	}

	f := &File{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err = dec.Decode(f)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("Parsing config file %s: %w", path, err)
	}

	return f, nil
}

// Merge fills every empty setting in t from the corresponding setting in from. Settings
// already present in t are left alone, thus the first merged value wins.
func (t *File) Merge(from *File) {
	if from == nil {
		return
	}
	if len(t.Domain) == 0 {
		t.Domain = from.Domain
	}
	if len(t.IPv4Range) == 0 {
		t.IPv4Range = from.IPv4Range
	}
	if len(t.IPv6Range) == 0 {
		t.IPv6Range = from.IPv6Range
	}
	if len(t.HostnamePattern) == 0 {
		t.HostnamePattern = from.HostnamePattern
	}
}

// Config converts the settings into a validated convert.Config.
func (t *File) Config() (*convert.Config, error) {
	return convert.NewConfig(t.Domain, t.IPv4Range, t.IPv6Range, t.HostnamePattern)
}
