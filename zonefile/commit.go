package zonefile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/markdingo/dnsconvert/convert"
	"github.com/markdingo/dnsconvert/log"
	"github.com/markdingo/dnsconvert/osutil"
)

const (
	AddressSuffix = "_address"
	IPv4PTRSuffix = "_ip4ptr"
	IPv6PTRSuffix = "_ip6ptr"

	defaultPerm = os.FileMode(0644)
)

// Path returns the output file path for the category.
func Path(prefix string, c convert.Category) string {
	switch c {
	case convert.PTR4:
		return prefix + IPv4PTRSuffix
	case convert.PTR6:
		return prefix + IPv6PTRSuffix
	}

	return prefix + AddressSuffix
}

type staged struct {
	target   string // As named by the caller
	resolved string // target with symlinks followed, this is what gets replaced
	tmp      string
}

// Commit writes every fragment of out to its file. If override is true existing content is
// replaced, otherwise the fragment is appended. Every fragment is followed by a blank line,
// even an empty one, so that successive appends remain visually separated.
//
// All three targets are checked and staged before any of them is replaced. An existing
// target must be a regular file or a symlink to one. Symlinks are followed so the file
// they point at is updated and the link itself survives.
func Commit(prefix string, out *convert.Output, override bool) (err error) {
	var all []staged
	defer func() {
		if err != nil {
			for _, s := range all {
				os.Remove(s.tmp) // Renamed temps are already gone
			}
		}
	}()

	for _, c := range convert.Categories() {
		var s staged
		s, err = stage(Path(prefix, c), out.Text(c)+"\n", override)
		if err != nil {
			return
		}
		all = append(all, s)
	}

	for ix, s := range all {
		err = os.Rename(s.tmp, s.resolved)
		if err != nil {
			err = fmt.Errorf("Rename of %s failed: %w", s.target, err)
			return
		}
		log.Minorf("Wrote %d records to %s", out.Lines(convert.Categories()[ix]), s.target)
	}

	return
}

// stage creates a temporary file in the same directory as the resolved target containing
// the complete new content of target.
func stage(target, content string, override bool) (staged, error) {
	s := staged{target: target}
	var fi os.FileInfo
	var err error
	s.resolved, fi, err = resolve(target)
	if err != nil {
		return s, err
	}

	dir, base := filepath.Dir(s.resolved), filepath.Base(s.resolved) // Dir gives "." not ""
	tmp, err := os.CreateTemp(dir, "."+base+"-*.tmp")
	if err != nil {
		return s, fmt.Errorf("Could not stage %s: %w", target, err)
	}
	s.tmp = tmp.Name()

	err = fill(tmp, s.resolved, fi, content, override)
	if cerr := tmp.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("Close of %s failed: %w", s.tmp, cerr)
	}
	if err != nil {
		os.Remove(s.tmp)
		return s, err
	}

	return s, nil
}

// resolve follows any symlinks in target and returns the resolved path plus its FileInfo, or
// nil if it does not exist yet. Anything other than a regular file is rejected as rename
// cannot replace it.
func resolve(target string) (string, os.FileInfo, error) {
	resolved, err := filepath.EvalSymlinks(target)
	if errors.Is(err, fs.ErrNotExist) {
		lfi, lerr := os.Lstat(target)
		if lerr == nil && lfi.Mode()&fs.ModeSymlink != 0 {
			return "", nil, fmt.Errorf("%s is a dangling symlink", target)
		}
		return target, nil, nil // A new file
	}
	if err != nil {
		return "", nil, fmt.Errorf("Could not resolve %s: %w", target, err)
	}

	fi, err := os.Stat(resolved)
	if err != nil {
		return "", nil, fmt.Errorf("Could not stat %s: %w", target, err)
	}
	if !fi.Mode().IsRegular() {
		return "", nil, fmt.Errorf("%s is not a regular file (%s)", target, fi.Mode().Type())
	}

	return resolved, fi, nil
}

// fill copies any existing content of target when appending, adds the new content and
// transfers the permissions and, where possible, the ownership of target to tmp. fi is nil
// if target does not exist.
func fill(tmp *os.File, target string, fi os.FileInfo, content string, override bool) error {
	perm := defaultPerm
	if fi != nil {
		perm = fi.Mode().Perm()
		if !override {
			existing, err := os.Open(target)
			if err != nil {
				return fmt.Errorf("Could not append to %s: %w", target, err)
			}
			defer existing.Close()
			if _, err := io.Copy(tmp, existing); err != nil {
				return fmt.Errorf("Copy of %s failed: %w", target, err)
			}
		}
	}

	if _, err := io.WriteString(tmp, content); err != nil {
		return fmt.Errorf("Write of %s failed: %w", tmp.Name(), err)
	}

	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("Chmod of %s failed: %w", tmp.Name(), err)
	}

	// Only root can give a file away, so a failure here is normal and harmless when
	// the target already belongs to us.
	if fi != nil {
		if uid, gid, ok := osutil.FileOwner(fi); ok {
			if err := tmp.Chown(uid, gid); err != nil {
				log.Debug("Ownership of ", target, " not preserved: ", err)
			}
		}
	}

	return nil
}
