package zonefile

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/markdingo/dnsconvert/convert"
)

func newOutput(t *testing.T, input string) *convert.Output {
	t.Helper()
	cfg, err := convert.NewConfig(convert.DefaultDomain, convert.DefaultIPv4Range,
		convert.DefaultIPv6Range, convert.DefaultHostnamePattern)
	if err != nil {
		t.Fatal("Setup failed", err)
	}
	res, err := cfg.Run(strings.NewReader(input), true)
	if err != nil {
		t.Fatal("Setup failed", err)
	}

	return res.Output
}

func readAll(t *testing.T, prefix string) [3]string {
	t.Helper()
	var ret [3]string
	for ix, c := range convert.Categories() {
		b, err := os.ReadFile(Path(prefix, c))
		if err != nil {
			t.Fatal(err)
		}
		ret[ix] = string(b)
	}

	return ret
}

func TestPath(t *testing.T) {
	if Path("/tmp/x", convert.Forward) != "/tmp/x_address" ||
		Path("/tmp/x", convert.PTR4) != "/tmp/x_ip4ptr" ||
		Path("/tmp/x", convert.PTR6) != "/tmp/x_ip6ptr" {
		t.Error("Path suffixes wrong")
	}
}

func TestCommitOverride(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "zone")
	out := newOutput(t, "192.168.1.1 none host1,host2\n")

	for pass := 0; pass < 2; pass++ { // Second pass must produce identical files
		if err := Commit(prefix, out, true); err != nil {
			t.Fatal(pass, "Unexpected error", err)
		}
		got := readAll(t, prefix)
		exp := [3]string{
			"host1.example.net.\tA\t192.168.1.1 ~\nhost2.example.net.\tA\t192.168.1.1 ~\n\n",
			"1.1.168.192.in-addr.arpa.\tPTR\thost1.example.net. ~\n\n",
			"\n",
		}
		if got != exp {
			t.Errorf("%d Mismatch\nGot: %q\nExp: %q", pass, got, exp)
		}
	}

	entries, err := os.ReadDir(filepath.Dir(prefix))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Error("Expected exactly 3 files, temporaries may remain", len(entries))
	}
}

func TestCommitAppend(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "zone")
	first := newOutput(t, "none fd00:f00::1 one\n")
	second := newOutput(t, "none fd00:f00::2 two\n")

	if err := os.WriteFile(Path(prefix, convert.PTR6), []byte("; existing\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := Commit(prefix, first, false); err != nil {
		t.Fatal(err)
	}
	if err := Commit(prefix, second, false); err != nil {
		t.Fatal(err)
	}

	got := readAll(t, prefix)
	expF := "one.example.net.\tAAAA\tfd00:f00::1 ~\n\ntwo.example.net.\tAAAA\tfd00:f00::2 ~\n\n"
	if got[0] != expF {
		t.Errorf("Forward mismatch\nGot: %q\nExp: %q", got[0], expF)
	}
	if got[1] != "\n\n" {
		t.Errorf("PTR4 should only contain separators, got %q", got[1])
	}
	if !strings.HasPrefix(got[2], "; existing\n1.0.0.0") || strings.Count(got[2], "\tPTR\t") != 2 {
		t.Errorf("PTR6 did not append to existing content %q", got[2])
	}

	if runtime.GOOS != "windows" {
		fi, err := os.Stat(Path(prefix, convert.PTR6))
		if err != nil {
			t.Fatal(err)
		}
		if fi.Mode().Perm() != 0600 {
			t.Error("Permissions of existing file not preserved", fi.Mode())
		}
	}
}

// A failure to stage any target must leave every target untouched, whether appending or
// replacing.
func TestCommitAllOrNothing(t *testing.T) {
	for _, override := range []bool{false, true} {
		dir := t.TempDir()
		prefix := filepath.Join(dir, "zone")
		for _, c := range convert.Categories() {
			if err := os.WriteFile(Path(prefix, c), []byte("original\n"), 0644); err != nil {
				t.Fatal(err)
			}
		}

		// Make the last target a directory so it cannot be replaced
		ptr6 := Path(prefix, convert.PTR6)
		os.Remove(ptr6)
		if err := os.Mkdir(ptr6, 0755); err != nil {
			t.Fatal(err)
		}

		out := newOutput(t, "192.168.1.1 fd00:f00::1 host1\n")
		err := Commit(prefix, out, override)
		if err == nil {
			t.Fatal(override, "Expected Commit to fail")
		}
		if !strings.Contains(err.Error(), "not a regular file") {
			t.Error(override, "Unexpected error", err)
		}

		for _, c := range []convert.Category{convert.Forward, convert.PTR4} {
			b, err := os.ReadFile(Path(prefix, c))
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != "original\n" {
				t.Error(override, c, "was modified by a failed commit", string(b))
			}
		}
		entries, _ := os.ReadDir(dir)
		if len(entries) != 3 {
			t.Error(override, "Temporary files left behind", len(entries))
		}
	}
}

// Symlinked targets are updated through the link and the link survives.
func TestCommitSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	for _, override := range []bool{false, true} {
		dir := t.TempDir()
		realDir := filepath.Join(dir, "real")
		if err := os.Mkdir(realDir, 0755); err != nil {
			t.Fatal(err)
		}
		prefix := filepath.Join(dir, "zone")
		for _, c := range convert.Categories() {
			realPath := filepath.Join(realDir, filepath.Base(Path(prefix, c)))
			if err := os.WriteFile(realPath, []byte("; existing\n"), 0640); err != nil {
				t.Fatal(err)
			}
			if err := os.Symlink(realPath, Path(prefix, c)); err != nil {
				t.Fatal(err)
			}
		}

		out := newOutput(t, "192.168.1.1 none host1\n")
		if err := Commit(prefix, out, override); err != nil {
			t.Fatal(override, "Unexpected error", err)
		}

		got := readAll(t, prefix) // Via the links
		for _, c := range convert.Categories() {
			link := Path(prefix, c)
			lfi, err := os.Lstat(link)
			if err != nil {
				t.Fatal(err)
			}
			if lfi.Mode()&os.ModeSymlink == 0 {
				t.Error(override, link, "is no longer a symlink")
			}
			realPath := filepath.Join(realDir, filepath.Base(link))
			b, err := os.ReadFile(realPath)
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != got[c] {
				t.Error(override, "Real file and link disagree", realPath)
			}
			fi, err := os.Stat(realPath)
			if err != nil {
				t.Fatal(err)
			}
			if fi.Mode().Perm() != 0640 {
				t.Error(override, "Permissions not preserved", realPath, fi.Mode())
			}
		}

		hasExisting := strings.HasPrefix(got[convert.Forward], "; existing\n")
		if hasExisting == override {
			t.Error(override, "Wrong append/replace behaviour", got[convert.Forward])
		}
		if !strings.Contains(got[convert.Forward], "host1.example.net.") {
			t.Error(override, "New records missing", got[convert.Forward])
		}

		entries, _ := os.ReadDir(realDir)
		if len(entries) != 3 {
			t.Error(override, "Temporary files left behind", len(entries))
		}
	}
}

func TestCommitDanglingSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	dir := t.TempDir()
	prefix := filepath.Join(dir, "zone")
	ptr4 := Path(prefix, convert.PTR4)
	if err := os.Symlink(filepath.Join(dir, "gone"), ptr4); err != nil {
		t.Fatal(err)
	}

	out := newOutput(t, "192.168.1.1 none host1\n")
	err := Commit(prefix, out, true)
	if err == nil || !strings.Contains(err.Error(), "dangling symlink") {
		t.Fatal("Expected dangling symlink error, got", err)
	}
	if _, err := os.Stat(Path(prefix, convert.Forward)); err == nil {
		t.Error("Forward target written despite failed commit")
	}
}

func TestCommitMissingDirectory(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "no", "such", "dir", "zone")
	out := newOutput(t, "192.168.1.1 none host1\n")
	if err := Commit(prefix, out, true); err == nil {
		t.Error("Expected error committing to a missing directory")
	}
}
