//go:build !windows
// +build !windows

package osutil

import (
	"os"
	"syscall"
)

// FileOwner returns the uid and gid of the file described by fi. ok is false if the
// platform does not expose them.
func FileOwner(fi os.FileInfo) (uid, gid int, ok bool) {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, 0, false
	}

	return int(st.Uid), int(st.Gid), true
}
