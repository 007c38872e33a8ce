package osutil

import (
	"os"
)

func FileOwner(fi os.FileInfo) (uid, gid int, ok bool) {
	return 0, 0, false
}
