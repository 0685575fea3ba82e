//go:build unix

package childsize

import (
	"io/fs"
	"syscall"
)

// deviceID returns the filesystem device id of info, and whether one could
// be determined on this platform.
func deviceID(info fs.FileInfo) (uint64, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, false
	}

	return uint64(st.Dev), true //nolint:unconvert // Dev is int32 on some platforms
}
