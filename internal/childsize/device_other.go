//go:build !unix

package childsize

import "io/fs"

// deviceID reports that device ids are unavailable, so the walk is not
// bounded to a single filesystem on this platform.
func deviceID(_ fs.FileInfo) (uint64, bool) {
	return 0, false
}
