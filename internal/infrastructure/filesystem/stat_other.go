//go:build !unix

package filesystem

import "io/fs"

const hasPOSIXMode = false

func ownership(fs.FileInfo) (uid, gid uint32, ok bool) {
	return 0, 0, false
}

func identity(path string, _ fs.FileInfo) (dirKey, bool) {
	return realPathKey(path)
}
