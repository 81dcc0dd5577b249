//go:build unix

package filesystem

import (
	"io/fs"
	"syscall"
)

const hasPOSIXMode = true

// ownership は FileInfo から UID と GID を取り出します
func ownership(info fs.FileInfo) (uid, gid uint32, ok bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, 0, false
	}
	return st.Uid, st.Gid, true
}

// identity はデバイス番号と inode の組でディレクトリを識別します
func identity(path string, info fs.FileInfo) (dirKey, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return realPathKey(path)
	}
	return dirKey{dev: uint64(st.Dev), ino: uint64(st.Ino)}, true
}
