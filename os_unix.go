// +build !windows

package fsentry

import "golang.org/x/sys/unix"

// Access probes path with access(2), using the real uid and gid of the
// process.
func (fs *OS) Access(path string, mode AccessMode) error {
	return unix.Access(path, uint32(mode))
}

// setUmask replaces the process umask and returns the previous one.
func setUmask(mask int) int {
	return unix.Umask(mask)
}
