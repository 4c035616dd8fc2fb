// +build windows

package fsentry

import "os"

// Access approximates access(2) with the permission bits reported by
// Stat, the closest the platform offers.
func (fs *OS) Access(path string, mode AccessMode) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}

	perm := fi.Mode().Perm()
	if mode&AccessRead != 0 && perm&0444 == 0 {
		return os.ErrPermission
	}

	if mode&AccessWrite != 0 && perm&0222 == 0 {
		return os.ErrPermission
	}

	if mode&AccessExecute != 0 && perm&0111 == 0 {
		return os.ErrPermission
	}

	return nil
}

// setUmask is a no-op, the platform has no umask.
func setUmask(mask int) int {
	return 0
}
