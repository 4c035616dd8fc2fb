package fsentry

import (
	"os"
	"path/filepath"
)

// DefaultDirMode is a group-writable permission set for MakeDirectory.
const DefaultDirMode os.FileMode = 0775

// MakeFile creates the entry as an empty regular file and reports
// whether it was created. An existing entry is left alone unless
// override is set, in which case it is truncated to zero length.
func (e *Entry) MakeFile(override bool) bool {
	if e.Exists() && !override {
		return false
	}

	return e.fs.Create(e.path) == nil
}

// MakeDirectory creates the entry as a directory carrying exactly the
// given permissions, shielded from the process umask. With recursive set
// missing parents are created too, with the same permissions. It reports
// whether the directory was created, an existing entry of any kind makes
// it return false.
func (e *Entry) MakeDirectory(recursive bool, perm os.FileMode) bool {
	if e.Exists() {
		return false
	}

	if recursive {
		return e.fs.MkdirAll(e.path, perm) == nil
	}

	return e.fs.Mkdir(e.path, perm) == nil
}

// Move moves the entry to destination, overwriting an existing
// destination only when override is set. On success the entry path
// becomes the destination path, trimmed the same way New trims it. On
// failure false is returned and the entry is left unchanged.
func (e *Entry) Move(destination string, override bool) bool {
	if !e.Exists() {
		return false
	}

	dest := NewInFilesystem(e.fs, destination)
	if dest.Exists() && !override {
		return false
	}

	if err := e.fs.Rename(e.path, dest.path); err != nil {
		return false
	}

	e.path = dest.path
	return true
}

// Rename moves the entry within its parent directory. Only the base name
// of newName is used, a name with separators cannot escape the parent.
func (e *Entry) Rename(newName string, override bool) bool {
	return e.Move(filepath.Join(e.Dir(), filepath.Base(newName)), override)
}

// RemoveDirectory removes the entry directory. Without recursive it only
// succeeds on an empty directory. With recursive the tree below the
// entry is walked children first, hidden entries included, and removed
// on a best effort basis: failures on individual entries go undetected
// and the call reports true once the walk is done. Neither form removes
// an entry that is not a directory.
func (e *Entry) RemoveDirectory(recursive bool) bool {
	if !recursive {
		if !e.IsDir() {
			return false
		}

		return e.fs.Remove(e.path) == nil
	}

	if e.IsDir() {
		e.removeTree(e.path)
	}

	return true
}

func (e *Entry) removeTree(path string) {
	infos, _ := e.fs.ReadDir(path)
	for _, fi := range infos {
		child := filepath.Join(path, fi.Name())
		if fi.IsDir() {
			e.removeTree(child)
			continue
		}

		e.fs.Remove(child)
	}

	e.fs.Remove(path)
}

// RemoveFile removes the entry file. It reports false when the entry is
// not a regular file or cannot be removed.
func (e *Entry) RemoveFile() bool {
	if !e.IsFile() {
		return false
	}

	return e.fs.Remove(e.path) == nil
}
