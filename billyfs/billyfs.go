// Package billyfs adapts go-billy filesystems to the fsentry.Filesystem
// interface, so entries can operate on virtual filesystems such as
// memfs.
package billyfs

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/util"

	"gopkg.in/fsentry.v1"
)

// Filesystem wraps a billy.Filesystem as an fsentry.Filesystem.
type Filesystem struct {
	fs billy.Filesystem
}

var _ fsentry.Filesystem = (*Filesystem)(nil)

// New returns a Filesystem over fs.
func New(fs billy.Filesystem) *Filesystem {
	return &Filesystem{fs: fs}
}

func (f *Filesystem) Stat(path string) (os.FileInfo, error) {
	return f.fs.Stat(path)
}

// Access derives access from the permission bits reported by Stat, billy
// has no access call of its own. Any permission class counts, ownership
// is not modeled.
func (f *Filesystem) Access(path string, mode fsentry.AccessMode) error {
	fi, err := f.fs.Stat(path)
	if err != nil {
		return err
	}

	perm := fi.Mode().Perm()
	if mode&fsentry.AccessRead != 0 && perm&0444 == 0 {
		return os.ErrPermission
	}

	if mode&fsentry.AccessWrite != 0 && perm&0222 == 0 {
		return os.ErrPermission
	}

	if mode&fsentry.AccessExecute != 0 && perm&0111 == 0 {
		return os.ErrPermission
	}

	return nil
}

func (f *Filesystem) ReadDir(path string) ([]os.FileInfo, error) {
	return f.fs.ReadDir(path)
}

func (f *Filesystem) Create(path string) error {
	file, err := f.fs.Create(path)
	if err != nil {
		return err
	}

	return file.Close()
}

// Mkdir creates a single directory, failing like os.Mkdir when the
// parent is missing or the path already exists. Billy itself only
// offers MkdirAll.
func (f *Filesystem) Mkdir(path string, perm os.FileMode) error {
	if _, err := f.fs.Stat(path); err == nil {
		return os.ErrExist
	}

	if parent := filepath.Dir(path); parent != "/" && parent != "." {
		if _, err := f.fs.Stat(parent); err != nil {
			return err
		}
	}

	return f.fs.MkdirAll(path, perm)
}

func (f *Filesystem) MkdirAll(path string, perm os.FileMode) error {
	return f.fs.MkdirAll(path, perm)
}

func (f *Filesystem) Rename(from, to string) error {
	return f.fs.Rename(from, to)
}

func (f *Filesystem) Remove(path string) error {
	return f.fs.Remove(path)
}

func (f *Filesystem) ReadFile(path string) (data []byte, err error) {
	file, err := f.fs.Open(path)
	if err != nil {
		return nil, err
	}

	defer checkClose(file, &err)

	return ioutil.ReadAll(file)
}

func (f *Filesystem) WriteFile(path string, data []byte) error {
	return util.WriteFile(f.fs, path, data, 0666)
}

func (f *Filesystem) AppendFile(path string, data []byte) (err error) {
	file, err := f.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	defer checkClose(file, &err)

	_, err = file.Write(data)
	return err
}

func checkClose(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}
