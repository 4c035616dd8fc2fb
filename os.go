package fsentry

import (
	"io"
	"io/ioutil"
	"os"
)

// OS is the Filesystem implementation backed by the host filesystem. It
// does no path translation, paths reach the os package verbatim.
type OS struct{}

// NewOS returns a new host filesystem.
func NewOS() *OS {
	return &OS{}
}

func (fs *OS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (fs *OS) ReadDir(path string) ([]os.FileInfo, error) {
	return ioutil.ReadDir(path)
}

func (fs *OS) Create(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	return f.Close()
}

// Mkdir creates a directory with the permissions applied as given, the
// process umask is cleared while the directory is created.
func (fs *OS) Mkdir(path string, perm os.FileMode) error {
	old := setUmask(0)
	defer setUmask(old)

	return os.Mkdir(path, perm)
}

// MkdirAll creates a directory along with any missing parents, all with
// the permissions applied as given, shielded from the process umask.
func (fs *OS) MkdirAll(path string, perm os.FileMode) error {
	old := setUmask(0)
	defer setUmask(old)

	return os.MkdirAll(path, perm)
}

func (fs *OS) Rename(from, to string) error {
	return os.Rename(from, to)
}

func (fs *OS) Remove(path string) error {
	return os.Remove(path)
}

func (fs *OS) ReadFile(path string) ([]byte, error) {
	return ioutil.ReadFile(path)
}

func (fs *OS) WriteFile(path string, data []byte) error {
	return ioutil.WriteFile(path, data, 0666)
}

func (fs *OS) AppendFile(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	defer checkClose(f, &err)

	_, err = f.Write(data)
	return err
}

func checkClose(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}
