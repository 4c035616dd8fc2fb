package fsentry

import "os"

// AccessMode selects the permissions Filesystem.Access probes for. The
// values match the access(2) masks.
type AccessMode uint32

const (
	AccessExecute AccessMode = 1 << iota
	AccessWrite
	AccessRead
)

// Filesystem abstracts the native calls an Entry issues, so that entries
// can operate on backends other than the host filesystem. NewOS returns
// the host implementation, package billyfs adapts go-billy filesystems.
//
// Methods follow the semantics of their os package counterparts: Mkdir
// fails when the parent is missing, Remove fails on non-empty
// directories, Rename replaces an existing destination.
type Filesystem interface {
	Stat(path string) (os.FileInfo, error)
	Access(path string, mode AccessMode) error
	ReadDir(path string) ([]os.FileInfo, error)
	Create(path string) error
	Mkdir(path string, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Rename(from, to string) error
	Remove(path string) error
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	AppendFile(path string, data []byte) error
}
