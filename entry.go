// Package fsentry offers an entry-oriented view of a filesystem: an Entry
// wraps a path and exposes the common operations on whatever that path
// points to, files and directories alike.
//
// Entries never hold their target open. Every operation translates to
// native filesystem calls at the moment it is invoked, so an Entry stays
// valid across external changes and can address paths that do not exist
// yet.
//
// Operations come in two disjoint error styles. Predicates, listings and
// mutations report their outcome as the return value and never fail
// loudly. The content operations Read, Append and Write return a fixed
// OperationError naming the operation that failed.
package fsentry

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Entry is a filesystem path and the operations around it. The zero
// value is not usable, entries are created with New or NewInFilesystem.
type Entry struct {
	path string
	fs   Filesystem
}

// New returns an Entry for path, backed by the host filesystem. A single
// trailing separator is trimmed from path. Nothing else is normalized
// and the path is never resolved against the filesystem, a dangling or
// relative path is as good as any.
func New(path string) *Entry {
	return NewInFilesystem(NewOS(), path)
}

// NewInFilesystem returns an Entry for path backed by the given
// filesystem.
func NewInFilesystem(fs Filesystem, path string) *Entry {
	return &Entry{
		path: strings.TrimSuffix(path, string(filepath.Separator)),
		fs:   fs,
	}
}

// Path returns the entry path as held, trimmed but not normalized.
func (e *Entry) Path() string {
	return e.path
}

// Filesystem returns the filesystem the entry operates on.
func (e *Entry) Filesystem() Filesystem {
	return e.fs
}

func (e *Entry) String() string {
	return e.path
}

// Dir returns the parent directory of the entry path.
func (e *Entry) Dir() string {
	return filepath.Dir(e.path)
}

// Name returns the last element of the entry path.
func (e *Entry) Name() string {
	return filepath.Base(e.path)
}

// Extension returns the suffix after the last dot of the entry name,
// without the dot, or the empty string if the name has none.
func (e *Entry) Extension() string {
	ext := filepath.Ext(e.path)
	if ext == "" {
		return ""
	}

	return ext[1:]
}

// MimeType returns the media type sniffed from the entry content, or the
// empty string if the content cannot be read. Detection is best effort
// and based on the content alone, the extension takes no part in it.
func (e *Entry) MimeType() string {
	data, err := e.fs.ReadFile(e.path)
	if err != nil {
		return ""
	}

	return mimetype.Detect(data).String()
}

// Exists reports whether the entry path exists.
func (e *Entry) Exists() bool {
	_, err := e.fs.Stat(e.path)
	return err == nil
}

// CanRead reports whether the entry exists and is readable.
func (e *Entry) CanRead() bool {
	return e.fs.Access(e.path, AccessRead) == nil
}

// CanWrite reports whether the entry exists and is writable.
func (e *Entry) CanWrite() bool {
	return e.fs.Access(e.path, AccessWrite) == nil
}

// CanExecute reports whether the entry exists and is executable.
func (e *Entry) CanExecute() bool {
	return e.fs.Access(e.path, AccessExecute) == nil
}

// IsFile reports whether the entry is a regular file. Symbolic links are
// followed.
func (e *Entry) IsFile() bool {
	fi, err := e.fs.Stat(e.path)
	return err == nil && fi.Mode().IsRegular()
}

// IsDir reports whether the entry is a directory. Symbolic links are
// followed.
func (e *Entry) IsDir() bool {
	fi, err := e.fs.Stat(e.path)
	return err == nil && fi.IsDir()
}

// Size returns the size of the entry in bytes as reported by the
// filesystem, or -1 if the entry cannot be stated. Sizes of directories
// are platform dependent.
func (e *Entry) Size() int64 {
	fi, err := e.fs.Stat(e.path)
	if err != nil {
		return -1
	}

	return fi.Size()
}

// Length is a synonym for Size.
func (e *Entry) Length() int64 {
	return e.Size()
}

// Count is a synonym for Size.
func (e *Entry) Count() int64 {
	return e.Size()
}

// LastModified returns the modification time of the entry in seconds
// since the Unix epoch, or -1 if the entry cannot be stated.
func (e *Entry) LastModified() int64 {
	fi, err := e.fs.Stat(e.path)
	if err != nil {
		return -1
	}

	return fi.ModTime().Unix()
}
