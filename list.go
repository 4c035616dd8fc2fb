package fsentry

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// ListAll returns the names of the entries below the entry path. Results
// are bare names, not paths, in one flat sequence even when recursive is
// set. If the path cannot be listed, because it does not exist or is a
// regular file, the result is empty.
//
// With recursive set, directories are expanded depth first and the name
// of a directory always precedes the names of its contents. Sibling
// order is whatever the filesystem reports.
//
// Without showHidden, entries whose name starts with a dot are skipped
// and never descended into.
func (e *Entry) ListAll(recursive, showHidden bool) []string {
	return e.list(recursive, showHidden, func(os.FileInfo) bool {
		return true
	})
}

// ListDirs returns the names of the directories below the entry path,
// with the same traversal rules as ListAll.
func (e *Entry) ListDirs(recursive, showHidden bool) []string {
	return e.list(recursive, showHidden, func(fi os.FileInfo) bool {
		return fi.IsDir()
	})
}

// ListFiles returns the names of the regular files below the entry path,
// with the same traversal rules as ListAll.
func (e *Entry) ListFiles(recursive, showHidden bool) []string {
	return e.list(recursive, showHidden, func(fi os.FileInfo) bool {
		return fi.Mode().IsRegular()
	})
}

// ListMatching returns the names below the entry path matching at least
// one of the given doublestar patterns. Patterns apply to names, not
// paths, and directories are descended even when their own name does not
// match.
func (e *Entry) ListMatching(patterns []string, recursive, showHidden bool) []string {
	return e.list(recursive, showHidden, func(fi os.FileInfo) bool {
		return matchAny(patterns, fi.Name())
	})
}

type listEntry struct {
	path string
	info os.FileInfo
}

func (e *Entry) list(recursive, showHidden bool, keep func(os.FileInfo) bool) []string {
	names := []string{}

	infos, err := e.fs.ReadDir(e.path)
	if err != nil {
		return names
	}

	pending := arraystack.New()
	pushEntries(pending, e.path, infos)

	for !pending.Empty() {
		v, _ := pending.Pop()
		entry := v.(listEntry)

		if !showHidden && isHidden(entry.info.Name()) {
			continue
		}

		if keep(entry.info) {
			names = append(names, entry.info.Name())
		}

		if recursive && entry.info.IsDir() {
			infos, err := e.fs.ReadDir(entry.path)
			if err != nil {
				continue
			}

			pushEntries(pending, entry.path, infos)
		}
	}

	return names
}

// pushEntries pushes infos in reverse, so the first entry of the
// directory is the next one popped.
func pushEntries(pending *arraystack.Stack, dir string, infos []os.FileInfo) {
	for i := len(infos) - 1; i >= 0; i-- {
		pending.Push(listEntry{
			path: filepath.Join(dir, infos[i].Name()),
			info: infos[i],
		})
	}
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}

	return false
}
