package filesystems

import (
	"io/fs"
)

// FileSystem abstracts the read-only operations the code scanner
// needs, so a sweep runs the same against a real source tree or an
// in-memory one in tests.
type FileSystem interface {
	// ReadFile reads the named file and returns its contents
	ReadFile(name string) ([]byte, error)

	// Walk walks the file tree rooted at root, calling fn for each file or directory
	Walk(root string, fn WalkFunc) error

	// Join joins path elements into a single path
	Join(elem ...string) string

	// Base returns the last element of path
	Base(path string) string
}

// FileInfo is the subset of file metadata a WalkFunc sees.
type FileInfo interface {
	Name() string
	Size() int64
	IsDir() bool
}

// WalkFunc is the type of function called by Walk
type WalkFunc func(path string, info FileInfo, err error) error

// SkipDir is used as a return value from WalkFunc to indicate that
// the directory named in the call is to be skipped
var SkipDir = fs.SkipDir
