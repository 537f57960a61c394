package filesystems

import (
	"io/fs"
	"os"
	"path/filepath"
)

// LocalFS implements FileSystem over the OS filesystem.
type LocalFS struct{}

func NewLocalFS() *LocalFS {
	return &LocalFS{}
}

func (l *LocalFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (l *LocalFS) Walk(root string, fn WalkFunc) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fn(path, nil, err)
		}
		info, infoErr := d.Info()
		if infoErr != nil {
			return fn(path, nil, infoErr)
		}
		return fn(path, localFileInfo{info}, nil)
	})
}

func (l *LocalFS) Join(elem ...string) string {
	return filepath.Join(elem...)
}

func (l *LocalFS) Base(path string) string {
	return filepath.Base(path)
}

type localFileInfo struct {
	fs.FileInfo
}
