package filesystems

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// MemoryFS implements FileSystem for in-memory trees in tests.
type MemoryFS struct {
	files map[string][]byte
	dirs  map[string]bool
}

// NewMemoryFS creates a new MemoryFS instance
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// AddFile adds a file to the memory filesystem, creating parent
// directories implicitly.
func (mfs *MemoryFS) AddFile(name string, content []byte) {
	mfs.files[path.Clean(name)] = content
	dir := path.Dir(name)
	for dir != "." && dir != "/" {
		mfs.dirs[dir] = true
		dir = path.Dir(dir)
	}
}

func (mfs *MemoryFS) ReadFile(name string) ([]byte, error) {
	content, exists := mfs.files[path.Clean(name)]
	if !exists {
		return nil, fmt.Errorf("file not found: %s", name)
	}
	return content, nil
}

// Walk visits directories and files under root in lexical order.
func (mfs *MemoryFS) Walk(root string, fn WalkFunc) error {
	cleanRoot := path.Clean(root)

	paths := make([]string, 0, len(mfs.files)+len(mfs.dirs))
	for p := range mfs.dirs {
		if underRoot(p, cleanRoot) {
			paths = append(paths, p)
		}
	}
	for p := range mfs.files {
		if underRoot(p, cleanRoot) {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)

	var skipped []string
	for _, p := range paths {
		if isSkipped(p, skipped) {
			continue
		}
		isDir := mfs.dirs[p]
		info := memoryFileInfo{
			name:  path.Base(p),
			size:  int64(len(mfs.files[p])),
			isDir: isDir,
		}
		if err := fn(p, info, nil); err != nil {
			if err == SkipDir && isDir {
				skipped = append(skipped, p+"/")
				continue
			}
			return err
		}
	}
	return nil
}

func (mfs *MemoryFS) Join(elem ...string) string {
	return path.Join(elem...)
}

func (mfs *MemoryFS) Base(p string) string {
	return path.Base(p)
}

func underRoot(p, root string) bool {
	return root == "." || p == root || strings.HasPrefix(p, root+"/")
}

func isSkipped(p string, skipped []string) bool {
	for _, prefix := range skipped {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

type memoryFileInfo struct {
	name  string
	size  int64
	isDir bool
}

func (fi memoryFileInfo) Name() string { return fi.name }
func (fi memoryFileInfo) Size() int64  { return fi.size }
func (fi memoryFileInfo) IsDir() bool  { return fi.isDir }
