package filesystems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFSReadFile(t *testing.T) {
	fs := NewMemoryFS()
	fs.AddFile("dir/file.txt", []byte("content"))

	content, err := fs.ReadFile("dir/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "content", string(content))

	_, err = fs.ReadFile("missing.txt")
	assert.Error(t, err)
}

func TestMemoryFSWalk(t *testing.T) {
	fs := NewMemoryFS()
	fs.AddFile("a.txt", []byte("1"))
	fs.AddFile("sub/b.txt", []byte("22"))
	fs.AddFile("sub/deep/c.txt", []byte("333"))

	var visited []string
	err := fs.Walk(".", func(path string, info FileInfo, err error) error {
		require.NoError(t, err)
		if !info.IsDir() {
			visited = append(visited, path)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "sub/b.txt", "sub/deep/c.txt"}, visited)
}

func TestMemoryFSWalkSkipDir(t *testing.T) {
	fs := NewMemoryFS()
	fs.AddFile("keep/a.txt", []byte("1"))
	fs.AddFile("skip/b.txt", []byte("2"))

	var visited []string
	err := fs.Walk(".", func(path string, info FileInfo, err error) error {
		if info.IsDir() && fs.Base(path) == "skip" {
			return SkipDir
		}
		if !info.IsDir() {
			visited = append(visited, path)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"keep/a.txt"}, visited)
}
