package filecheck

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

// RealFileSystem implements FileSystem using the actual file system.
// Relative names resolve against Root; an empty Root means the working directory.
type RealFileSystem struct {
	Root string
}

// Stat returns file info for the given path.
func (r *RealFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(r.resolve(name))
}

// ReadFile reads a file's contents.
func (r *RealFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(r.resolve(name)) //nolint:gosec // paths come from the fixed manifest
}

func (r *RealFileSystem) resolve(name string) string {
	if r.Root == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(r.Root, filepath.FromSlash(name))
}
