package filesystem

import (
	"io"
	"io/fs"
)

// File is a scratch file opened for writing
type File interface {
	io.Writer
	io.Closer
	Name() string
}

// FS abstracts the filesystem operations used by the text primitives
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// CreateTemp creates a new file in dir whose name does not collide with
	// any existing file. The caller owns the file and must remove or rename it.
	CreateTemp(dir, pattern string) (File, error)

	Chmod(name string, mode fs.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
}
