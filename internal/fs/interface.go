package fs

import (
	"io"
	"os"
)

// FS bundles all methods the archiver needs to read a source tree.
type FS interface {
	Open(name string) (File, error)
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
	Stat(name string) (os.FileInfo, error)
	Lstat(name string) (os.FileInfo, error)

	Separator() string
	Clean(path string) string
	Base(path string) string
	Dir(path string) string
}

// File is an open file on a file system.
type File interface {
	io.Reader
	io.Closer

	Name() string
	Readdirnames(n int) ([]string, error)
	Stat() (os.FileInfo, error)
}
