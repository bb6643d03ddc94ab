package billy

import (
	"io"
	"io/fs"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/gen/fs/core"
)

// File wraps billy.File to implement both core.File and fs.File.
// It keeps the name the caller used, since billy.File.Name() reports the
// backend path, and a reference to the filesystem for Stat.
type File struct {
	file billy.File
	fs   billy.Basic
	path string
	name string
}

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// Write implements io.Writer.
func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Close implements io.Closer.
func (f *File) Close() error {
	return f.file.Close()
}

// Stat implements fs.File.Stat through the filesystem, since billy.File
// doesn't provide Stat().
func (f *File) Stat() (fs.FileInfo, error) {
	return f.fs.Stat(f.path)
}

// Name returns the name provided to Open/OpenFile.
func (f *File) Name() string {
	return f.name
}

// Seek implements io.Seeker.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Compile-time interface checks.
var (
	_ core.File = (*File)(nil)
	_ fs.File   = (*File)(nil)
	_ io.Seeker = (*File)(nil)
)
