package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/gen/fs/core"
)

// resolver maps a caller-supplied name to the name used inside the billy
// filesystem.
type resolver func(name string) (string, error)

// base implements the operations LocalFS and MemoryFS share on top of a
// billy.Filesystem.
type base struct {
	bfs     billy.Filesystem
	resolve resolver
}

func (b *base) path(op, name string) (string, error) {
	resolved, err := b.resolve(name)
	if err != nil {
		return "", &fs.PathError{Op: op, Path: name, Err: err}
	}
	return resolved, nil
}

// requireParent fails with fs.ErrNotExist when the directory that would hold
// resolved is missing, and with core.ErrNotDir when it is not a directory.
// billy creates missing parents on create and on symlink; the operating
// system primitives do not.
func (b *base) requireParent(op, name, resolved string) error {
	dir := path.Dir(filepath.ToSlash(resolved))
	if dir == "." || dir == "/" {
		return nil
	}

	info, err := b.bfs.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	case err != nil:
		return &fs.PathError{Op: op, Path: name, Err: err}
	case !info.IsDir():
		return &fs.PathError{Op: op, Path: name, Err: core.ErrNotDir}
	}
	return nil
}

// Open opens the named file for reading.
func (b *base) Open(name string) (fs.File, error) {
	return b.OpenFile(name, os.O_RDONLY, 0)
}

// Stat returns file metadata for the named file, following symbolic links.
func (b *base) Stat(name string) (fs.FileInfo, error) {
	resolved, err := b.path("stat", name)
	if err != nil {
		return nil, err
	}
	return b.bfs.Stat(resolved)
}

// Lstat returns file metadata without following a final symbolic link.
func (b *base) Lstat(name string) (fs.FileInfo, error) {
	resolved, err := b.path("lstat", name)
	if err != nil {
		return nil, err
	}
	return b.bfs.Lstat(resolved)
}

// ReadFile reads the named file and returns its contents.
func (b *base) ReadFile(name string) ([]byte, error) {
	f, err := b.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// OpenFile opens a file with the specified flags and permissions.
func (b *base) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	resolved, err := b.path("open", name)
	if err != nil {
		return nil, err
	}
	if flag&os.O_CREATE != 0 {
		if err := b.requireParent("open", name, resolved); err != nil {
			return nil, err
		}
	}
	f, err := b.bfs.OpenFile(resolved, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: b.bfs, path: resolved, name: name}, nil
}

// WriteFile writes data to the named file, creating or truncating it.
func (b *base) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f, err := b.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (b *base) MkdirAll(path string, perm fs.FileMode) error {
	resolved, err := b.path("mkdir", path)
	if err != nil {
		return err
	}
	return b.bfs.MkdirAll(resolved, perm)
}

// RemoveFile removes the named file or symbolic link. Directories are refused.
func (b *base) RemoveFile(name string) error {
	resolved, err := b.path("remove", name)
	if err != nil {
		return err
	}
	info, err := b.bfs.Lstat(resolved)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "remove", Path: name, Err: core.ErrIsDir}
	}
	return b.bfs.Remove(resolved)
}

// Readlink returns the destination of the named symbolic link.
func (b *base) Readlink(name string) (string, error) {
	resolved, err := b.path("readlink", name)
	if err != nil {
		return "", err
	}
	return b.bfs.Readlink(resolved)
}

// symlink creates dst pointing to src with billy's single link primitive.
// The src path is stored as given.
func (b *base) symlink(src, dst string) error {
	resolved, err := b.path("symlink", dst)
	if err != nil {
		return err
	}
	if err := b.requireParent("symlink", dst, resolved); err != nil {
		return err
	}
	return b.bfs.Symlink(filepath.FromSlash(src), resolved)
}

// Unwrap returns the underlying billy.Filesystem, e.g. for go-git integration.
func (b *base) Unwrap() billy.Filesystem {
	return b.bfs
}
