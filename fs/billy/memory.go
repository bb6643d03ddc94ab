package billy

import (
	"errors"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/jmgilman/go/gen/fs/core"
)

// maxLinkHops bounds symbolic link resolution in Canonicalize.
const maxLinkHops = 255

var errTooManyLinks = errors.New("too many levels of symbolic links")

// MemoryFS is an in-memory filesystem backed by billy's memfs.
// Its working directory is always "/".
type MemoryFS struct {
	base
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty.
func NewMemory(_ ...Option) *MemoryFS {
	return &MemoryFS{
		base: base{bfs: memfs.New(), resolve: memoryPath},
	}
}

// memoryPath makes name absolute against "/" and uses forward slashes.
func memoryPath(name string) (string, error) {
	name = filepath.ToSlash(name)
	if !path.IsAbs(name) {
		name = "/" + name
	}
	return path.Clean(name), nil
}

// SymlinkFile creates a symbolic link dst pointing to the file src.
func (mfs *MemoryFS) SymlinkFile(src, dst string) error {
	return mfs.symlink(src, dst)
}

// SymlinkDir creates a symbolic link dst pointing to the directory src.
// memfs has a single link primitive for both kinds.
func (mfs *MemoryFS) SymlinkDir(src, dst string) error {
	return mfs.symlink(src, dst)
}

// Canonicalize resolves name one element at a time, following every
// symbolic link, and returns the resulting absolute path.
func (mfs *MemoryFS) Canonicalize(name string) (string, error) {
	fail := func(err error) (string, error) {
		return "", &fs.PathError{Op: "canonicalize", Path: name, Err: err}
	}

	p := filepath.ToSlash(name)
	if !path.IsAbs(p) {
		p = "/" + p
	}

	resolved := "/"
	pending := strings.Split(p, "/")
	hops := 0
	for len(pending) > 0 {
		elem := pending[0]
		pending = pending[1:]

		switch elem {
		case "", ".":
			continue
		case "..":
			resolved = path.Dir(resolved)
			continue
		}

		next := path.Join(resolved, elem)
		info, err := mfs.bfs.Lstat(next)
		if err != nil {
			return fail(err)
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			resolved = next
			continue
		}

		hops++
		if hops > maxLinkHops {
			return fail(errTooManyLinks)
		}
		target, err := mfs.bfs.Readlink(next)
		if err != nil {
			return fail(err)
		}
		target = filepath.ToSlash(target)
		if path.IsAbs(target) {
			resolved = "/"
		}
		pending = append(strings.Split(target, "/"), pending...)
	}
	return resolved, nil
}

// Getwd returns "/".
func (mfs *MemoryFS) Getwd() (string, error) {
	return "/", nil
}

// Type returns FSTypeMemory.
func (mfs *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

var (
	_ core.FS        = (*MemoryFS)(nil)
	_ core.SymlinkFS = (*MemoryFS)(nil)
	_ core.PathFS    = (*MemoryFS)(nil)
)
