package fs

import (
	"fmt"
	iofs "io/fs"
	"sync"

	"github.com/jmgilman/go/gen/fs/billy"
	"github.com/jmgilman/go/gen/fs/core"
)

const (
	// FileMode is the mode Write creates files with, before umask.
	FileMode iofs.FileMode = 0o666
	// DirMode is the mode CreateDirAll creates directories with, before umask.
	DirMode iofs.FileMode = 0o777
)

// FS runs annotated operations against a provider.
// It holds no state besides the provider and is safe for concurrent use
// whenever the provider is.
type FS struct {
	provider core.FS
}

// New returns an FS backed by provider.
func New(provider core.FS) *FS {
	return &FS{provider: provider}
}

var defaultFS = sync.OnceValue(func() *FS {
	return New(billy.NewLocal())
})

// Default returns the FS backed by the local disk.
func Default() *FS {
	return defaultFS()
}

// Provider returns the underlying provider.
func (f *FS) Provider() core.FS {
	return f.provider
}

func unsupported(op Op, path string) error {
	return &iofs.PathError{Op: string(op), Path: path, Err: core.ErrUnsupported}
}

// Canonicalize returns the absolute form of path with every symbolic link
// resolved. The provider must implement core.PathFS.
func (f *FS) Canonicalize(path string) (string, error) {
	pfs, ok := f.provider.(core.PathFS)
	if !ok {
		return "", f.canonicalizeError(path, unsupported(OpCanonicalize, path))
	}
	resolved, err := pfs.Canonicalize(path)
	if err != nil {
		return "", f.canonicalizeError(path, err)
	}
	return resolved, nil
}

func (f *FS) canonicalizeError(path string, cause error) error {
	return newError(OpCanonicalize, cause,
		fmt.Sprintf("Unable to canonicalize path: `%s`", display(path)),
		arg{"path", path})
}

// Copy copies the contents and permission bits of from to to and returns the
// number of bytes copied.
func (f *FS) Copy(from, to string) (int64, error) {
	n, err := core.CopyFile(f.provider, from, to)
	if err != nil {
		return 0, newError(OpCopy, err,
			fmt.Sprintf("Failed to copy `%s` -> `%s`", display(from), display(to)),
			arg{"from", from}, arg{"to", to})
	}
	return n, nil
}

// CreateDirAll creates path and any missing parents.
func (f *FS) CreateDirAll(path string) error {
	if err := f.provider.MkdirAll(path, DirMode); err != nil {
		return newError(OpCreateDir, err,
			fmt.Sprintf("Failed to create directory `%s`", display(path)),
			arg{"path", path})
	}
	return nil
}

// CurrentDir returns the working directory. The provider must implement
// core.PathFS.
func (f *FS) CurrentDir() (string, error) {
	var (
		wd  string
		err error
	)
	if pfs, ok := f.provider.(core.PathFS); ok {
		wd, err = pfs.Getwd()
	} else {
		err = unsupported(OpCurrentDir, ".")
	}
	if err != nil {
		return "", newError(OpCurrentDir, err, "Failed to determine current directory")
	}
	return wd, nil
}

// Read returns the contents of path.
func (f *FS) Read(path string) ([]byte, error) {
	data, err := f.provider.ReadFile(path)
	if err != nil {
		return nil, newError(OpRead, err,
			fmt.Sprintf("Failed to read file `%s`", display(path)),
			arg{"path", path})
	}
	return data, nil
}

// RemoveFile removes the file or symbolic link at path. Directories are
// never removed.
func (f *FS) RemoveFile(path string) error {
	if err := f.provider.RemoveFile(path); err != nil {
		return newError(OpRemove, err,
			fmt.Sprintf("Failed to remove file `%s`", display(path)),
			arg{"path", path})
	}
	return nil
}

// Write replaces the contents of path with contents, creating the file if
// needed.
func (f *FS) Write(path string, contents []byte) error {
	if err := f.provider.WriteFile(path, contents, FileMode); err != nil {
		return newError(OpWrite, err,
			fmt.Sprintf("Failed to write file `%s`", display(path)),
			arg{"path", path})
	}
	return nil
}

// SymlinkFile creates dst as a symbolic link to the file src.
func (f *FS) SymlinkFile(src, dst string) error {
	return f.symlink(src, dst, core.SymlinkFS.SymlinkFile)
}

// SymlinkDir creates dst as a symbolic link to the directory src.
func (f *FS) SymlinkDir(src, dst string) error {
	return f.symlink(src, dst, core.SymlinkFS.SymlinkDir)
}

func (f *FS) symlink(src, dst string, link func(core.SymlinkFS, string, string) error) error {
	var err error
	if sfs, ok := f.provider.(core.SymlinkFS); ok {
		err = link(sfs, src, dst)
	} else {
		err = unsupported(OpSymlink, dst)
	}
	if err != nil {
		return newError(OpSymlink, err,
			fmt.Sprintf("Failed to create symlink `%s` pointing to `%s`", display(dst), display(src)),
			arg{"src", src}, arg{"dst", dst})
	}
	return nil
}
