//go:build windows

package billy

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

// symbolicLinkFlagAllowUnprivilegedCreate lets Developer Mode users create
// links without elevation.
const symbolicLinkFlagAllowUnprivilegedCreate = 0x2

// SymlinkFile creates a symbolic link dst pointing to the file src.
func (lfs *LocalFS) SymlinkFile(src, dst string) error {
	return createSymbolicLink(src, dst, 0)
}

// SymlinkDir creates a symbolic link dst pointing to the directory src.
func (lfs *LocalFS) SymlinkDir(src, dst string) error {
	return createSymbolicLink(src, dst, windows.SYMBOLIC_LINK_FLAG_DIRECTORY)
}

func createSymbolicLink(src, dst string, flags uint32) error {
	link := func(err error) error {
		return &os.LinkError{Op: "symlink", Old: src, New: dst, Err: err}
	}

	target, err := windows.UTF16PtrFromString(filepath.FromSlash(src))
	if err != nil {
		return link(err)
	}
	abs, err := filepath.Abs(dst)
	if err != nil {
		return link(err)
	}
	name, err := windows.UTF16PtrFromString(abs)
	if err != nil {
		return link(err)
	}

	if err := windows.CreateSymbolicLink(name, target, flags|symbolicLinkFlagAllowUnprivilegedCreate); err != nil {
		return link(err)
	}
	return nil
}
