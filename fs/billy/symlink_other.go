//go:build !windows

package billy

// Unix creates links to files and to directories with the same symlink(2)
// call, so both entry points share it.

// SymlinkFile creates a symbolic link dst pointing to the file src.
func (lfs *LocalFS) SymlinkFile(src, dst string) error {
	return lfs.symlink(src, dst)
}

// SymlinkDir creates a symbolic link dst pointing to the directory src.
func (lfs *LocalFS) SymlinkDir(src, dst string) error {
	return lfs.symlink(src, dst)
}
