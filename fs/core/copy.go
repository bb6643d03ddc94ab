package core

import (
	"io"
	"io/fs"
	"os"
)

// CopyFile copies the contents and permission bits of the file from to the
// file to, creating or truncating to. It returns the number of bytes copied.
//
// Directories cannot be copied: a directory source fails with ErrIsDir.
func CopyFile(fsys FS, from, to string) (int64, error) {
	info, err := fsys.Stat(from)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, &fs.PathError{Op: "copy", Path: from, Err: ErrIsDir}
	}

	src, err := fsys.Open(from)
	if err != nil {
		return 0, err
	}
	defer func() { _ = src.Close() }()

	dst, err := fsys.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	return n, err
}
