package core

import (
	"io"
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a local, disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the primary filesystem interface combining all core operations.
// FS embeds fs.FS for stdlib compatibility.
//
// Names passed to an FS may be absolute or relative. Relative names are
// resolved against the provider's working directory (see PathFS).
type FS interface {
	fs.FS
	ReadFS
	WriteFS
	ManageFS

	// Type returns the underlying filesystem type.
	Type() FSType
}

// ReadFS defines read-only filesystem operations.
type ReadFS interface {
	// Stat returns file metadata, following symbolic links.
	// If there is an error, it will be of type *fs.PathError.
	Stat(name string) (fs.FileInfo, error)

	// ReadFile reads the named file and returns its contents.
	// A successful call returns err == nil, not err == EOF.
	ReadFile(name string) ([]byte, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// OpenFile opens a file with the specified flags and permissions.
	// If the file is created, the permission mode perm is used (before umask).
	// Parent directories are never created: a missing parent fails with
	// ErrNotExist.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// WriteFile writes data to the named file, creating it if necessary.
	// If the file already exists, WriteFile truncates it before writing.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// MkdirAll creates a directory named path, along with any necessary parents.
	// If path is already a directory, MkdirAll does nothing and returns nil.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines removal operations.
type ManageFS interface {
	// RemoveFile removes the named file or symbolic link.
	// It fails with ErrIsDir if name is a directory, and with ErrNotExist
	// if name does not exist.
	RemoveFile(name string) error
}

// File represents an open file handle.
// File extends fs.File with write operations.
type File interface {
	fs.File
	io.Writer

	// Name returns the name of the file as provided to OpenFile.
	Name() string
}

// SymlinkFS defines symbolic link operations.
//
// Some platforms create links to files and links to directories with
// different primitives, so link creation has one entry point per kind.
// Providers on platforms with a single primitive implement both entry
// points with it.
//
//	if sfs, ok := filesystem.(core.SymlinkFS); ok {
//	    err := sfs.SymlinkDir("include", "target/cxxbridge/include")
//	}
type SymlinkFS interface {
	// SymlinkFile creates a symbolic link dst pointing to the file src.
	// The src path is stored as-is; broken links are valid. The parent of
	// dst must exist.
	SymlinkFile(src, dst string) error

	// SymlinkDir creates a symbolic link dst pointing to the directory src.
	SymlinkDir(src, dst string) error

	// Readlink returns the destination of the named symbolic link.
	Readlink(name string) (string, error)

	// Lstat returns file info without following symbolic links.
	Lstat(name string) (fs.FileInfo, error)
}

// PathFS defines path resolution operations.
type PathFS interface {
	// Canonicalize returns the absolute form of name with every symbolic
	// link resolved and no "." or ".." elements. The path must exist.
	Canonicalize(name string) (string, error)

	// Getwd returns the working directory relative names are resolved against.
	Getwd() (string, error)
}
