// Package core defines the filesystem contracts the annotated filesystem
// layer is built on.
//
// Providers implement FS and, where the backend supports them, the optional
// SymlinkFS and PathFS capabilities. Callers check optional capabilities
// with a type assertion:
//
//	if pfs, ok := filesystem.(core.PathFS); ok {
//	    dir, err := pfs.Canonicalize("target")
//	}
//
// This package only defines interfaces, sentinel errors and the CopyFile
// helper. Implementations live in github.com/jmgilman/go/gen/fs/billy.
package core
