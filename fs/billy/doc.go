// Package billy provides core.FS implementations backed by go-billy.
//
// Two providers are available:
//
//   - LocalFS wraps billy's osfs and resolves relative names against the
//     process working directory.
//   - MemoryFS wraps billy's memfs; useful in tests.
//
// Both implement core.FS, core.SymlinkFS and core.PathFS, and expose the
// underlying billy.Filesystem through Unwrap.
//
// Symbolic links have two entry points, SymlinkFile and SymlinkDir. On
// Windows LocalFS creates them with CreateSymbolicLinkW, passing the
// directory flag for SymlinkDir. Everywhere else, and always for MemoryFS,
// both entry points use the same primitive.
//
//	local := billy.NewLocal()
//	if err := local.SymlinkDir("/src/include", "/out/include"); err != nil {
//	    return err
//	}
package billy
