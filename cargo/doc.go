// Package cargo locates the directory cargo places build artifacts in.
//
// The location is read from the target_directory field that
// `cargo metadata --no-deps --format-version=1` prints. The field is found
// by scanning the output rather than decoding it, so the lookup needs no
// JSON parser:
//
//	dir, err := cargo.FindTargetDir(ctx)
//	if errors.Is(err, cargo.ErrNotFound) {
//	    // cargo ran but printed no target_directory
//	}
//	headers := dir.Join("cxxbridge", "include")
//
// The cargo executable defaults to "cargo". A build can change the default
// at link time:
//
//	go build -ldflags "-X github.com/jmgilman/go/gen/cargo.Executable=/opt/rust/bin/cargo"
//
// and a caller can override it per Locator with WithExecutable.
package cargo
