// Package fs provides filesystem access where every failure is annotated
// with a readable, path-specific message.
//
// Each operation performs exactly one call against a core.FS provider. When
// that call fails the returned *Error carries a message naming the operation
// and every path involved, while the provider's error stays reachable
// through errors.Is and errors.As:
//
//	data, err := fs.Read("Cargo.toml")
//	if err != nil {
//	    fmt.Println(err)                          // Failed to read file `Cargo.toml`
//	    fmt.Println(errors.Is(err, fs.ErrNotExist)) // true
//	}
//
// The package-level functions use Default, a shim over the local disk, and
// accept any string-kinded path type. Use New to run the same operations
// against another provider, such as an in-memory filesystem in tests.
//
// Nothing is retried and nothing is recovered: every failure is returned to
// the caller.
package fs
