// Package errors provides structured error handling.
//
// This package extends Go's standard error handling with error codes,
// classification (retryable vs permanent), context metadata, and JSON
// serialization. It stays compatible with the standard library errors
// package (errors.Is, errors.As, errors.Unwrap).
//
// Other packages in this module build their own error types on top of the
// PlatformError interface. The annotated filesystem errors of package fs and
// the target directory errors of package cargo both implement it, so a
// caller can inspect any failure the same way:
//
//	dir, err := cargo.TargetDir(ctx)
//	if err != nil {
//	    switch errors.GetCode(err) {
//	    case errors.CodeNotFound:
//	        // cargo ran but printed no target_directory
//	    case errors.CodeExecutionFailed:
//	        // cargo could not be started
//	    }
//	}
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New(errors.CodeNotFound, "target directory not found")
//	err := errors.Newf(errors.CodeInvalidInput, "unknown log level %q", level)
//
// Wrapping errors:
//
//	if err := v.ReadInConfig(); err != nil {
//	    return errors.Wrap(err, errors.CodeInvalidConfig, "failed to read config")
//	}
//
// Adding context:
//
//	err = errors.WithContext(err, "file", path)
//
// JSON serialization:
//
//	_ = json.NewEncoder(os.Stderr).Encode(errors.ToJSON(err))
package errors
