package cargo

import (
	"fmt"

	"github.com/jmgilman/go/gen/errors"
)

// ErrNotFound matches every TargetDirError of kind KindNotFound.
var ErrNotFound = errors.New(errors.CodeNotFound, "target_directory not found in cargo metadata output")

// ErrorKind distinguishes why the target directory could not be determined.
type ErrorKind int

const (
	// KindIO means the metadata command could not be run at all.
	KindIO ErrorKind = iota + 1
	// KindNotFound means the command ran but its output held no usable
	// target_directory value.
	KindNotFound
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// TargetDirError is returned by TargetDir. Err is set only for KindIO.
type TargetDirError struct {
	Kind ErrorKind
	Err  error
}

// Error implements the error interface.
func (e *TargetDirError) Error() string {
	if e.Kind == KindNotFound {
		return ErrNotFound.Message()
	}
	return fmt.Sprintf("failed to run cargo metadata: %v", e.Err)
}

// Unwrap returns the invocation failure, or nil for KindNotFound.
func (e *TargetDirError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrNotFound and e is a not-found error.
func (e *TargetDirError) Is(target error) bool {
	return target == ErrNotFound && e.Kind == KindNotFound
}

// Code returns EXECUTION_FAILED for KindIO and NOT_FOUND for KindNotFound.
func (e *TargetDirError) Code() errors.ErrorCode {
	if e.Kind == KindNotFound {
		return errors.CodeNotFound
	}
	return errors.CodeExecutionFailed
}

// Classification is always permanent; the command is invoked once.
func (e *TargetDirError) Classification() errors.ErrorClassification {
	return errors.ClassificationPermanent
}

// Message returns the error text without the cause.
func (e *TargetDirError) Message() string {
	if e.Kind == KindNotFound {
		return ErrNotFound.Message()
	}
	return "failed to run cargo metadata"
}

// Context returns the error kind.
func (e *TargetDirError) Context() map[string]interface{} {
	return map[string]interface{}{"kind": e.Kind.String()}
}

var _ errors.PlatformError = (*TargetDirError)(nil)
