package fs

import (
	iofs "io/fs"
	"path/filepath"

	"github.com/jmgilman/go/gen/errors"
	"github.com/jmgilman/go/gen/fs/core"
)

// Re-exported sentinels so callers can test causes without importing io/fs.
var (
	ErrNotExist    = iofs.ErrNotExist
	ErrExist       = iofs.ErrExist
	ErrPermission  = iofs.ErrPermission
	ErrUnsupported = core.ErrUnsupported
)

// Op names the filesystem operation that failed.
type Op string

const (
	OpCanonicalize Op = "canonicalize"
	OpCopy         Op = "copy"
	OpCreateDir    Op = "create_dir"
	OpCurrentDir   Op = "current_dir"
	OpRead         Op = "read"
	OpRemove       Op = "remove"
	OpWrite        Op = "write"
	OpSymlink      Op = "symlink"
)

// arg is a named path argument of a failed operation.
type arg struct {
	key  string
	path string
}

// Error is a failed filesystem operation. Its message is formatted when the
// error is created and never includes the cause; the cause is available
// through Unwrap.
type Error struct {
	op      Op
	args    []arg
	message string
	code    errors.ErrorCode
	cause   error
}

func newError(op Op, cause error, message string, args ...arg) *Error {
	return &Error{
		op:      op,
		args:    args,
		message: message,
		code:    codeOf(cause),
		cause:   cause,
	}
}

func codeOf(cause error) errors.ErrorCode {
	switch {
	case errors.Is(cause, iofs.ErrNotExist):
		return errors.CodeNotFound
	case errors.Is(cause, iofs.ErrExist):
		return errors.CodeAlreadyExists
	case errors.Is(cause, iofs.ErrPermission):
		return errors.CodeForbidden
	case errors.Is(cause, core.ErrUnsupported):
		return errors.CodeNotImplemented
	default:
		return errors.CodeIO
	}
}

// display renders a path in the platform's native form.
func display(path string) string {
	return filepath.FromSlash(path)
}

// Error returns the annotated message.
func (e *Error) Error() string {
	return e.message
}

// Unwrap returns the provider error that caused the failure.
func (e *Error) Unwrap() error {
	return e.cause
}

// Op returns the failed operation.
func (e *Error) Op() Op {
	return e.op
}

// Code maps the cause onto an error code.
func (e *Error) Code() errors.ErrorCode {
	return e.code
}

// Classification is always permanent. Filesystem failures are not retried.
func (e *Error) Classification() errors.ErrorClassification {
	return errors.ClassificationPermanent
}

// Message returns the annotated message.
func (e *Error) Message() string {
	return e.message
}

// Context returns the operation and its path arguments.
func (e *Error) Context() map[string]interface{} {
	ctx := map[string]interface{}{"op": string(e.op)}
	for _, a := range e.args {
		ctx[a.key] = a.path
	}
	return ctx
}

var _ errors.PlatformError = (*Error)(nil)
