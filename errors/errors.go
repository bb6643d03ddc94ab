package errors

// PlatformError is an error carrying a code, a retry classification, a
// precomputed message and optional metadata.
//
// It stays compatible with the standard library: the wrapped cause, if any,
// is reachable through Unwrap and therefore through errors.Is and errors.As.
type PlatformError interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message without the cause.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error, or nil if there is none.
	Unwrap() error
}
