package cargo

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/gen/errors"
)

func TestTargetDirError(t *testing.T) {
	cause := fmt.Errorf("exec: \"cargo\": executable file not found in $PATH")

	ioErr := &TargetDirError{Kind: KindIO, Err: cause}
	assert.Equal(t, "failed to run cargo metadata: "+cause.Error(), ioErr.Error())
	assert.Equal(t, errors.CodeExecutionFailed, ioErr.Code())
	assert.Equal(t, cause, ioErr.Unwrap())
	assert.False(t, errors.Is(ioErr, ErrNotFound))

	notFound := &TargetDirError{Kind: KindNotFound}
	assert.Equal(t, "target_directory not found in cargo metadata output", notFound.Error())
	assert.Equal(t, errors.CodeNotFound, notFound.Code())
	assert.Nil(t, notFound.Unwrap())
	assert.True(t, errors.Is(notFound, ErrNotFound))
	assert.True(t, errors.Is(fmt.Errorf("generate: %w", notFound), ErrNotFound))
}

func TestTargetDirError_JSON(t *testing.T) {
	data, err := json.Marshal(errors.ToJSON(&TargetDirError{Kind: KindIO, Err: fmt.Errorf("boom")}))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"code": "EXECUTION_FAILED",
		"message": "failed to run cargo metadata",
		"classification": "PERMANENT",
		"context": {"kind": "io"}
	}`, string(data))
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "io", KindIO.String())
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "unknown", ErrorKind(0).String())
}
