package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClonesMatchByCode(t *testing.T) {
	rejected := Clone(ErrBackendStatus, "backend responded with status 503")
	wrapped := fmt.Errorf("create lead: %w", rejected)

	assert.ErrorIs(t, wrapped, ErrBackendStatus)
	assert.NotErrorIs(t, wrapped, ErrBackendTransport)
	assert.Equal(t, "backend returned an unsuccessful status", ErrBackendStatus.Message)
}

func TestWithKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := ErrBackendTransport.With(cause, "")

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrBackendTransport)
	assert.Equal(t, "backend could not be reached: connection refused", err.Error())
	assert.Nil(t, ErrBackendTransport.Err)
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))
	assert.Same(t, ErrSubmissionInFlight, FromError(ErrSubmissionInFlight))

	internal := FromError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, ErrInternal.Message, internal.Message)
}
