package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrBridge,
		ErrProbe,
		ErrPage,
	}

	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
	}

	// Verify codes are unique
	seen := make(map[string]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in .vitals.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "bridge error",
			code:       ErrBridge,
			message:    "No host connected to the bridge",
			suggestion: "Connect the embedding host to ws://127.0.0.1:7317/bridge",
		},
		{
			name:       "probe error",
			code:       ErrProbe,
			message:    "Cannot read filesystem stats",
			suggestion: "Simulated baseline values are used instead",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)
			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestError_Format(t *testing.T) {
	err := New(ErrBridge, "Cannot post action", "Check the host connection")
	msg := err.Error()

	assert.True(t, strings.HasPrefix(msg, "✗ Cannot post action"))
	assert.Contains(t, msg, "Check the host connection")
}

func TestError_FormatWithCause(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := WrapWithCode(cause, ErrBridge, "Cannot post action", "Reconnect the host")
	msg := err.Error()

	assert.Contains(t, msg, "Cannot post action")
	assert.Contains(t, msg, "connection reset by peer")
	assert.Contains(t, msg, "Reconnect the host")
}

func TestWrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, "Something failed")

	assert.Equal(t, ErrBridge, err.Code)
	assert.Equal(t, cause, err.Cause)
	assert.ErrorIs(t, err, cause)
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := WrapWithCode(cause, ErrConfig, "msg", "fix")

	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestIsCode(t *testing.T) {
	err := New(ErrPage, "Unknown page", "")

	assert.True(t, IsCode(err, ErrPage))
	assert.False(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(nil, ErrPage))
	assert.False(t, IsCode(errors.New("plain"), ErrPage))
}
