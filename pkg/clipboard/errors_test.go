package clipboard

import (
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingCommandError(t *testing.T) {
	err := newMissingCommandError()

	assert.ErrorIs(t, err, ErrMissingCommand)
	assert.NotErrorIs(t, err, ErrUnsupportedBackend)
	assert.Contains(t, err.Error(), "wl-clipboard")
	assert.Contains(t, err.Error(), "termux-clipboard-get/set")
}

func TestPlatformError(t *testing.T) {
	var err error = &PlatformError{Op: "OpenClipboard", Err: syscall.Errno(5)}

	var pe *PlatformError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "OpenClipboard", pe.Op)
	assert.ErrorIs(t, err, syscall.Errno(5))
	assert.Contains(t, err.Error(), "OpenClipboard")
}
