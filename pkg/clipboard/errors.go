package clipboard

import (
	"errors"
	"fmt"
)

// MissingCommands is the message carried by a MissingCommandError.
const MissingCommands = "No clipboard utilities available. Please install xsel, xclip, wl-clipboard or Termux:API add-on for termux-clipboard-get/set."

var (
	// ErrMissingCommand matches any *MissingCommandError.
	ErrMissingCommand = errors.New("clipboard: missing command")

	// ErrUnsupportedBackend is returned by New for unknown backends or a
	// native backend requested on the wrong operating system.
	ErrUnsupportedBackend = errors.New("clipboard: unsupported backend")
)

// MissingCommandError reports that no paste or copy utility was found on the
// search path. It is returned before any process is started.
type MissingCommandError struct {
	Message string
}

func (e *MissingCommandError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrMissingCommand) succeed.
func (e *MissingCommandError) Is(target error) bool {
	return target == ErrMissingCommand
}

func newMissingCommandError() error {
	return &MissingCommandError{Message: MissingCommands}
}

// PlatformError wraps a failed native clipboard call. Err is usually the
// syscall.Errno reported by the operating system.
type PlatformError struct {
	Op  string
	Err error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("clipboard: %s: %v", e.Op, e.Err)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}
