// Package clipboard reads and writes the operating system's text clipboard
// through one interface, whatever the platform.
//
// On Linux and FreeBSD the clipboard is reached through external utilities
// (wl-clipboard, xsel, xclip, the WSL and Termux helpers), picked once by
// probing PATH. macOS uses pbcopy/pbpaste, Windows the native user32 API.
// Platforms without a clipboard get a backend that accepts writes and reads
// back nothing.
package clipboard

import (
	"context"
)

// Clipboard is a text clipboard. The Context variants stop waiting when ctx
// is done; the plain forms wait with context.Background().
type Clipboard interface {
	Read() (string, error)
	ReadContext(ctx context.Context) (string, error)
	Write(text string) error
	WriteContext(ctx context.Context, text string) error
}

// runner is the process side of the command backends.
type runner interface {
	Output(ctx context.Context, name, args string) (string, error)
	Input(ctx context.Context, name, args, text string) error
}
