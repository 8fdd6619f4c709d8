package clipboard

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Backend names a clipboard implementation.
type Backend string

const (
	BackendAuto    Backend = "auto"
	BackendUnix    Backend = "unix"
	BackendDarwin  Backend = "darwin"
	BackendWindows Backend = "windows"
	BackendEmpty   Backend = "empty"
	BackendAtotto  Backend = "atotto"
)

// Backends lists every name New accepts.
var Backends = []Backend{BackendAuto, BackendUnix, BackendDarwin, BackendWindows, BackendEmpty, BackendAtotto}

// Options configures New.
type Options struct {
	// Backend selects the implementation; "" means BackendAuto.
	Backend Backend
	// PasteCandidates and CopyCandidates are probed before the defaults by
	// the unix backend.
	PasteCandidates []Candidate
	CopyCandidates  []Candidate
	// OpenTimeout bounds the native backend's wait for the clipboard.
	OpenTimeout time.Duration
	Logger      *zap.Logger
}

var system = sync.OnceValue(func() Clipboard {
	return forOS(runtime.GOOS, Options{Logger: zap.NewNop()})
})

// System returns the clipboard for the running platform. It is built on
// first use, probing PATH where needed, and shared for the life of the process.
func System() Clipboard {
	return system()
}

// New builds a fresh clipboard as described by opts.
func New(opts Options) (Clipboard, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	switch opts.Backend {
	case "", BackendAuto:
		return forOS(runtime.GOOS, opts), nil
	case BackendUnix:
		return newUnixFromOptions(opts), nil
	case BackendDarwin:
		return NewDarwinClipboard(opts.Logger), nil
	case BackendWindows:
		return newNativeClipboard(opts)
	case BackendEmpty:
		return NewEmptyClipboard(), nil
	case BackendAtotto:
		return NewAtottoClipboard(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, opts.Backend)
}

// ForOS names the backend BackendAuto picks on goos.
func ForOS(goos string) Backend {
	switch goos {
	case "windows":
		return BackendWindows
	case "darwin":
		return BackendDarwin
	case "linux", "freebsd":
		return BackendUnix
	}
	return BackendEmpty
}

func forOS(goos string, opts Options) Clipboard {
	switch ForOS(goos) {
	case BackendWindows:
		if c, err := newNativeClipboard(opts); err == nil {
			return c
		}
	case BackendDarwin:
		return NewDarwinClipboard(opts.Logger)
	case BackendUnix:
		return newUnixFromOptions(opts)
	}
	return NewEmptyClipboard()
}

func newUnixFromOptions(opts Options) *UnixClipboard {
	paste := append(append([]Candidate(nil), opts.PasteCandidates...), pasteCandidates...)
	cp := append(append([]Candidate(nil), opts.CopyCandidates...), copyCandidates...)
	return NewUnixClipboardFrom(paste, cp, opts.Logger)
}
