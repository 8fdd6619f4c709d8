//go:build windows

package clipboard

import (
	"context"
	"runtime"
	"syscall"
	"time"
	"unicode/utf16"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

const (
	cfUnicodeText = 13
	gmemMoveable  = 0x0002
)

var (
	moduser32   = windows.NewLazySystemDLL("user32.dll")
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procOpenClipboard              = moduser32.NewProc("OpenClipboard")
	procCloseClipboard             = moduser32.NewProc("CloseClipboard")
	procEmptyClipboard             = moduser32.NewProc("EmptyClipboard")
	procGetClipboardData           = moduser32.NewProc("GetClipboardData")
	procSetClipboardData           = moduser32.NewProc("SetClipboardData")
	procIsClipboardFormatAvailable = moduser32.NewProc("IsClipboardFormatAvailable")

	procGlobalAlloc  = modkernel32.NewProc("GlobalAlloc")
	procGlobalFree   = modkernel32.NewProc("GlobalFree")
	procGlobalLock   = modkernel32.NewProc("GlobalLock")
	procGlobalUnlock = modkernel32.NewProc("GlobalUnlock")
)

// WindowsClipboard talks to the Win32 clipboard directly, exchanging
// CF_UNICODETEXT.
type WindowsClipboard struct {
	clock       Clock
	openTimeout time.Duration
	logger      *zap.Logger
}

// NewWindowsClipboard creates a WindowsClipboard that waits up to
// openTimeout for the clipboard to become free. Zero means DefaultOpenTimeout.
func NewWindowsClipboard(openTimeout time.Duration, logger *zap.Logger) *WindowsClipboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	if openTimeout <= 0 {
		openTimeout = DefaultOpenTimeout
	}
	return &WindowsClipboard{
		clock:       systemClock{},
		openTimeout: openTimeout,
		logger:      logger,
	}
}

func newNativeClipboard(opts Options) (Clipboard, error) {
	return NewWindowsClipboard(opts.OpenTimeout, opts.Logger), nil
}

func (c *WindowsClipboard) Read() (string, error) {
	return c.ReadContext(context.Background())
}

// ReadContext returns the clipboard text, or "" when the clipboard holds no
// text. ctx only interrupts the wait for the clipboard.
func (c *WindowsClipboard) ReadContext(ctx context.Context) (string, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if r, _, _ := procIsClipboardFormatAvailable.Call(cfUnicodeText); r == 0 {
		return "", nil
	}

	if err := c.open(ctx); err != nil {
		return "", err
	}
	defer procCloseClipboard.Call()

	h, _, err := procGetClipboardData.Call(cfUnicodeText)
	if h == 0 {
		return "", &PlatformError{Op: "GetClipboardData", Err: err}
	}

	p, _, err := procGlobalLock.Call(h)
	if p == 0 {
		return "", &PlatformError{Op: "GlobalLock", Err: err}
	}
	text := windows.UTF16PtrToString((*uint16)(unsafe.Pointer(p))) //nolint:govet // p is a locked global handle

	if r, _, err := procGlobalUnlock.Call(h); r == 0 && !isNoError(err) {
		return "", &PlatformError{Op: "GlobalUnlock", Err: err}
	}

	c.logger.Debug("Read clipboard text", zap.Int("chars", len(text)))
	return text, nil
}

func (c *WindowsClipboard) Write(text string) error {
	return c.WriteContext(context.Background(), text)
}

// WriteContext replaces the clipboard text. ctx only interrupts the wait for
// the clipboard.
func (c *WindowsClipboard) WriteContext(ctx context.Context, text string) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := c.open(ctx); err != nil {
		return err
	}
	defer procCloseClipboard.Call()

	if r, _, err := procEmptyClipboard.Call(); r == 0 {
		return &PlatformError{Op: "EmptyClipboard", Err: err}
	}

	data := append(utf16.Encode([]rune(text)), 0)
	size := uintptr(len(data) * 2)

	// SetClipboardData requires memory allocated with GMEM_MOVEABLE.
	h, _, err := procGlobalAlloc.Call(gmemMoveable, size)
	if h == 0 {
		return &PlatformError{Op: "GlobalAlloc", Err: err}
	}

	p, _, err := procGlobalLock.Call(h)
	if p == 0 {
		procGlobalFree.Call(h)
		return &PlatformError{Op: "GlobalLock", Err: err}
	}
	dst := unsafe.Slice((*uint16)(unsafe.Pointer(p)), len(data)) //nolint:govet // p is a locked global handle
	copy(dst, data)

	if r, _, err := procGlobalUnlock.Call(h); r == 0 && !isNoError(err) {
		procGlobalFree.Call(h)
		return &PlatformError{Op: "GlobalUnlock", Err: err}
	}

	// The system owns h once SetClipboardData succeeds.
	if r, _, err := procSetClipboardData.Call(cfUnicodeText, h); r == 0 {
		procGlobalFree.Call(h)
		return &PlatformError{Op: "SetClipboardData", Err: err}
	}

	c.logger.Debug("Wrote clipboard text", zap.Int("chars", len(data)-1))
	return nil
}

func (c *WindowsClipboard) open(ctx context.Context) error {
	err := acquire(ctx, c.clock, c.openTimeout, func() error {
		r, _, err := procOpenClipboard.Call(0)
		if r == 0 {
			return err
		}
		return nil
	})
	switch {
	case err == nil:
		return nil
	case ctx.Err() != nil && err == ctx.Err():
		return err
	}
	c.logger.Warn("Clipboard stayed busy", zap.Duration("timeout", c.openTimeout), zap.Error(err))
	return &PlatformError{Op: "OpenClipboard", Err: err}
}

func isNoError(err error) bool {
	errno, ok := err.(syscall.Errno)
	return ok && errno == 0
}

var _ Clipboard = (*WindowsClipboard)(nil)
