package clipboard

import (
	"context"

	atotto "github.com/atotto/clipboard"
)

// AtottoClipboard delegates to github.com/atotto/clipboard. It is only used
// when asked for by name. The underlying calls cannot be interrupted, so the
// Context variants only check ctx before starting.
type AtottoClipboard struct{}

// NewAtottoClipboard returns an atotto-backed clipboard.
func NewAtottoClipboard() *AtottoClipboard {
	return &AtottoClipboard{}
}

func (c *AtottoClipboard) Read() (string, error) {
	return atotto.ReadAll()
}

func (c *AtottoClipboard) ReadContext(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return c.Read()
}

func (c *AtottoClipboard) Write(text string) error {
	return atotto.WriteAll(text)
}

func (c *AtottoClipboard) WriteContext(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.Write(text)
}

// Supported reports whether atotto found a usable clipboard on this system.
func (c *AtottoClipboard) Supported() bool {
	return !atotto.Unsupported
}

var _ Clipboard = (*AtottoClipboard)(nil)
