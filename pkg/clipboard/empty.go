package clipboard

import "context"

// EmptyClipboard discards writes and always reads back "".
type EmptyClipboard struct{}

// NewEmptyClipboard returns a clipboard that holds nothing.
func NewEmptyClipboard() *EmptyClipboard {
	return &EmptyClipboard{}
}

func (EmptyClipboard) Read() (string, error) { return "", nil }

func (EmptyClipboard) ReadContext(context.Context) (string, error) { return "", nil }

func (EmptyClipboard) Write(string) error { return nil }

func (EmptyClipboard) WriteContext(context.Context, string) error { return nil }

var _ Clipboard = EmptyClipboard{}
