//go:build !windows

package clipboard

import "fmt"

func newNativeClipboard(Options) (Clipboard, error) {
	return nil, fmt.Errorf("%w: windows backend on non-windows system", ErrUnsupportedBackend)
}
