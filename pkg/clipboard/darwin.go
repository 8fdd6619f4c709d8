package clipboard

import (
	"context"

	"github.com/berrythewa/sysclip/pkg/clipboard/internal/command"
	"go.uber.org/zap"
)

// DarwinClipboard uses the pbpaste and pbcopy tools that ship with macOS.
type DarwinClipboard struct {
	paste  Candidate
	copy   Candidate
	runner runner
}

// NewDarwinClipboard creates a DarwinClipboard.
func NewDarwinClipboard(logger *zap.Logger) *DarwinClipboard {
	return &DarwinClipboard{
		paste:  Candidate{Name: "pbpaste"},
		copy:   Candidate{Name: "pbcopy"},
		runner: command.NewRunner(logger),
	}
}

func (c *DarwinClipboard) Read() (string, error) {
	return c.ReadContext(context.Background())
}

func (c *DarwinClipboard) ReadContext(ctx context.Context) (string, error) {
	return c.runner.Output(ctx, c.paste.Name, c.paste.Args)
}

func (c *DarwinClipboard) Write(text string) error {
	return c.WriteContext(context.Background(), text)
}

// WriteContext hands text to pbcopy unchanged; pbpaste returns it verbatim.
func (c *DarwinClipboard) WriteContext(ctx context.Context, text string) error {
	return c.runner.Input(ctx, c.copy.Name, c.copy.Args, text)
}

var _ Clipboard = (*DarwinClipboard)(nil)
