package clipboard

import (
	"context"

	"github.com/berrythewa/sysclip/pkg/clipboard/internal/command"
	"go.uber.org/zap"
)

const lineTerminator = "\n"

// UnixClipboard shells out to whichever clipboard utilities were found on
// PATH when it was created. The choice is never revisited.
type UnixClipboard struct {
	resolution Resolution
	runner     runner
	logger     *zap.Logger
}

// NewUnixClipboard probes the default paste and copy utilities.
func NewUnixClipboard(logger *zap.Logger) *UnixClipboard {
	return NewUnixClipboardFrom(pasteCandidates, copyCandidates, logger)
}

// NewUnixClipboardFrom probes the given candidate lists, in order.
func NewUnixClipboardFrom(paste, cp []Candidate, logger *zap.Logger) *UnixClipboard {
	if logger == nil {
		logger = zap.NewNop()
	}

	res := NewProbe().Resolve(paste, cp)

	if res.Unsupported {
		logger.Warn("No clipboard utilities found on PATH",
			zap.String("paste", res.Paste.String()),
			zap.String("copy", res.Copy.String()))
	} else {
		logger.Debug("Resolved clipboard utilities",
			zap.String("paste", res.Paste.String()),
			zap.String("copy", res.Copy.String()),
			zap.Bool("trim", res.Trim))
	}

	return newUnixClipboard(res, command.NewRunner(logger), logger)
}

// NewUnixClipboardWithCommands uses paste and copy as given, without
// probing. trim controls whether reads lose their last two characters.
func NewUnixClipboardWithCommands(paste, cp Candidate, trim bool, logger *zap.Logger) *UnixClipboard {
	if logger == nil {
		logger = zap.NewNop()
	}

	res := Resolution{
		Paste: paste,
		Copy:  cp,
		Trim:  trim,
	}
	return newUnixClipboard(res, command.NewRunner(logger), logger)
}

func newUnixClipboard(res Resolution, r runner, logger *zap.Logger) *UnixClipboard {
	return &UnixClipboard{
		resolution: res,
		runner:     r,
		logger:     logger,
	}
}

// Resolution returns the commands this clipboard was built with.
func (c *UnixClipboard) Resolution() Resolution {
	return c.resolution
}

// Read returns the clipboard text.
func (c *UnixClipboard) Read() (string, error) {
	return c.ReadContext(context.Background())
}

// ReadContext returns the clipboard text. When paste and copy are different
// utilities, the last two characters of the output are dropped.
func (c *UnixClipboard) ReadContext(ctx context.Context) (string, error) {
	if c.resolution.Unsupported {
		return "", newMissingCommandError()
	}

	text, err := c.runner.Output(ctx, c.resolution.Paste.Name, c.resolution.Paste.Args)
	if err != nil {
		return "", err
	}

	if c.resolution.Trim {
		return trimTerminator(text), nil
	}
	return text, nil
}

// Write replaces the clipboard text. A line terminator is appended.
func (c *UnixClipboard) Write(text string) error {
	return c.WriteContext(context.Background(), text)
}

// WriteContext replaces the clipboard text. A line terminator is appended.
func (c *UnixClipboard) WriteContext(ctx context.Context, text string) error {
	if c.resolution.Unsupported {
		return newMissingCommandError()
	}

	return c.runner.Input(ctx, c.resolution.Copy.Name, c.resolution.Copy.Args, text+lineTerminator)
}

// trimTerminator drops the last two characters, assumed to be the line
// terminator a mismatched paste tool adds. Shorter text is left alone.
func trimTerminator(text string) string {
	runes := []rune(text)
	if len(runes) < 2 {
		return text
	}
	return string(runes[:len(runes)-2])
}

var _ Clipboard = (*UnixClipboard)(nil)
