// Package command runs clipboard utilities as child processes, feeding or
// capturing their standard streams.
package command

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Runner spawns one process per call. Cancelling ctx stops the caller from
// waiting but leaves the process to exit on its own.
type Runner struct {
	logger *zap.Logger
}

// NewRunner creates a Runner. A nil logger disables logging.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger}
}

// Output runs name with args and returns everything it wrote to stdout.
// Stdin is left alone.
func (r *Runner) Output(ctx context.Context, name, args string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cmd := exec.Command(name, strings.Fields(args)...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	r.logger.Debug("Starting paste command",
		zap.String("command", name),
		zap.String("args", args))

	if err := cmd.Start(); err != nil {
		return "", err
	}

	if err := wait(ctx, cmd.Wait); err != nil {
		return "", err
	}

	r.logger.Debug("Paste command finished",
		zap.String("command", name),
		zap.Int("bytes", stdout.Len()))

	return stdout.String(), nil
}

// Input runs name with args and writes text to its stdin, closing the
// stream afterwards. Stdout is left alone.
func (r *Runner) Input(ctx context.Context, name, args, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cmd := exec.Command(name, strings.Fields(args)...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}

	r.logger.Debug("Starting copy command",
		zap.String("command", name),
		zap.String("args", args),
		zap.Int("bytes", len(text)))

	if err := cmd.Start(); err != nil {
		return err
	}

	// The process is always reaped, even when the write fails half way.
	return wait(ctx, func() error {
		_, werr := io.WriteString(stdin, text)
		cerr := stdin.Close()
		waitErr := cmd.Wait()
		switch {
		case werr != nil:
			return werr
		case cerr != nil:
			return cerr
		}
		return waitErr
	})
}

// wait runs fn on its own goroutine and returns its result, or ctx.Err() as
// soon as ctx is done. fn keeps running in the background after a cancel.
func wait(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
