package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGetCmd(a *app) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the clipboard text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clip, err := a.openClipboard()
			if err != nil {
				return err
			}

			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			text, err := clip.ReadContext(ctx)
			if err != nil {
				return fmt.Errorf("failed to read clipboard: %w", err)
			}
			a.logger.Debug("Clipboard read", zap.Int("bytes", len(text)))

			out := cmd.OutOrStdout()
			if raw || strings.HasSuffix(text, "\n") || text == "" {
				_, err = io.WriteString(out, text)
				return err
			}
			_, err = fmt.Fprintln(out, text)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the text exactly, without adding a trailing newline")
	return cmd
}

func newSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set [text...]",
		Short: "Replace the clipboard text",
		Long: `Replace the clipboard text with the arguments joined by spaces.
With no arguments the text is read from standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) > 0 {
				text = strings.Join(args, " ")
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read from stdin: %w", err)
				}
				text = string(data)
			}

			clip, err := a.openClipboard()
			if err != nil {
				return err
			}

			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			if err := clip.WriteContext(ctx, text); err != nil {
				return fmt.Errorf("failed to write clipboard: %w", err)
			}
			a.logger.Debug("Clipboard written", zap.Int("bytes", len(text)))
			return nil
		},
	}
}
