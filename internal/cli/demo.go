package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const demoText = "Hello from sysclip! 👋"

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo [text...]",
		Short: "Write text to the clipboard and read it back",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := demoText
			if len(args) > 0 {
				text = strings.Join(args, " ")
			}

			clip, err := a.openClipboard()
			if err != nil {
				return err
			}

			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Writing: %q\n", text)
			if err := clip.WriteContext(ctx, text); err != nil {
				return fmt.Errorf("failed to write clipboard: %w", err)
			}

			got, err := clip.ReadContext(ctx)
			if err != nil {
				return fmt.Errorf("failed to read clipboard: %w", err)
			}
			fmt.Fprintf(out, "Read:    %q\n", got)

			if got == text {
				fmt.Fprintln(out, color.GreenString("Round trip OK"))
			} else {
				fmt.Fprintln(out, color.YellowString("Clipboard returned different text"))
			}
			return nil
		},
	}
}
