package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/berrythewa/sysclip/internal/session"
	"github.com/berrythewa/sysclip/pkg/clipboard"
)

// probeReport is what `sysclip probe` prints
type probeReport struct {
	OS         string               `json:"os"`
	Configured clipboard.Backend    `json:"configured_backend"`
	Effective  clipboard.Backend    `json:"effective_backend"`
	Unix       clipboard.Resolution `json:"unix"`
	Session    session.Report       `json:"session"`
}

func newProbeCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Show which clipboard backend and utilities would be used",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := a.probe()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			printProbe(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")
	return cmd
}

func (a *app) probe() probeReport {
	effective := a.cfg.Backend
	if effective == clipboard.BackendAuto {
		effective = clipboard.ForOS(runtime.GOOS)
	}

	paste := append(append([]clipboard.Candidate(nil), a.cfg.Candidates.Paste...), clipboard.PasteCandidates()...)
	cp := append(append([]clipboard.Candidate(nil), a.cfg.Candidates.Copy...), clipboard.CopyCandidates()...)

	return probeReport{
		OS:         runtime.GOOS,
		Configured: a.cfg.Backend,
		Effective:  effective,
		Unix:       clipboard.NewProbe().Resolve(paste, cp),
		Session:    a.detect(),
	}
}

func printProbe(w io.Writer, r probeReport) {
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()
	label := color.New(color.Bold).SprintFunc()

	found := func(c clipboard.Candidate) string {
		if c.IsZero() {
			return bad("not found")
		}
		return ok(c.String())
	}

	fmt.Fprintf(w, "%s %s (%s on %s)\n", label("Backend:"), r.Effective, r.Configured, r.OS)
	fmt.Fprintf(w, "%s %s\n", label("Paste:  "), found(r.Unix.Paste))
	fmt.Fprintf(w, "%s %s\n", label("Copy:   "), found(r.Unix.Copy))
	fmt.Fprintf(w, "%s %t\n", label("Trim:   "), r.Unix.Trim)
	if r.Unix.Unsupported {
		fmt.Fprintln(w, bad(clipboard.MissingCommands))
	}

	fmt.Fprintf(w, "%s %s\n", label("Session:"), r.Session)
	if x := r.Session.X11; x != nil {
		switch {
		case !x.Reachable:
			fmt.Fprintf(w, "  X11 %s: %s (%s)\n", x.Display, bad("unreachable"), x.Error)
		case x.SelectionSet:
			fmt.Fprintf(w, "  X11 %s: CLIPBOARD owned by window 0x%x\n", x.Display, x.Owner)
		default:
			fmt.Fprintf(w, "  X11 %s: CLIPBOARD has no owner\n", x.Display)
		}
	}
}
