package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/berrythewa/sysclip/internal/common"
	"github.com/berrythewa/sysclip/internal/config"
	"github.com/berrythewa/sysclip/internal/session"
	"github.com/berrythewa/sysclip/pkg/clipboard"
)

// Exit codes returned by Execute
const (
	ExitError          = 1
	ExitMissingCommand = 2
)

// Version information - set by main
var (
	Version   = "dev"
	BuildTime = "unknown"
	Commit    = "none"
)

// app carries the flags and shared resources of one CLI run
type app struct {
	// Global flags
	configFile string
	backend    string
	verbose    bool
	quiet      bool
	timeout    time.Duration

	cfg    *config.Config
	logger *zap.Logger

	newClipboard func(clipboard.Options) (clipboard.Clipboard, error)
	detect       func() session.Report
}

// NewRootCmd builds the sysclip command tree
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{
		newClipboard: clipboard.New,
		detect:       session.Detect,
	})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sysclip",
		Short: "Read and write the system clipboard as text",
		Long: `sysclip reads and writes the system clipboard as plain text on Linux,
BSD, macOS, Windows, WSL and Termux.

On Unix-like systems it drives whichever of wl-clipboard, xsel, xclip,
PowerShell/clip.exe or the Termux:API tools is installed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default is the platform config dir/sysclip/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.backend, "backend", "", "clipboard backend (auto, unix, darwin, windows, empty, atotto)")
	rootCmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&a.quiet, "quiet", false, "only log warnings and errors")
	rootCmd.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "give up on a clipboard operation after this long (0 waits forever)")

	rootCmd.AddCommand(
		newGetCmd(a),
		newSetCmd(a),
		newProbeCmd(a),
		newDemoCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if a.backend != "" {
		cfg.Backend = clipboard.Backend(a.backend)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, err := common.NewLogger(cfg, common.LoggerOptions{Verbose: a.verbose, Quiet: a.quiet})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger

	a.logger.Debug("Configuration loaded",
		zap.String("config_file", cfg.SystemPaths.ConfigFile),
		zap.String("backend", string(cfg.Backend)),
		zap.Bool("file_logging", cfg.Log.EnableFileLogging))
	return nil
}

func (a *app) openClipboard() (clipboard.Clipboard, error) {
	opts := a.cfg.ClipboardOptions()
	opts.Logger = a.logger

	c, err := a.newClipboard(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create clipboard: %w", err)
	}
	return c, nil
}

// withTimeout bounds ctx by --timeout when one was given
func (a *app) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout > 0 {
		return context.WithTimeout(ctx, a.timeout)
	}
	return context.WithCancel(ctx)
}

// Execute runs the CLI and exits the process on failure.
// This is called by main.main().
func Execute() {
	err := NewRootCmd().ExecuteContext(context.Background())
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// SetVersionInfo sets the version information used by the version command
func SetVersionInfo(version, buildTime, commit string) {
	Version = version
	BuildTime = buildTime
	Commit = commit
}

func exitCode(err error) int {
	if errors.Is(err, clipboard.ErrMissingCommand) {
		return ExitMissingCommand
	}
	return ExitError
}

func printError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(w, "%s %v\n", red("Error:"), err)

	if errors.Is(err, clipboard.ErrMissingCommand) {
		hint := color.New(color.FgYellow).SprintFunc()
		fmt.Fprintln(w, hint("Hint: run 'sysclip probe' to see which utilities were looked for."))
	}
}
