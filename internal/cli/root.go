// Package cli provides the gen command tree.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/gen/errors"
	"github.com/jmgilman/go/gen/exec"
	"github.com/jmgilman/go/gen/fs"
	"github.com/jmgilman/go/gen/internal/config"
)

// BuildInfo is set by the binary from ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// app carries state shared by every command of one invocation.
type app struct {
	build      BuildInfo
	configFile string
	cfg        config.Config
	logger     *slog.Logger
	fs         *fs.FS
	executor   exec.Executor
}

// Option configures the command tree.
type Option func(*app)

// WithFS replaces the filesystem the fs commands operate on.
func WithFS(f *fs.FS) Option {
	return func(a *app) {
		a.fs = f
	}
}

// WithExecutor replaces the executor cargo is run through.
func WithExecutor(e exec.Executor) Option {
	return func(a *app) {
		a.executor = e
	}
}

// WithBuildInfo sets the version information printed by `gen version`.
func WithBuildInfo(info BuildInfo) Option {
	return func(a *app) {
		a.build = info
	}
}

// NewRootCmd creates the root cobra command.
func NewRootCmd(opts ...Option) *cobra.Command {
	cmd, _ := newRootCmd(opts...)
	return cmd
}

func newRootCmd(opts ...Option) (*cobra.Command, *app) {
	a := &app{
		build:  BuildInfo{Version: "dev", Commit: "unknown", Date: "unknown"},
		cfg:    config.DefaultConfig(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}

	rootCmd := &cobra.Command{
		Use:   "gen",
		Short: "Annotated filesystem access and cargo target directory lookup",
		Long: `gen exposes the helpers a code generator uses from a build script:

  - filesystem operations whose errors name the operation and every path
  - the cargo target directory, read from cargo metadata`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "",
		"config file (default: ./gen.yaml, ~/.config/gen/config.yaml)")
	flags.String("log-level", "", "log level: debug, info, warn, error (default: warn)")
	flags.String("output", "", "output format: text, json (default: text)")
	flags.String("cargo", "", "cargo executable (default: $CARGO or cargo)")
	flags.String("workspace", "", "directory cargo metadata runs in (default: working directory)")

	rootCmd.AddCommand(a.newTargetDirCmd())
	rootCmd.AddCommand(a.newFSCmd())
	rootCmd.AddCommand(a.newConfigCmd())
	rootCmd.AddCommand(a.newVersionCmd())

	return rootCmd, a
}

func (a *app) initialize(cmd *cobra.Command) error {
	result, err := config.LoadConfig(config.LoadOptions{
		ConfigFile: a.configFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		// Errors are still reported in the format the caller asked for.
		if out, _ := cmd.Flags().GetString("output"); out == "json" || out == "text" {
			a.cfg.Output = out
		}
		return err
	}
	a.cfg = result.Config
	a.logger = newLogger(cmd.ErrOrStderr(), a.cfg)

	if a.fs == nil {
		a.fs = fs.Default()
	}
	if a.executor == nil {
		a.executor = exec.New(exec.WithLogger(a.logger))
	}

	a.logger.Debug("configuration loaded", "file", result.ConfigFileUsed, "output", a.cfg.Output)
	return nil
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Output == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// print writes a result as text or as a one-field JSON object.
func (a *app) print(cmd *cobra.Command, key string, value any) error {
	out := cmd.OutOrStdout()
	if a.cfg.Output == "json" {
		return json.NewEncoder(out).Encode(map[string]any{key: value})
	}
	_, err := fmt.Fprintln(out, value)
	return err
}

// printError renders err in the configured output format. The cause of an
// annotated filesystem error is printed on its own line since the message
// leaves it out.
func printError(w io.Writer, output string, err error) {
	if output == "json" {
		_ = json.NewEncoder(w).Encode(errors.ToJSON(err))
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)

	var fsErr *fs.Error
	if errors.As(err, &fsErr) && fsErr.Unwrap() != nil {
		fmt.Fprintf(w, "Caused by: %v\n", fsErr.Unwrap())
	}
}

// Run executes the command tree with args and returns the process exit code.
// Errors are written to the command's stderr.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, opts ...Option) int {
	cmd, a := newRootCmd(opts...)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		printError(stderr, a.cfg.Output, err)
		return 1
	}
	return 0
}

// Execute runs gen with the process arguments and standard streams.
func Execute(info BuildInfo) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, WithBuildInfo(info))
}
