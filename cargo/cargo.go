package cargo

import (
	"context"
	"log/slog"

	"github.com/jmgilman/go/gen/errors"
	"github.com/jmgilman/go/gen/exec"
)

// Executable is the cargo executable used when no override is given.
// Set it at link time with -ldflags "-X github.com/jmgilman/go/gen/cargo.Executable=...".
var Executable = "cargo"

const defaultExecutable = "cargo"

// Locator runs cargo metadata and extracts the target directory.
// A Locator keeps no state between calls and may be shared.
type Locator struct {
	executor   exec.Executor
	executable string
	dir        string
	logger     *slog.Logger
}

// Option configures a Locator.
type Option func(*Locator)

// WithExecutor sets the executor commands run through. Defaults to exec.New.
func WithExecutor(executor exec.Executor) Option {
	return func(l *Locator) {
		l.executor = executor
	}
}

// WithExecutable overrides the cargo executable. Empty names are ignored.
func WithExecutable(name string) Option {
	return func(l *Locator) {
		if name != "" {
			l.executable = name
		}
	}
}

// WithDir sets the directory cargo runs in, which selects the workspace.
// Defaults to the working directory.
func WithDir(dir string) Option {
	return func(l *Locator) {
		l.dir = dir
	}
}

// WithLogger sets the logger for debug output. Locators log nothing by
// default.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Locator) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLocator creates a Locator.
func NewLocator(opts ...Option) *Locator {
	l := &Locator{
		executable: Executable,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.executable == "" {
		l.executable = defaultExecutable
	}
	if l.executor == nil {
		l.executor = exec.New(exec.WithLogger(l.logger))
	}
	return l
}

// Executable returns the cargo executable the Locator runs.
func (l *Locator) Executable() string {
	return l.executable
}

// TargetDir runs cargo metadata once and returns the target directory it
// reports.
//
// The exit status and stderr of cargo are ignored: only stdout decides the
// result. A command that cannot be started, or a canceled ctx, yields a
// KindIO error. Output without a target_directory value yields KindNotFound.
// No timeout is applied beyond ctx.
func (l *Locator) TargetDir(ctx context.Context) (TargetDir, error) {
	cmd := exec.NewWrapper(l.executor.Clone(), l.executable).
		WithInheritEnv().
		WithDisableColors().
		WithContext(ctx)
	if l.dir != "" {
		cmd = cmd.WithDir(l.dir)
	}

	result, err := cmd.Run(metadataArgs...)
	var stdout string
	if result != nil {
		stdout = result.Stdout
	}

	if err != nil {
		var execErr *exec.ExecError
		if !errors.As(err, &execErr) || !execErr.Exited() {
			return "", &TargetDirError{Kind: KindIO, Err: err}
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", &TargetDirError{Kind: KindIO, Err: ctxErr}
		}
		if result == nil {
			stdout = execErr.Stdout
		}
		l.logger.DebugContext(ctx, "cargo metadata exited with an error",
			"command", l.executable, "exit_code", execErr.ExitCode)
	}

	dir, ok := parseTargetDir(stdout)
	if !ok {
		return "", &TargetDirError{Kind: KindNotFound}
	}

	l.logger.DebugContext(ctx, "located cargo target directory", "target_dir", string(dir))
	return dir, nil
}

// FindTargetDir locates the target directory with a default Locator.
func FindTargetDir(ctx context.Context) (TargetDir, error) {
	return NewLocator().TargetDir(ctx)
}
