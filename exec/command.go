package exec

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	osexec "os/exec"
)

// Command is the concrete implementation of the Executor interface.
type Command struct {
	config *config
	logger *slog.Logger
}

// New creates a new Command with the given options.
// Options set global defaults that can be overridden by local settings.
func New(opts ...Option) *Command {
	cmd := &Command{
		config: newConfig(),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(cmd)
	}

	return cmd
}

// WithEnv sets environment variables for the next run.
func (c *Command) WithEnv(env map[string]string) Executor {
	for k, v := range env {
		c.config.localEnv[k] = v
	}
	return c
}

// WithDir sets the working directory for the next run.
func (c *Command) WithDir(dir string) Executor {
	c.config.localDir = dir
	return c
}

// WithContext sets the context for the next run.
func (c *Command) WithContext(ctx context.Context) Executor {
	if ctx != nil {
		c.config.localCtx = ctx
	}
	return c
}

// WithDisableColors disables color output for the next run.
func (c *Command) WithDisableColors() Executor {
	val := true
	c.config.localDisableColors = &val
	return c
}

// WithInheritEnv enables environment inheritance for the next run.
func (c *Command) WithInheritEnv() Executor {
	val := true
	c.config.localInheritEnv = &val
	return c
}

// Run executes the command with the given arguments and waits for it to
// exit. Stdout and stderr are captured separately.
//
// A command that starts but exits non-zero returns both its Result and an
// *ExecError for which Exited reports true.
func (c *Command) Run(args ...string) (*Result, error) {
	ctx := c.config.effectiveContext()
	defer c.config.resetLocal()

	if len(args) == 0 {
		return nil, &ExecError{
			Command:  args,
			ExitCode: -1,
			Err:      osexec.ErrNotFound,
		}
	}

	cmd := osexec.CommandContext(ctx, args[0], args[1:]...)

	if dir := c.config.effectiveDir(); dir != "" {
		cmd.Dir = dir
	}

	if c.config.effectiveInheritEnv() {
		cmd.Env = os.Environ()
	}
	for k, v := range c.config.effectiveEnv() {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger.DebugContext(ctx, "running command", "command", args[0], "args", args[1:], "dir", cmd.Dir)
	err := cmd.Run()

	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}

	if err != nil {
		c.logger.DebugContext(ctx, "command failed", "command", args[0], "exit_code", result.ExitCode, "error", err)
		return result, &ExecError{
			Command:  args,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			Err:      err,
		}
	}

	c.logger.DebugContext(ctx, "command finished", "command", args[0], "exit_code", result.ExitCode)
	return result, nil
}

// Clone creates a copy of the command with the same global configuration.
func (c *Command) Clone() Executor {
	return &Command{
		config: c.config.clone(),
		logger: c.logger,
	}
}

// Compile-time interface check.
var _ Executor = (*Command)(nil)
