// Package exec provides a testable interface for executing local commands.
//
// This package wraps the standard library's os/exec. Production code uses the
// concrete *Command type; code that runs commands accepts the Executor
// interface so tests can substitute a double.
//
// # Basic Usage
//
//	cmd := exec.New()
//	result, err := cmd.Run("cargo", "--version")
//	if err != nil {
//		return err
//	}
//	fmt.Print(result.Stdout)
//
// # Configuration
//
// Global configuration is set at creation time and local configuration per
// run. Local settings override global ones and are cleared after each Run:
//
//	cmd := exec.New(exec.WithInheritEnv(), exec.WithDisableColors())
//	result, err := cmd.WithDir(workspace).WithContext(ctx).Run("cargo", "metadata")
//
// # Command Wrappers
//
// A wrapper prepends the command name to every Run:
//
//	cargo := exec.NewWrapper(exec.New(), "cargo")
//	result, err := cargo.Run("metadata", "--no-deps", "--format-version=1")
//
// # Error Handling
//
// Failures return *ExecError with the exit code and captured output. The
// Result is returned as well whenever the process ran, so callers that only
// care about stdout can keep it:
//
//	result, err := cmd.Run("cargo", "metadata")
//	var execErr *exec.ExecError
//	if errors.As(err, &execErr) && !execErr.Exited() {
//		// the executable could not be started at all
//	}
package exec
