package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/gen/exec"
	"github.com/jmgilman/go/gen/fs"
	"github.com/jmgilman/go/gen/fs/billy"
	"github.com/jmgilman/go/gen/internal/cli"
)

// stubExecutor returns a canned result for every run and records the
// arguments and directory it was given.
type stubExecutor struct {
	result *exec.Result
	err    error
	args   []string
	dir    string
}

func (s *stubExecutor) WithEnv(map[string]string) exec.Executor   { return s }
func (s *stubExecutor) WithContext(context.Context) exec.Executor { return s }
func (s *stubExecutor) WithDisableColors() exec.Executor          { return s }
func (s *stubExecutor) WithInheritEnv() exec.Executor             { return s }
func (s *stubExecutor) Clone() exec.Executor                      { return s }

func (s *stubExecutor) WithDir(dir string) exec.Executor {
	s.dir = dir
	return s
}

func (s *stubExecutor) Run(args ...string) (*exec.Result, error) {
	s.args = args
	return s.result, s.err
}

type harness struct {
	fs     *fs.FS
	stdin  string
	stdout bytes.Buffer
	stderr bytes.Buffer
	opts   []cli.Option
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	for _, key := range []string{"GEN_LOG_LEVEL", "GEN_OUTPUT", "GEN_CARGO", "GEN_WORKSPACE", "CARGO"} {
		t.Setenv(key, "")
	}

	return &harness{fs: fs.New(billy.NewMemory())}
}

func (h *harness) run(args ...string) int {
	h.stdout.Reset()
	h.stderr.Reset()
	opts := append([]cli.Option{cli.WithFS(h.fs)}, h.opts...)
	return cli.Run(context.Background(), args, strings.NewReader(h.stdin), &h.stdout, &h.stderr, opts...)
}

func TestFSCommands(t *testing.T) {
	h := newHarness(t)

	h.stdin = "generated header\n"
	assert.Equal(t, 1, h.run("fs", "write", "/out/a.h"))
	assert.Contains(t, h.stderr.String(), "Failed to write file")

	require.Equal(t, 0, h.run("fs", "mkdir", "/out"), h.stderr.String())
	require.Equal(t, 0, h.run("fs", "write", "/out/a.h"), h.stderr.String())

	require.Equal(t, 0, h.run("fs", "cat", "/out/a.h"), h.stderr.String())
	assert.Equal(t, "generated header\n", h.stdout.String())

	require.Equal(t, 0, h.run("fs", "copy", "/out/a.h", "/out/b.h"), h.stderr.String())
	assert.Equal(t, "17\n", h.stdout.String())

	require.Equal(t, 0, h.run("fs", "mkdir", "/include/real"), h.stderr.String())
	require.Equal(t, 0, h.run("fs", "symlink", "--dir", "/include/real", "/include/alias"), h.stderr.String())
	require.Equal(t, 0, h.run("fs", "symlink", "/out/a.h", "/out/link.h"), h.stderr.String())

	require.Equal(t, 0, h.run("fs", "canonicalize", "/out/link.h"), h.stderr.String())
	assert.Equal(t, "/out/a.h\n", h.stdout.String())

	require.Equal(t, 0, h.run("fs", "rm", "/out/b.h"), h.stderr.String())
	assert.Equal(t, 1, h.run("fs", "cat", "/out/b.h"))

	require.Equal(t, 0, h.run("fs", "pwd"), h.stderr.String())
	assert.Equal(t, "/\n", h.stdout.String())
}

func TestFSCommand_TextError(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, 1, h.run("fs", "cat", "/missing.h"))
	assert.Equal(t, "Error: Failed to read file `/missing.h`\nCaused by: file does not exist\n", h.stderr.String())
}

func TestFSCommand_JSONError(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, 1, h.run("--output", "json", "fs", "rm", "/missing.h"))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(h.stderr.Bytes(), &resp))
	assert.Equal(t, "NOT_FOUND", resp["code"])
	assert.Equal(t, "Failed to remove file `/missing.h`", resp["message"])
	assert.Equal(t, map[string]any{"op": "remove", "path": "/missing.h"}, resp["context"])
}

func TestTargetDir(t *testing.T) {
	h := newHarness(t)
	stub := &stubExecutor{result: &exec.Result{Stdout: `{"target_directory":"/ws/target"}`}}
	h.opts = []cli.Option{cli.WithExecutor(stub)}

	require.Equal(t, 0, h.run("--cargo", "/opt/cargo", "--workspace", "/ws", "target-dir", "cxxbridge"), h.stderr.String())
	assert.Equal(t, "/ws/target/cxxbridge\n", h.stdout.String())
	assert.Equal(t, []string{"/opt/cargo", "metadata", "--no-deps", "--format-version=1"}, stub.args)
	assert.Equal(t, "/ws", stub.dir)

	require.Equal(t, 0, h.run("--output", "json", "target-dir"), h.stderr.String())
	assert.JSONEq(t, `{"target_dir":"/ws/target"}`, h.stdout.String())
}

func TestTargetDir_CargoFromEnv(t *testing.T) {
	h := newHarness(t)
	t.Setenv("CARGO", "/env/cargo")
	stub := &stubExecutor{result: &exec.Result{Stdout: `{"target_directory":"/t"}`}}
	h.opts = []cli.Option{cli.WithExecutor(stub)}

	require.Equal(t, 0, h.run("target-dir"), h.stderr.String())
	assert.Equal(t, "/env/cargo", stub.args[0])
}

func TestTargetDir_NotFound(t *testing.T) {
	h := newHarness(t)
	h.opts = []cli.Option{cli.WithExecutor(&stubExecutor{result: &exec.Result{Stdout: "{}"}})}

	assert.Equal(t, 1, h.run("target-dir"))
	assert.Equal(t, "Error: target_directory not found in cargo metadata output\n", h.stderr.String())
}

func TestInvalidConfig(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, 1, h.run("--log-level", "loud", "fs", "pwd"))
	assert.Contains(t, h.stderr.String(), "INVALID_CONFIGURATION")
}

func TestInvalidConfig_JSONOutput(t *testing.T) {
	h := newHarness(t)
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	assert.Equal(t, 1, h.run("--output", "json", "--config", missing, "fs", "pwd"))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(h.stderr.Bytes(), &resp), h.stderr.String())
	assert.Equal(t, "NOT_FOUND", resp["code"])
	assert.Equal(t, map[string]any{"file": missing}, resp["context"])
}

func TestConfigShow(t *testing.T) {
	h := newHarness(t)
	t.Setenv("GEN_OUTPUT", "json")

	require.Equal(t, 0, h.run("--cargo", "/bin/cargo", "config", "show"), h.stderr.String())
	assert.Contains(t, h.stdout.String(), "output: json\n")
	assert.Contains(t, h.stdout.String(), "cargo: /bin/cargo\n")
}

func TestVersion(t *testing.T) {
	h := newHarness(t)
	h.opts = []cli.Option{cli.WithBuildInfo(cli.BuildInfo{Version: "1.2.3", Commit: "abc", Date: "today"})}

	require.Equal(t, 0, h.run("version"))
	assert.Equal(t, "gen version 1.2.3 (commit: abc, built: today)\n", h.stdout.String())

	require.Equal(t, 0, h.run("--output", "json", "version"))
	assert.JSONEq(t, `{"version":"1.2.3","commit":"abc","date":"today"}`, h.stdout.String())
}
