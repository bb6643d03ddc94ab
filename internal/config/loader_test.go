package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/gen/errors"
	"github.com/jmgilman/go/gen/internal/config"
)

// isolate clears every environment variable the loader reads.
func isolate(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GEN_LOG_LEVEL", "GEN_OUTPUT", "GEN_CARGO", "GEN_WORKSPACE", "CARGO"} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func newFlags(t *testing.T, set map[string]string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	for _, name := range []string{"log-level", "output", "cargo", "workspace"} {
		flags.String(name, "", "")
	}
	for name, value := range set {
		require.NoError(t, flags.Set(name, value))
	}
	return flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	result, err := config.LoadConfig(config.LoadOptions{ConfigFiles: []string{}})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), result.Config)
	assert.Empty(t, result.ConfigFileUsed)
}

func TestLoadConfig_Precedence(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "log-level: info\noutput: json\ncargo: /file/cargo\nworkspace: /file/ws\n")

	t.Run("file over default", func(t *testing.T) {
		result, err := config.LoadConfig(config.LoadOptions{ConfigFile: path})
		require.NoError(t, err)
		assert.Equal(t, "info", result.Config.LogLevel)
		assert.Equal(t, "json", result.Config.Output)
		assert.Equal(t, "/file/cargo", result.Config.Cargo)
		assert.Equal(t, path, result.ConfigFileUsed)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("GEN_LOG_LEVEL", "debug")
		t.Setenv("GEN_CARGO", "/env/cargo")

		result, err := config.LoadConfig(config.LoadOptions{ConfigFile: path})
		require.NoError(t, err)
		assert.Equal(t, "debug", result.Config.LogLevel)
		assert.Equal(t, "/env/cargo", result.Config.Cargo)
		assert.Equal(t, "/file/ws", result.Config.Workspace)
	})

	t.Run("flag over env", func(t *testing.T) {
		t.Setenv("GEN_LOG_LEVEL", "debug")

		result, err := config.LoadConfig(config.LoadOptions{
			ConfigFile: path,
			Flags:      newFlags(t, map[string]string{"log-level": "error"}),
		})
		require.NoError(t, err)
		assert.Equal(t, "error", result.Config.LogLevel)
		assert.Equal(t, "json", result.Config.Output)
	})

	t.Run("unset flag keeps lower sources", func(t *testing.T) {
		result, err := config.LoadConfig(config.LoadOptions{
			ConfigFile: path,
			Flags:      newFlags(t, nil),
		})
		require.NoError(t, err)
		assert.Equal(t, "info", result.Config.LogLevel)
	})
}

func TestLoadConfig_CargoEnv(t *testing.T) {
	isolate(t)
	t.Setenv("CARGO", "/home/me/.cargo/bin/cargo")

	result, err := config.LoadConfig(config.LoadOptions{ConfigFiles: []string{}})
	require.NoError(t, err)
	assert.Equal(t, "/home/me/.cargo/bin/cargo", result.Config.Cargo)

	t.Setenv("GEN_CARGO", "/preferred/cargo")
	result, err = config.LoadConfig(config.LoadOptions{ConfigFiles: []string{}})
	require.NoError(t, err)
	assert.Equal(t, "/preferred/cargo", result.Config.Cargo)
}

func TestLoadConfig_CandidateFiles(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := writeConfig(t, "output: json\n")

	result, err := config.LoadConfig(config.LoadOptions{
		ConfigFiles: []string{filepath.Join(dir, "missing.yaml"), dir, path},
	})
	require.NoError(t, err)
	assert.Equal(t, path, result.ConfigFileUsed)
	assert.Equal(t, "json", result.Config.Output)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := config.LoadConfig(config.LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestLoadConfig_Invalid(t *testing.T) {
	isolate(t)

	tests := map[string]string{
		"log level": "log-level: loud\n",
		"output":    "output: xml\n",
		"syntax":    "log-level: [unterminated\n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadConfig(config.LoadOptions{ConfigFile: writeConfig(t, body)})
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
		})
	}
}

func TestConfig_YAML(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Cargo = "/bin/cargo"

	out, err := cfg.YAML()
	require.NoError(t, err)
	assert.Contains(t, out, "log-level: warn\n")
	assert.Contains(t, out, "output: text\n")
	assert.Contains(t, out, "cargo: /bin/cargo\n")
}
