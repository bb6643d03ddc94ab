package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jmgilman/go/gen/errors"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "GEN"

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// ConfigFile is an explicit config file. It must exist.
	ConfigFile string

	// ConfigFiles are candidates tried in order when ConfigFile is empty.
	// Defaults to ./gen.yaml then ~/.config/gen/config.yaml.
	ConfigFiles []string

	// Flags are bound on top of every other source.
	Flags *pflag.FlagSet
}

// LoadResult contains the merged configuration.
type LoadResult struct {
	Config         Config
	ConfigFileUsed string
}

// LoadConfig loads configuration from defaults, file, env, and flags, in
// increasing order of precedence.
func LoadConfig(opts LoadOptions) (LoadResult, error) {
	v := viper.New()
	setDefaults(v)
	if err := configureEnv(v); err != nil {
		return LoadResult{}, err
	}

	if opts.Flags != nil {
		if err := BindFlags(v, opts.Flags); err != nil {
			return LoadResult{}, err
		}
	}

	configPath, err := resolveConfigFile(opts)
	if err != nil {
		return LoadResult{}, err
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return LoadResult{}, errors.WithContext(
				errors.Wrap(err, errors.CodeInvalidConfig, "read config"), "file", configPath)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return LoadResult{}, errors.Wrap(err, errors.CodeInvalidConfig, "unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return LoadResult{Config: cfg, ConfigFileUsed: v.ConfigFileUsed()}, err
	}
	return LoadResult{Config: cfg, ConfigFileUsed: v.ConfigFileUsed()}, nil
}

// BindFlags binds supported CLI flags to viper keys.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{"log-level", "output", "cargo", "workspace"} {
		flag := flags.Lookup(key)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return errors.Wrapf(err, errors.CodeInternal, "bind flag %q", key)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("log-level", defaults.LogLevel)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("cargo", defaults.Cargo)
	v.SetDefault("workspace", defaults.Workspace)
}

// configureEnv maps keys onto GEN_* variables. The cargo key also honors
// CARGO, which cargo sets for build scripts and subcommands.
func configureEnv(v *viper.Viper) error {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.BindEnv("cargo", EnvPrefix+"_CARGO", "CARGO"); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "bind env")
	}
	return nil
}

func resolveConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", errors.WithContext(
					errors.New(errors.CodeNotFound, "config file not found"), "file", opts.ConfigFile)
			}
			return "", errors.Wrap(err, errors.CodeIO, "config file error")
		}
		return opts.ConfigFile, nil
	}

	candidates := opts.ConfigFiles
	if candidates == nil {
		candidates = defaultConfigFiles()
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		info, err := os.Stat(candidate)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return "", errors.Wrap(err, errors.CodeIO, "config file error")
		}
		if info.IsDir() {
			continue
		}
		return candidate, nil
	}

	return "", nil
}

func defaultConfigFiles() []string {
	files := []string{"./gen.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, ".config", "gen", "config.yaml"))
	}
	return files
}
