package exec

import (
	"context"
	"maps"
)

// config holds the configuration for command execution.
// Global settings are set at creation time; local settings apply to the next
// Run only and override the global ones.
type config struct {
	globalEnv           map[string]string
	globalDir           string
	globalInheritEnv    bool
	globalDisableColors bool
	globalCtx           context.Context

	localEnv           map[string]string
	localDir           string
	localInheritEnv    *bool
	localDisableColors *bool
	localCtx           context.Context
}

func newConfig() *config {
	return &config{
		globalEnv: make(map[string]string),
		localEnv:  make(map[string]string),
	}
}

// clone copies the global settings. Local settings belong to a single run
// and are not carried over.
func (c *config) clone() *config {
	clone := newConfig()
	maps.Copy(clone.globalEnv, c.globalEnv)
	clone.globalDir = c.globalDir
	clone.globalInheritEnv = c.globalInheritEnv
	clone.globalDisableColors = c.globalDisableColors
	clone.globalCtx = c.globalCtx
	return clone
}

// colorEnv disables colored output for common tools, cargo included.
var colorEnv = map[string]string{
	"NO_COLOR":         "1",
	"TERM":             "dumb",
	"CLICOLOR":         "0",
	"CLICOLOR_FORCE":   "0",
	"FORCE_COLOR":      "0",
	"CARGO_TERM_COLOR": "never",
}

// effectiveEnv merges global and local environment variables.
func (c *config) effectiveEnv() map[string]string {
	env := make(map[string]string, len(c.globalEnv)+len(c.localEnv))
	maps.Copy(env, c.globalEnv)
	maps.Copy(env, c.localEnv)
	if c.effectiveDisableColors() {
		maps.Copy(env, colorEnv)
	}
	return env
}

func (c *config) effectiveDir() string {
	if c.localDir != "" {
		return c.localDir
	}
	return c.globalDir
}

func (c *config) effectiveInheritEnv() bool {
	if c.localInheritEnv != nil {
		return *c.localInheritEnv
	}
	return c.globalInheritEnv
}

func (c *config) effectiveDisableColors() bool {
	if c.localDisableColors != nil {
		return *c.localDisableColors
	}
	return c.globalDisableColors
}

func (c *config) effectiveContext() context.Context {
	if c.localCtx != nil {
		return c.localCtx
	}
	if c.globalCtx != nil {
		return c.globalCtx
	}
	return context.Background()
}

// resetLocal clears local settings after each Run.
func (c *config) resetLocal() {
	c.localEnv = make(map[string]string)
	c.localDir = ""
	c.localInheritEnv = nil
	c.localDisableColors = nil
	c.localCtx = nil
}
