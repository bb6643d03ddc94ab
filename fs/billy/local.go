package billy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/jmgilman/go/gen/fs/core"
)

// LocalFS is the local disk, accessed through billy's osfs.
//
// Names are resolved against the process working directory, so both
// absolute and relative paths behave as they do with package os.
type LocalFS struct {
	base
	root string
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	root string
}

// WithRoot sets the directory the local billy filesystem is rooted at.
// Names outside of it cannot be reached. Defaults to the root of the volume
// holding the working directory ("/" on Unix).
func WithRoot(root string) Option {
	return func(c *config) {
		c.root = root
	}
}

// NewLocal creates a go-billy-backed local filesystem.
func NewLocal(opts ...Option) *LocalFS {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.root == "" {
		cfg.root = volumeRoot()
	}

	lfs := &LocalFS{root: filepath.Clean(cfg.root)}
	lfs.base = base{bfs: osfs.New(lfs.root), resolve: lfs.rel}
	return lfs
}

func volumeRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		return string(filepath.Separator)
	}
	return filepath.VolumeName(wd) + string(filepath.Separator)
}

// rel converts name to a path relative to the billy root.
func (lfs *LocalFS) rel(name string) (string, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(lfs.root, abs)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path is outside of %s", lfs.root)
	}
	return filepath.ToSlash(rel), nil
}

// Canonicalize returns the absolute path of name with all symbolic links
// resolved.
func (lfs *LocalFS) Canonicalize(name string) (string, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// Getwd returns the process working directory.
func (lfs *LocalFS) Getwd() (string, error) {
	return os.Getwd()
}

// Root returns the directory the filesystem is rooted at.
func (lfs *LocalFS) Root() string {
	return lfs.root
}

// Type returns FSTypeLocal.
func (lfs *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// Compile-time interface checks.
var (
	_ core.FS        = (*LocalFS)(nil)
	_ core.SymlinkFS = (*LocalFS)(nil)
	_ core.PathFS    = (*LocalFS)(nil)
)
