// Package fstest provides a conformance test suite for core.FS providers.
//
// Provider packages run the suite from their own tests:
//
//	func TestMemoryFS_Conformance(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T) (core.FS, string) {
//	        return billy.NewMemory(), "/scratch"
//	    })
//	}
//
// The factory returns a fresh filesystem and a scratch directory on it. Every
// name the suite touches lives below that directory, so providers backed by
// the real disk can hand out t.TempDir().
package fstest

import (
	"path"
	"slices"
	"testing"

	"github.com/jmgilman/go/gen/fs/core"
)

// NewFS returns a fresh filesystem and a scratch directory on it.
type NewFS func(t *testing.T) (core.FS, string)

// FSTestConfig configures the suite for provider specific behavior.
type FSTestConfig struct {
	// SkipTests lists test names to skip, e.g. "SymlinkFS/Directory".
	SkipTests []string
}

func (c FSTestConfig) skip(t *testing.T, name string) {
	t.Helper()
	if slices.Contains(c.SkipTests, name) {
		t.Skip("Skipped by provider configuration")
	}
}

// TestSuite runs all applicable conformance tests.
func TestSuite(t *testing.T, newFS NewFS) {
	TestSuiteWithConfig(t, newFS, FSTestConfig{})
}

// TestSuiteWithConfig runs all applicable conformance tests with behavior
// configuration.
func TestSuiteWithConfig(t *testing.T, newFS NewFS, config FSTestConfig) {
	groups := []struct {
		name string
		run  func(t *testing.T, fsys core.FS, dir string, config FSTestConfig)
	}{
		{"ReadFS", testReadFS},
		{"WriteFS", testWriteFS},
		{"ManageFS", testManageFS},
		{"CopyFile", testCopyFile},
		{"SymlinkFS", testSymlinkFS},
		{"PathFS", testPathFS},
	}

	for _, group := range groups {
		t.Run(group.name, func(t *testing.T) {
			config.skip(t, group.name)
			fsys, dir := newFS(t)
			if err := fsys.MkdirAll(dir, 0755); err != nil {
				t.Fatalf("MkdirAll(%s): setup failed: %v", dir, err)
			}
			group.run(t, fsys, dir, config)
		})
	}
}

// subtest runs fn as a named subtest honoring config.SkipTests.
func subtest(t *testing.T, config FSTestConfig, group, name string, fn func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		config.skip(t, group+"/"+name)
		fn(t)
	})
}

func join(dir string, elem ...string) string {
	return path.Join(append([]string{dir}, elem...)...)
}
