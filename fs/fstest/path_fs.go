package fstest

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/gen/fs/core"
)

// testPathFS tests Canonicalize and Getwd.
// It skips if the filesystem doesn't implement core.PathFS.
func testPathFS(t *testing.T, filesystem core.FS, dir string, config FSTestConfig) {
	pfs, ok := filesystem.(core.PathFS)
	if !ok {
		t.Skip("PathFS not supported")
		return
	}

	canonical := func(t *testing.T, name string) string {
		t.Helper()
		got, err := pfs.Canonicalize(name)
		if err != nil {
			t.Fatalf("Canonicalize(%s): got error %v, want nil", name, err)
		}
		return got
	}

	subtest(t, config, "PathFS", "Canonicalize", func(t *testing.T) {
		name := join(dir, "sub", "file.txt")
		if err := filesystem.MkdirAll(join(dir, "sub"), 0755); err != nil {
			t.Fatalf("MkdirAll: setup failed: %v", err)
		}
		if err := filesystem.WriteFile(name, []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
		}

		got := canonical(t, name)
		if !filepath.IsAbs(got) {
			t.Errorf("Canonicalize(%s): got %q, want an absolute path", name, got)
		}
		if dotted := canonical(t, join(dir, "sub") + "/./../sub/file.txt"); dotted != got {
			t.Errorf("Canonicalize with dot elements: got %q, want %q", dotted, got)
		}
	})

	subtest(t, config, "PathFS", "CanonicalizeNotExist", func(t *testing.T) {
		if _, err := pfs.Canonicalize(join(dir, "missing")); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Canonicalize(missing): got error %v, want fs.ErrNotExist", err)
		}
	})

	subtest(t, config, "PathFS", "CanonicalizeSymlink", func(t *testing.T) {
		sfs, ok := filesystem.(core.SymlinkFS)
		if !ok {
			t.Skip("SymlinkFS not supported")
		}

		target, link := join(dir, "real.txt"), join(dir, "alias.txt")
		if err := filesystem.WriteFile(target, []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", target, err)
		}
		if err := sfs.SymlinkFile(target, link); err != nil {
			t.Fatalf("SymlinkFile(%s, %s): setup failed: %v", target, link, err)
		}

		if got, want := canonical(t, link), canonical(t, target); got != want {
			t.Errorf("Canonicalize(%s): got %q, want %q", link, got, want)
		}
	})

	subtest(t, config, "PathFS", "CanonicalizeRelativeSymlinkDir", func(t *testing.T) {
		sfs, ok := filesystem.(core.SymlinkFS)
		if !ok {
			t.Skip("SymlinkFS not supported")
		}

		if err := filesystem.MkdirAll(join(dir, "include", "real"), 0755); err != nil {
			t.Fatalf("MkdirAll: setup failed: %v", err)
		}
		if err := filesystem.WriteFile(join(dir, "include", "real", "a.h"), []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile: setup failed: %v", err)
		}
		if err := sfs.SymlinkDir("real", join(dir, "include", "alias")); err != nil {
			t.Fatalf("SymlinkDir(real, alias): setup failed: %v", err)
		}

		got := canonical(t, join(dir, "include", "alias", "a.h"))
		want := canonical(t, join(dir, "include", "real", "a.h"))
		if got != want {
			t.Errorf("Canonicalize through relative directory link: got %q, want %q", got, want)
		}
	})

	subtest(t, config, "PathFS", "Getwd", func(t *testing.T) {
		wd, err := pfs.Getwd()
		if err != nil {
			t.Fatalf("Getwd(): got error %v, want nil", err)
		}
		if !filepath.IsAbs(wd) && wd != "/" {
			t.Errorf("Getwd(): got %q, want an absolute path", wd)
		}
	})
}
