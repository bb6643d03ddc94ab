package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/gen/fs/core"
)

// testSymlinkFS tests SymlinkFile, SymlinkDir and Readlink.
// It skips if the filesystem doesn't implement core.SymlinkFS.
func testSymlinkFS(t *testing.T, filesystem core.FS, dir string, config FSTestConfig) {
	sfs, ok := filesystem.(core.SymlinkFS)
	if !ok {
		t.Skip("SymlinkFS not supported")
		return
	}

	subtest(t, config, "SymlinkFS", "File", func(t *testing.T) {
		target, link := join(dir, "target.txt"), join(dir, "link.txt")
		content := []byte("target file content")
		if err := filesystem.WriteFile(target, content, 0644); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", target, err)
		}

		if err := sfs.SymlinkFile(target, link); err != nil {
			t.Fatalf("SymlinkFile(%s, %s): got error %v, want nil", target, link, err)
		}

		got, err := sfs.Readlink(link)
		if err != nil {
			t.Fatalf("Readlink(%s): got error %v, want nil", link, err)
		}
		if got != target {
			t.Errorf("Readlink(%s): got %q, want %q", link, got, target)
		}

		info, err := sfs.Lstat(link)
		if err != nil {
			t.Fatalf("Lstat(%s): got error %v, want nil", link, err)
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			t.Errorf("Lstat(%s): mode %v is not a symlink", link, info.Mode())
		}

		data, err := filesystem.ReadFile(link)
		if err != nil {
			t.Fatalf("ReadFile(%s) through symlink: got error %v, want nil", link, err)
		}
		if !bytes.Equal(data, content) {
			t.Errorf("ReadFile(%s) through symlink: got %q, want %q", link, data, content)
		}
	})

	subtest(t, config, "SymlinkFS", "Directory", func(t *testing.T) {
		target, link := join(dir, "target-dir"), join(dir, "link-dir")
		if err := filesystem.MkdirAll(target, 0755); err != nil {
			t.Fatalf("MkdirAll(%s): setup failed: %v", target, err)
		}

		if err := sfs.SymlinkDir(target, link); err != nil {
			t.Fatalf("SymlinkDir(%s, %s): got error %v, want nil", target, link, err)
		}

		info, err := filesystem.Stat(link)
		if err != nil {
			t.Fatalf("Stat(%s): got error %v, want nil", link, err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%s).IsDir(): got false, want true", link)
		}
	})

	subtest(t, config, "SymlinkFS", "Exists", func(t *testing.T) {
		link := join(dir, "occupied")
		if err := filesystem.WriteFile(link, []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", link, err)
		}
		if err := sfs.SymlinkFile(join(dir, "anything"), link); !errors.Is(err, fs.ErrExist) {
			t.Errorf("SymlinkFile(_, %s) over existing file: got error %v, want fs.ErrExist", link, err)
		}
	})

	subtest(t, config, "SymlinkFS", "MissingParent", func(t *testing.T) {
		target := join(dir, "parent-target.txt")
		if err := filesystem.WriteFile(target, []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", target, err)
		}

		parent := join(dir, "no-link-dir")
		for _, tc := range []struct {
			name string
			link func(src, dst string) error
		}{
			{"SymlinkFile", sfs.SymlinkFile},
			{"SymlinkDir", sfs.SymlinkDir},
		} {
			link := join(parent, tc.name)
			if err := tc.link(target, link); !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("%s(%s, %s) into missing directory: got error %v, want fs.ErrNotExist", tc.name, target, link, err)
			}
		}
		if _, err := filesystem.Stat(parent); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(%s): got error %v, want fs.ErrNotExist; parents must not be created", parent, err)
		}
	})

	subtest(t, config, "SymlinkFS", "Broken", func(t *testing.T) {
		target, link := join(dir, "nonexistent-target.txt"), join(dir, "broken-link.txt")
		if err := sfs.SymlinkFile(target, link); err != nil {
			t.Fatalf("SymlinkFile(%s, %s): got error %v, want nil", target, link, err)
		}

		got, err := sfs.Readlink(link)
		if err != nil {
			t.Fatalf("Readlink(%s): got error %v, want nil", link, err)
		}
		if got != target {
			t.Errorf("Readlink(%s): got %q, want %q", link, got, target)
		}

		if _, err := filesystem.ReadFile(link); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ReadFile(%s) through broken symlink: got error %v, want fs.ErrNotExist", link, err)
		}
	})
}
