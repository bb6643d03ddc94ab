package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/gen/fs/core"
)

func testManageFS(t *testing.T, fsys core.FS, dir string, config FSTestConfig) {
	subtest(t, config, "ManageFS", "RemoveFile", func(t *testing.T) {
		name := join(dir, "remove.txt")
		if err := fsys.WriteFile(name, []byte("bye"), 0644); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
		}
		if err := fsys.RemoveFile(name); err != nil {
			t.Fatalf("RemoveFile(%s): got error %v, want nil", name, err)
		}
		if _, err := fsys.Stat(name); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(%s) after RemoveFile: got error %v, want fs.ErrNotExist", name, err)
		}
	})

	subtest(t, config, "ManageFS", "RemoveFileNotExist", func(t *testing.T) {
		err := fsys.RemoveFile(join(dir, "never-existed"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("RemoveFile(never-existed): got error %v, want fs.ErrNotExist", err)
		}
	})

	subtest(t, config, "ManageFS", "RemoveFileRefusesDirectory", func(t *testing.T) {
		name := join(dir, "keep-dir")
		if err := fsys.MkdirAll(name, 0755); err != nil {
			t.Fatalf("MkdirAll(%s): setup failed: %v", name, err)
		}
		if err := fsys.RemoveFile(name); !errors.Is(err, core.ErrIsDir) {
			t.Errorf("RemoveFile(%s) on directory: got error %v, want core.ErrIsDir", name, err)
		}
		if _, err := fsys.Stat(name); err != nil {
			t.Errorf("Stat(%s): directory should survive RemoveFile, got %v", name, err)
		}
	})
}
