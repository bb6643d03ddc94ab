package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/gen/fs/core"
)

func testCopyFile(t *testing.T, fsys core.FS, dir string, config FSTestConfig) {
	subtest(t, config, "CopyFile", "Copy", func(t *testing.T) {
		from, to := join(dir, "from.h"), join(dir, "to.h")
		content := bytes.Repeat([]byte("0123456789"), 1000)
		if err := fsys.WriteFile(from, content, 0600); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", from, err)
		}

		n, err := core.CopyFile(fsys, from, to)
		if err != nil {
			t.Fatalf("CopyFile(%s, %s): got error %v, want nil", from, to, err)
		}
		if n != int64(len(content)) {
			t.Errorf("CopyFile(%s, %s): got %d bytes, want %d", from, to, n, len(content))
		}

		data, err := fsys.ReadFile(to)
		if err != nil {
			t.Fatalf("ReadFile(%s): got error %v, want nil", to, err)
		}
		if !bytes.Equal(data, content) {
			t.Errorf("ReadFile(%s): destination differs from source", to)
		}
	})

	subtest(t, config, "CopyFile", "CopyMissingParent", func(t *testing.T) {
		from := join(dir, "copy-src.txt")
		if err := fsys.WriteFile(from, []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", from, err)
		}

		parent := join(dir, "copy-missing")
		to := join(parent, "dst.txt")
		if _, err := core.CopyFile(fsys, from, to); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("CopyFile(%s, %s) into missing directory: got error %v, want fs.ErrNotExist", from, to, err)
		}
		if _, err := fsys.Stat(parent); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(%s): got error %v, want fs.ErrNotExist; parents must not be created", parent, err)
		}
	})

	subtest(t, config, "CopyFile", "CopyMissingSource", func(t *testing.T) {
		_, err := core.CopyFile(fsys, join(dir, "nope"), join(dir, "dst"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("CopyFile(nope): got error %v, want fs.ErrNotExist", err)
		}
	})
}
