package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/jmgilman/go/gen/fs/core"
)

func testWriteFS(t *testing.T, fsys core.FS, dir string, config FSTestConfig) {
	subtest(t, config, "WriteFS", "WriteFileRoundTrip", func(t *testing.T) {
		name := join(dir, "roundtrip.bin")
		content := []byte{0x00, 0xff, 'g', 'e', 'n', '\n'}
		if err := fsys.WriteFile(name, content, 0644); err != nil {
			t.Fatalf("WriteFile(%s): got error %v, want nil", name, err)
		}

		data, err := fsys.ReadFile(name)
		if err != nil {
			t.Fatalf("ReadFile(%s): got error %v, want nil", name, err)
		}
		if !bytes.Equal(data, content) {
			t.Errorf("ReadFile(%s): got %v, want %v", name, data, content)
		}
	})

	subtest(t, config, "WriteFS", "WriteFileTruncates", func(t *testing.T) {
		name := join(dir, "truncate.txt")
		if err := fsys.WriteFile(name, []byte("a much longer first version"), 0644); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
		}
		if err := fsys.WriteFile(name, []byte("short"), 0644); err != nil {
			t.Fatalf("WriteFile(%s): got error %v, want nil", name, err)
		}

		data, err := fsys.ReadFile(name)
		if err != nil {
			t.Fatalf("ReadFile(%s): got error %v, want nil", name, err)
		}
		if string(data) != "short" {
			t.Errorf("ReadFile(%s): got %q, want %q", name, data, "short")
		}
	})

	subtest(t, config, "WriteFS", "WriteFileOnDirectory", func(t *testing.T) {
		name := join(dir, "is-a-dir")
		if err := fsys.MkdirAll(name, 0755); err != nil {
			t.Fatalf("MkdirAll(%s): setup failed: %v", name, err)
		}
		if err := fsys.WriteFile(name, []byte("x"), 0644); err == nil {
			t.Errorf("WriteFile(%s) on directory: got nil error, want error", name)
		}
	})

	subtest(t, config, "WriteFS", "WriteFileMissingParent", func(t *testing.T) {
		parent := join(dir, "missing")
		name := join(parent, "nested", "file.txt")
		if err := fsys.WriteFile(name, []byte("x"), 0644); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("WriteFile(%s) into missing directory: got error %v, want fs.ErrNotExist", name, err)
		}
		if _, err := fsys.Stat(parent); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(%s): got error %v, want fs.ErrNotExist; parents must not be created", parent, err)
		}
	})

	subtest(t, config, "WriteFS", "WriteFileParentIsFile", func(t *testing.T) {
		parent := join(dir, "plain-file")
		if err := fsys.WriteFile(parent, []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", parent, err)
		}
		name := join(parent, "child.txt")
		if err := fsys.WriteFile(name, []byte("x"), 0644); err == nil {
			t.Errorf("WriteFile(%s) below a file: got nil error, want error", name)
		}
	})

	subtest(t, config, "WriteFS", "OpenFile", func(t *testing.T) {
		name := join(dir, "openfile.txt")
		f, err := fsys.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			t.Fatalf("OpenFile(%s): got error %v, want nil", name, err)
		}
		if _, err := f.Write([]byte("via handle")); err != nil {
			t.Fatalf("Write: got error %v, want nil", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close: got error %v, want nil", err)
		}
		if f.Name() != name {
			t.Errorf("File.Name(): got %q, want %q", f.Name(), name)
		}

		data, err := fsys.ReadFile(name)
		if err != nil {
			t.Fatalf("ReadFile(%s): got error %v, want nil", name, err)
		}
		if string(data) != "via handle" {
			t.Errorf("ReadFile(%s): got %q, want %q", name, data, "via handle")
		}
	})

	subtest(t, config, "WriteFS", "MkdirAll", func(t *testing.T) {
		name := join(dir, "a", "b", "c")
		if err := fsys.MkdirAll(name, 0755); err != nil {
			t.Fatalf("MkdirAll(%s): got error %v, want nil", name, err)
		}
		if err := fsys.MkdirAll(name, 0755); err != nil {
			t.Errorf("MkdirAll(%s) on existing directory: got error %v, want nil", name, err)
		}

		info, err := fsys.Stat(name)
		if err != nil {
			t.Fatalf("Stat(%s): got error %v, want nil", name, err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%s).IsDir(): got false, want true", name)
		}
	})

	subtest(t, config, "WriteFS", "MkdirAllOverFile", func(t *testing.T) {
		file := join(dir, "blocker")
		if err := fsys.WriteFile(file, []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", file, err)
		}
		if err := fsys.MkdirAll(file, 0755); err == nil {
			t.Errorf("MkdirAll(%s) over a file: got nil error, want error", file)
		}
	})
}
