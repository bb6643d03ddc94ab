package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/gen/fs/core"
)

func testReadFS(t *testing.T, fsys core.FS, dir string, config FSTestConfig) {
	subtest(t, config, "ReadFS", "ReadFile", func(t *testing.T) {
		name := join(dir, "read.txt")
		content := []byte("read me")
		if err := fsys.WriteFile(name, content, 0644); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
		}

		data, err := fsys.ReadFile(name)
		if err != nil {
			t.Fatalf("ReadFile(%s): got error %v, want nil", name, err)
		}
		if !bytes.Equal(data, content) {
			t.Errorf("ReadFile(%s): got %q, want %q", name, data, content)
		}
	})

	subtest(t, config, "ReadFS", "ReadFileNotExist", func(t *testing.T) {
		_, err := fsys.ReadFile(join(dir, "missing.txt"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ReadFile(missing.txt): got error %v, want fs.ErrNotExist", err)
		}
	})

	subtest(t, config, "ReadFS", "Stat", func(t *testing.T) {
		name := join(dir, "stat.txt")
		if err := fsys.WriteFile(name, []byte("12345"), 0644); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
		}

		info, err := fsys.Stat(name)
		if err != nil {
			t.Fatalf("Stat(%s): got error %v, want nil", name, err)
		}
		if info.Size() != 5 {
			t.Errorf("Stat(%s).Size(): got %d, want 5", name, info.Size())
		}
		if info.IsDir() {
			t.Errorf("Stat(%s).IsDir(): got true, want false", name)
		}

		if _, err := fsys.Stat(join(dir, "missing")); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(missing): got error %v, want fs.ErrNotExist", err)
		}
	})

	subtest(t, config, "ReadFS", "OpenAndStat", func(t *testing.T) {
		name := join(dir, "open.txt")
		if err := fsys.WriteFile(name, []byte("abc"), 0644); err != nil {
			t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
		}

		f, err := fsys.Open(name)
		if err != nil {
			t.Fatalf("Open(%s): got error %v, want nil", name, err)
		}
		defer func() { _ = f.Close() }()

		info, err := f.Stat()
		if err != nil {
			t.Fatalf("File.Stat(): got error %v, want nil", err)
		}
		if info.Size() != 3 {
			t.Errorf("File.Stat().Size(): got %d, want 3", info.Size())
		}
	})
}
