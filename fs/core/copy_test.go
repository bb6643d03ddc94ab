package core_test

import (
	"errors"
	"testing"

	"github.com/jmgilman/go/gen/fs/billy"
	"github.com/jmgilman/go/gen/fs/core"
)

func TestCopyFile(t *testing.T) {
	mem := billy.NewMemory()
	data := []byte("#pragma once\n")
	if err := mem.MkdirAll("/src", 0755); err != nil {
		t.Fatalf("MkdirAll: setup failed: %v", err)
	}
	if err := mem.WriteFile("/src/lib.h", data, 0640); err != nil {
		t.Fatalf("WriteFile: setup failed: %v", err)
	}

	n, err := core.CopyFile(mem, "/src/lib.h", "/src/copy.h")
	if err != nil {
		t.Fatalf("CopyFile: got error %v, want nil", err)
	}
	if n != int64(len(data)) {
		t.Errorf("CopyFile: copied %d bytes, want %d", n, len(data))
	}

	got, err := mem.ReadFile("/src/copy.h")
	if err != nil {
		t.Fatalf("ReadFile(copy.h): %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("ReadFile(copy.h) = %q, want %q", got, data)
	}
}

func TestCopyFile_Truncates(t *testing.T) {
	mem := billy.NewMemory()
	_ = mem.WriteFile("/a", []byte("new"), 0644)
	_ = mem.WriteFile("/b", []byte("much longer old content"), 0644)

	if _, err := core.CopyFile(mem, "/a", "/b"); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}
	got, _ := mem.ReadFile("/b")
	if string(got) != "new" {
		t.Errorf("ReadFile(/b) = %q, want %q", got, "new")
	}
}

func TestCopyFile_Errors(t *testing.T) {
	mem := billy.NewMemory()
	if err := mem.MkdirAll("/dir", 0755); err != nil {
		t.Fatalf("MkdirAll: setup failed: %v", err)
	}

	if _, err := core.CopyFile(mem, "/missing", "/out"); !errors.Is(err, core.ErrNotExist) {
		t.Errorf("CopyFile(missing): got %v, want ErrNotExist", err)
	}
	if _, err := core.CopyFile(mem, "/dir", "/out"); !errors.Is(err, core.ErrIsDir) {
		t.Errorf("CopyFile(dir): got %v, want ErrIsDir", err)
	}

	if err := mem.WriteFile("/src.h", []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile: setup failed: %v", err)
	}
	if _, err := core.CopyFile(mem, "/src.h", "/nowhere/dst.h"); !errors.Is(err, core.ErrNotExist) {
		t.Errorf("CopyFile(into missing dir): got %v, want ErrNotExist", err)
	}
	if _, err := mem.Stat("/nowhere"); !errors.Is(err, core.ErrNotExist) {
		t.Errorf("Stat(/nowhere): got %v, want ErrNotExist; copy must not create parents", err)
	}
}
