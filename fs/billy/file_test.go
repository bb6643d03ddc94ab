package billy

import (
	"io"
	"os"
	"testing"
)

func TestFile_ReadWriteSeek(t *testing.T) {
	fs := NewMemory()

	f, err := fs.OpenFile("/file.txt", os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		t.Fatalf("OpenFile: got error %v, want nil", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write([]byte("hello world")); err != nil {
		t.Fatalf("Write: got error %v, want nil", err)
	}

	bf, ok := f.(*File)
	if !ok {
		t.Fatalf("OpenFile returned %T, want *File", f)
	}
	if _, err := bf.Seek(6, io.SeekStart); err != nil {
		t.Fatalf("Seek: got error %v, want nil", err)
	}

	data, err := io.ReadAll(bf)
	if err != nil {
		t.Fatalf("ReadAll: got error %v, want nil", err)
	}
	if string(data) != "world" {
		t.Errorf("ReadAll after Seek: got %q, want %q", data, "world")
	}

	info, err := bf.Stat()
	if err != nil {
		t.Fatalf("Stat: got error %v, want nil", err)
	}
	if info.Size() != 11 {
		t.Errorf("Stat().Size(): got %d, want 11", info.Size())
	}
}

func TestFile_NameKeepsCallerPath(t *testing.T) {
	fs := NewMemory()
	f, err := fs.OpenFile("relative.txt", os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		t.Fatalf("OpenFile: got error %v, want nil", err)
	}
	defer func() { _ = f.Close() }()

	if f.Name() != "relative.txt" {
		t.Errorf("Name(): got %q, want %q", f.Name(), "relative.txt")
	}
}
