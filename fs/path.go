package fs

// Path is any string-kinded path type.
type Path interface {
	~string
}

// Contents is anything Write accepts as file contents.
type Contents interface {
	~[]byte | ~string
}

// Canonicalize calls Default().Canonicalize.
func Canonicalize[P Path](path P) (string, error) {
	return Default().Canonicalize(string(path))
}

// Copy calls Default().Copy.
func Copy[P Path, Q Path](from P, to Q) (int64, error) {
	return Default().Copy(string(from), string(to))
}

// CreateDirAll calls Default().CreateDirAll.
func CreateDirAll[P Path](path P) error {
	return Default().CreateDirAll(string(path))
}

// CurrentDir calls Default().CurrentDir.
func CurrentDir() (string, error) {
	return Default().CurrentDir()
}

// Read calls Default().Read.
func Read[P Path](path P) ([]byte, error) {
	return Default().Read(string(path))
}

// RemoveFile calls Default().RemoveFile.
func RemoveFile[P Path](path P) error {
	return Default().RemoveFile(string(path))
}

// Write calls Default().Write.
func Write[P Path, C Contents](path P, contents C) error {
	return Default().Write(string(path), []byte(contents))
}

// SymlinkFile calls Default().SymlinkFile.
func SymlinkFile[P Path, Q Path](src P, dst Q) error {
	return Default().SymlinkFile(string(src), string(dst))
}

// SymlinkDir calls Default().SymlinkDir.
func SymlinkDir[P Path, Q Path](src P, dst Q) error {
	return Default().SymlinkDir(string(src), string(dst))
}
