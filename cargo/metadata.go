package cargo

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// metadataArgs request the workspace metadata without the dependency graph,
// in the stable format.
var metadataArgs = []string{"metadata", "--no-deps", "--format-version=1"}

const targetDirKey = `"target_directory":`

// TargetDir is the directory cargo places build artifacts in.
type TargetDir string

// String returns the directory path.
func (d TargetDir) String() string {
	return string(d)
}

// Join joins elem onto the directory.
func (d TargetDir) Join(elem ...string) string {
	return filepath.Join(append([]string{string(d)}, elem...)...)
}

// parseTargetDir extracts the target_directory value from cargo metadata
// output. The last occurrence of the key wins, since nested objects printed
// before it may reuse the name. The only escape undone is the doubled
// backslash cargo emits for Windows separators.
func parseTargetDir(stdout string) (TargetDir, bool) {
	if !utf8.ValidString(stdout) {
		return "", false
	}

	i := strings.LastIndex(stdout, targetDirKey)
	if i < 0 {
		return "", false
	}
	rest := stdout[i+len(targetDirKey):]

	open := strings.IndexByte(rest, '"')
	if open < 0 {
		return "", false
	}
	rest = rest[open+1:]

	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return "", false
	}

	return TargetDir(strings.ReplaceAll(rest[:end], `\\`, `\`)), true
}
