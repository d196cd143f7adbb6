// Package scanner provides source-tree discovery and the in-memory project
// snapshot the other operations run against.
package scanner

import "errors"

// Walk error kinds. Both are fatal to the whole invocation.
var (
	// ErrNotFound is returned when the scan root does not exist.
	ErrNotFound = errors.New("path not found")

	// ErrNotADirectory is returned when the scan root is a regular file.
	ErrNotADirectory = errors.New("not a directory")
)

// FileInfo describes one discovered source file.
type FileInfo struct {
	// Path is the slash-separated path relative to the scan root.
	Path string `json:"path"`

	// Type is the file extension without the leading dot ("py", "js", ...).
	Type string `json:"type"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`
}

// ProjectTree is the immutable result of one scan: the absolute root plus the
// ordered list of discovered files. It is rebuilt wholesale on every
// invocation; nothing mutates it after Scan returns.
type ProjectTree struct {
	// Root is the absolute path of the scanned directory.
	Root string `json:"root"`

	// Files is the discovered file list, sorted by relative path.
	Files []FileInfo `json:"files"`
}

// Paths returns the relative paths of all discovered files, in scan order.
func (t *ProjectTree) Paths() []string {
	paths := make([]string, len(t.Files))
	for i, f := range t.Files {
		paths[i] = f.Path
	}
	return paths
}

// Contains reports whether the given relative path was discovered by the scan.
func (t *ProjectTree) Contains(rel string) bool {
	for _, f := range t.Files {
		if f.Path == rel {
			return true
		}
	}
	return false
}
