package scanner

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrUnsupportedFile marks non-text content. Callers skip such files with a
// warning rather than aborting a multi-file operation.
var ErrUnsupportedFile = errors.New("binary or non-text content")

// binarySniffLen bounds how much of a file is inspected for NUL bytes.
const binarySniffLen = 8192

// ReadFile reads one discovered file by its relative path and returns its
// text. Binary content yields ErrUnsupportedFile.
func (t *ProjectTree) ReadFile(rel string) (string, error) {
	data, err := os.ReadFile(filepath.Join(t.Root, filepath.FromSlash(rel)))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", rel, err)
	}
	if isBinary(data) {
		return "", fmt.Errorf("%s: %w", rel, ErrUnsupportedFile)
	}
	return string(data), nil
}

// isBinary applies the usual NUL-byte heuristic to the head of the file.
func isBinary(data []byte) bool {
	if len(data) > binarySniffLen {
		data = data[:binarySniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}
