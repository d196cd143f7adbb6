package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scan walks the tree under root and returns a ProjectTree containing every
// regular file whose name matches at least one include pattern. Directories
// whose name appears in excludeDirs, and hidden directories, are skipped
// entirely. The resulting file list is deduplicated and sorted by relative
// path so downstream output is reproducible.
func Scan(root string, include, excludeDirs []string) (*ProjectTree, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", root, ErrNotFound)
		}
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, ErrNotADirectory)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	skip := make(map[string]bool, len(excludeDirs))
	for _, d := range excludeDirs {
		skip[d] = true
	}

	var files []FileInfo
	seen := make(map[string]bool)

	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subdirectories are skipped, not fatal.
			fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path == abs {
				return nil
			}
			name := d.Name()
			if skip[name] || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		ok, err := matchAny(d.Name(), include)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if seen[rel] {
			return nil
		}
		seen[rel] = true

		fi := FileInfo{
			Path: rel,
			Type: strings.TrimPrefix(filepath.Ext(rel), "."),
		}
		if st, err := d.Info(); err == nil {
			fi.Size = st.Size()
		}
		files = append(files, fi)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	return &ProjectTree{Root: abs, Files: files}, nil
}

// matchAny reports whether name matches at least one glob pattern.
func matchAny(name string, patterns []string) (bool, error) {
	for _, p := range patterns {
		ok, err := filepath.Match(p, name)
		if err != nil {
			return false, fmt.Errorf("bad include pattern %q: %w", p, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
