// Package search applies a regular expression across every scanned file.
//
// Matching is line-oriented: the pattern is applied to each line in
// isolation, and every non-overlapping match on a line produces its own Hit.
// Patterns spanning multiple lines therefore never match.
package search

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/meredith/codescout/internal/scanner"
)

// ErrInvalidPattern is returned for regex syntax errors, before any file is
// read. It is fatal to the whole invocation.
var ErrInvalidPattern = errors.New("invalid pattern")

// Hit is a single regex match: file, 1-based line, and the matched text.
type Hit struct {
	Path string `json:"path"`
	Line int    `json:"line"`
	Text string `json:"text"`
}

// Compile compiles a user-supplied pattern, wrapping syntax errors in
// ErrInvalidPattern.
func Compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}
	return re, nil
}

// Run searches every file in the tree and returns all hits ordered by file
// (scan order) then line. Unreadable and binary files are skipped with a
// warning on stderr. Files are processed concurrently; ordering of the
// result does not depend on scheduling.
func Run(tree *scanner.ProjectTree, re *regexp.Regexp, workers int) []Hit {
	paths := tree.Paths()
	perFile := make([][]Hit, len(paths))

	var g errgroup.Group
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	g.SetLimit(workers)

	for i, rel := range paths {
		i, rel := i, rel
		g.Go(func() error {
			text, err := tree.ReadFile(rel)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: skipping %v\n", err)
				return nil
			}
			perFile[i] = searchText(rel, text, re)
			return nil
		})
	}
	// Workers never return errors; per-file problems are warnings.
	_ = g.Wait()

	var hits []Hit
	for _, fh := range perFile {
		hits = append(hits, fh...)
	}
	return hits
}

// searchText collects all non-overlapping matches per line.
func searchText(rel, text string, re *regexp.Regexp) []Hit {
	var hits []Hit
	for i, line := range strings.Split(text, "\n") {
		for _, m := range re.FindAllString(line, -1) {
			hits = append(hits, Hit{Path: rel, Line: i + 1, Text: m})
		}
	}
	return hits
}
