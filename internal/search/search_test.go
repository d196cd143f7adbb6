package search

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/meredith/codescout/internal/scanner"
)

func scanFixture(t *testing.T, files map[string]string) *scanner.ProjectTree {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	tree, err := scanner.Scan(root, []string{"*.py"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return tree
}

func TestCompile_InvalidPattern(t *testing.T) {
	_, err := Compile("(unclosed")
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern, got %v", err)
	}
}

func TestCompile_Valid(t *testing.T) {
	re, err := Compile(`class\s+\w+`)
	if err != nil {
		t.Fatal(err)
	}
	if re == nil {
		t.Fatal("expected compiled regexp")
	}
}

func TestRun_HitsOrderedByFileThenLine(t *testing.T) {
	tree := scanFixture(t, map[string]string{
		"a.py": "x = 1\ntodo here\n",
		"b.py": "todo first\nother\ntodo last\n",
	})

	re, err := Compile("todo")
	if err != nil {
		t.Fatal(err)
	}
	hits := Run(tree, re, 0)

	want := []Hit{
		{Path: "a.py", Line: 2, Text: "todo"},
		{Path: "b.py", Line: 1, Text: "todo"},
		{Path: "b.py", Line: 3, Text: "todo"},
	}
	if len(hits) != len(want) {
		t.Fatalf("expected %d hits, got %d: %v", len(want), len(hits), hits)
	}
	for i := range want {
		if hits[i] != want[i] {
			t.Errorf("hit %d: expected %+v, got %+v", i, want[i], hits[i])
		}
	}
}

func TestRun_AllMatchesPerLine(t *testing.T) {
	tree := scanFixture(t, map[string]string{
		"a.py": "aba aba aba\n",
	})

	re, err := Compile("aba")
	if err != nil {
		t.Fatal(err)
	}
	hits := Run(tree, re, 0)
	if len(hits) != 3 {
		t.Fatalf("expected 3 non-overlapping matches on the line, got %d", len(hits))
	}
	for _, h := range hits {
		if h.Line != 1 {
			t.Errorf("expected all hits on line 1, got %+v", h)
		}
	}
}

func TestRun_NoMatches(t *testing.T) {
	tree := scanFixture(t, map[string]string{
		"a.py": "x = 1\n",
		"b.py": "y = 2\n",
	})

	re, err := Compile("zzz_never_present")
	if err != nil {
		t.Fatal(err)
	}
	if hits := Run(tree, re, 0); len(hits) != 0 {
		t.Errorf("expected no hits, got %v", hits)
	}
}

func TestRun_SkipsBinaryFiles(t *testing.T) {
	tree := scanFixture(t, map[string]string{
		"ok.py": "match me\n",
	})
	// Binary file written after the fixture so it shares the scan.
	if err := os.WriteFile(filepath.Join(tree.Root, "blob.py"), []byte{'m', 0x00, 'e'}, 0o644); err != nil {
		t.Fatal(err)
	}
	tree2, err := scanner.Scan(tree.Root, []string{"*.py"}, nil)
	if err != nil {
		t.Fatal(err)
	}

	re, err := Compile("m")
	if err != nil {
		t.Fatal(err)
	}
	hits := Run(tree2, re, 0)
	for _, h := range hits {
		if h.Path == "blob.py" {
			t.Errorf("binary file should have been skipped, got %+v", h)
		}
	}
	if len(hits) == 0 {
		t.Error("expected hits from the readable file")
	}
}

func TestRun_DeterministicAcrossWorkerCounts(t *testing.T) {
	tree := scanFixture(t, map[string]string{
		"a.py": "needle\n",
		"b.py": "needle\nneedle\n",
		"c.py": "no\n",
		"d.py": "needle\n",
	})

	re, err := Compile("needle")
	if err != nil {
		t.Fatal(err)
	}

	serial := Run(tree, re, 1)
	parallel := Run(tree, re, 8)
	if len(serial) != len(parallel) {
		t.Fatalf("hit counts differ: %d vs %d", len(serial), len(parallel))
	}
	for i := range serial {
		if serial[i] != parallel[i] {
			t.Errorf("hit %d differs: %+v vs %+v", i, serial[i], parallel[i])
		}
	}
}
