package lint

import (
	"os"
	"path/filepath"
	"regexp"
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

func categories(findings []Finding) map[string]int {
	out := make(map[string]int)
	for _, f := range findings {
		out[f.Category]++
	}
	return out
}

func TestRun_FlagsBareExcept(t *testing.T) {
	tree := scanFixture(t, map[string]string{
		"a.py": "try:\n    work()\nexcept:\n    pass\n",
	})

	findings := NewEngine().Run(tree, 0)
	cats := categories(findings)
	if cats["bare-except"] != 1 {
		t.Errorf("expected one bare-except finding, got %v", cats)
	}

	for _, f := range findings {
		if f.Category == "bare-except" && f.Line != 3 {
			t.Errorf("expected bare-except on line 3, got %d", f.Line)
		}
	}
}

func TestRun_EveryRuleEveryFile(t *testing.T) {
	tree := scanFixture(t, map[string]string{
		"a.py": "print(1)\n",
		"b.py": "print(2)\n",
	})

	findings := NewEngine().Run(tree, 0)
	cats := categories(findings)
	if cats["debug-print"] != 2 {
		t.Errorf("expected a debug-print finding per file, got %v", cats)
	}
}

func TestRun_UnusedImportFlagged(t *testing.T) {
	tree := scanFixture(t, map[string]string{
		"a.py": "import os\nimport sys\n\nx = sys.argv\n",
	})

	findings := NewEngine().Run(tree, 0)
	var unused []Finding
	for _, f := range findings {
		if f.Category == "unused-import" {
			unused = append(unused, f)
		}
	}
	if len(unused) != 1 {
		t.Fatalf("expected exactly one unused-import finding, got %+v", unused)
	}
	if unused[0].Line != 1 {
		t.Errorf("expected unused import on line 1 (os), got line %d", unused[0].Line)
	}
}

func TestRun_AliasedImportUsage(t *testing.T) {
	tree := scanFixture(t, map[string]string{
		"a.py": "import numpy as np\n\nx = np.zeros(3)\n",
	})

	findings := NewEngine().Run(tree, 0)
	for _, f := range findings {
		if f.Category == "unused-import" {
			t.Errorf("aliased import is used, should not be flagged: %+v", f)
		}
	}
}

func TestRun_CustomRule(t *testing.T) {
	tree := scanFixture(t, map[string]string{
		"a.py": "# HACK: temporary\n",
	})

	custom := Rule{
		Pattern:    regexp.MustCompile(`\bHACK\b`),
		Category:   "hack-marker",
		Suggestion: "Replace the hack with a proper fix",
	}
	findings := NewEngine(custom).Run(tree, 0)
	if categories(findings)["hack-marker"] != 1 {
		t.Errorf("expected custom rule to fire, got %+v", findings)
	}
}

func TestRun_FindingsSortedByFileThenLine(t *testing.T) {
	tree := scanFixture(t, map[string]string{
		"a.py": "print(1)\nx == None\n",
		"b.py": "print(2)\n",
	})

	findings := NewEngine().Run(tree, 0)
	if len(findings) < 3 {
		t.Fatalf("expected at least 3 findings, got %+v", findings)
	}
	for i := 1; i < len(findings); i++ {
		prev, cur := findings[i-1], findings[i]
		if prev.Path > cur.Path {
			t.Errorf("findings out of file order: %+v before %+v", prev, cur)
		}
		if prev.Path == cur.Path && prev.Line > cur.Line {
			t.Errorf("findings out of line order: %+v before %+v", prev, cur)
		}
	}
}

func TestRun_DeterministicAcrossWorkerCounts(t *testing.T) {
	tree := scanFixture(t, map[string]string{
		"a.py": "print(1)\n",
		"b.py": "except:\n",
		"c.py": "x == True\n",
	})

	serial := NewEngine().Run(tree, 1)
	parallel := NewEngine().Run(tree, 8)
	if len(serial) != len(parallel) {
		t.Fatalf("finding counts differ: %d vs %d", len(serial), len(parallel))
	}
	for i := range serial {
		if serial[i] != parallel[i] {
			t.Errorf("finding %d differs: %+v vs %+v", i, serial[i], parallel[i])
		}
	}
}

func TestRun_CleanFile(t *testing.T) {
	tree := scanFixture(t, map[string]string{
		"a.py": "import sys\n\ndef main(argv=None):\n    return sys.exit(0)\n",
	})

	findings := NewEngine().Run(tree, 0)
	if len(findings) != 0 {
		t.Errorf("expected no findings for a clean file, got %+v", findings)
	}
}
