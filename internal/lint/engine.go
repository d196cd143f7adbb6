package lint

import (
	"fmt"
	"os"
	"regexp"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/meredith/codescout/internal/scanner"
)

// Engine applies a rule table to every file of a scan.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with the built-in table plus any extra rules.
func NewEngine(extra ...Rule) *Engine {
	return &Engine{rules: append(Builtins(), extra...)}
}

// Run lints every file in the tree and returns the findings ordered by file
// (scan order), then line, then rule order. Unreadable and binary files are
// skipped with a warning on stderr.
func (e *Engine) Run(tree *scanner.ProjectTree, workers int) []Finding {
	paths := tree.Paths()
	perFile := make([][]Finding, len(paths))

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
			findings := e.lintText(rel, text)
			findings = append(findings, unusedImports(rel, text)...)
			sort.SliceStable(findings, func(a, b int) bool {
				return findings[a].Line < findings[b].Line
			})
			perFile[i] = findings
			return nil
		})
	}
	_ = g.Wait()

	var all []Finding
	for _, ff := range perFile {
		all = append(all, ff...)
	}
	return all
}

// lintText emits one finding per rule per matching line.
func (e *Engine) lintText(rel, text string) []Finding {
	var findings []Finding
	for i, line := range strings.Split(text, "\n") {
		for _, r := range e.rules {
			if r.Pattern.MatchString(line) {
				findings = append(findings, Finding{
					Path:       rel,
					Line:       i + 1,
					Category:   r.Category,
					Suggestion: r.Suggestion,
				})
			}
		}
	}
	return findings
}

// plainImportRe captures "import module" and "import module as alias" lines.
// from-imports are left alone: their bound names are harder to guess and the
// heuristic would flag too much.
var plainImportRe = regexp.MustCompile(`^\s*import\s+([A-Za-z_][\w.]*)(?:\s+as\s+([A-Za-z_]\w*))?\s*$`)

// unusedImports flags plain imports whose bound name never appears again in
// the file. Whole-file rather than line-local, so it lives outside the rule
// table but emits the same Finding shape.
func unusedImports(rel, text string) []Finding {
	lines := strings.Split(text, "\n")

	var findings []Finding
	for i, line := range lines {
		m := plainImportRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		// The bound name is the alias, or the first dotted segment.
		name := m[2]
		if name == "" {
			name = strings.SplitN(m[1], ".", 2)[0]
		}

		nameRe := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
		used := false
		for j, other := range lines {
			if j == i {
				continue
			}
			if nameRe.MatchString(other) {
				used = true
				break
			}
		}
		if !used {
			findings = append(findings, Finding{
				Path:       rel,
				Line:       i + 1,
				Category:   "unused-import",
				Suggestion: fmt.Sprintf("Import %q appears unused; remove it", name),
			})
		}
	}
	return findings
}
