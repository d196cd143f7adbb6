package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/meredith/codescout/internal/output"
	"github.com/meredith/codescout/internal/scanner"
	"github.com/meredith/codescout/internal/search"
)

// runSearch compiles the pattern (failing before any file is read) and
// prints one line per hit as path:line: text.
func runSearch(tree *scanner.ProjectTree, pattern string, workers int) error {
	re, err := search.Compile(pattern)
	if err != nil {
		return err
	}

	hits := search.Run(tree, re, workers)

	if flagJSON {
		if hits == nil {
			hits = []search.Hit{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(hits)
	}

	fmt.Println(output.Section(fmt.Sprintf("Search results for %q", pattern)))
	for _, h := range hits {
		fmt.Printf("%s:%s: %s\n",
			output.StylePath.Render(h.Path),
			output.StyleMuted.Render(fmt.Sprintf("%d", h.Line)),
			h.Text)
	}
	if len(hits) == 0 {
		fmt.Println(output.StyleMuted.Render("  (no matches)"))
	}
	return nil
}
